package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"dsa-catalog/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

var topicRowColumns = []string{
	"id", "title", "description", "category", "difficulty", "position",
	"extended_definition", "example", "syntax", "voice_explanation",
	"real_world_applications", "pseudocode", "key_concepts", "implementation_code",
	"created_at", "updated_at",
}

var questionRowColumns = []string{
	"id", "topic_id", "position", "question", "options", "correct_answer", "explanation", "created_at",
}

func TestTopicDatabaseAdapter_ListCategories(t *testing.T) {
	db, mock := setupTestDB(t)
	adapter := NewTopicDatabaseAdapter(db)

	rows := sqlmock.NewRows([]string{"name"}).AddRow("Arrays").AddRow("Linked Lists")
	mock.ExpectQuery(`SELECT name "name" FROM dsa_categories ORDER BY position`).WillReturnRows(rows)

	names, err := adapter.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Arrays", "Linked Lists"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicDatabaseAdapter_ListCategories_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	adapter := NewTopicDatabaseAdapter(db)

	mock.ExpectQuery(`FROM dsa_categories`).WillReturnRows(sqlmock.NewRows([]string{"name"}))

	names, err := adapter.ListCategories(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestTopicDatabaseAdapter_ListTopics(t *testing.T) {
	db, mock := setupTestDB(t)
	adapter := NewTopicDatabaseAdapter(db)
	now := time.Now()

	topicRows := sqlmock.NewRows(topicRowColumns).
		AddRow("stack", "Stack", "LIFO", "Stacks", "Beginner", 0,
			"Extended", nil, nil, nil, nil, "push/pop", nil, nil, now, now).
		AddRow("queue", "Queue", "FIFO", "Queues", "Beginner", 1,
			nil, nil, nil, nil, nil, nil, nil, nil, now, now)
	mock.ExpectQuery(`SELECT .+ FROM dsa_topics ORDER BY position`).WillReturnRows(topicRows)

	questionRows := sqlmock.NewRows(questionRowColumns).
		AddRow("01J0000000000000000000000A", "stack", 0, "Top?", `["push","pop"]`, 1, "Pop removes the top", now).
		AddRow("01J0000000000000000000000B", "stack", 1, "Cost?", `["O(1)","O(n)"]`, 0, nil, now)
	mock.ExpectQuery(`SELECT .+ FROM dsa_quiz_questions ORDER BY topic_id, position`).WillReturnRows(questionRows)

	topics, err := adapter.ListTopics(context.Background())

	require.NoError(t, err)
	require.Len(t, topics, 2)

	assert.Equal(t, "stack", topics[0].ID)
	assert.Equal(t, domain.DifficultyBeginner, topics[0].Difficulty)
	assert.Equal(t, "Extended", topics[0].ExtendedDefinition)
	assert.Equal(t, "push/pop", topics[0].Pseudocode)
	assert.Empty(t, topics[0].Example)
	require.Len(t, topics[0].QuizQuestions, 2)
	assert.Equal(t, []string{"push", "pop"}, topics[0].QuizQuestions[0].Options)
	assert.Equal(t, 1, topics[0].QuizQuestions[0].CorrectAnswer)
	assert.Equal(t, "Pop removes the top", topics[0].QuizQuestions[0].Explanation)
	assert.Empty(t, topics[0].QuizQuestions[1].Explanation)

	assert.Equal(t, "queue", topics[1].ID)
	assert.Nil(t, topics[1].QuizQuestions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicDatabaseAdapter_ListTopics_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	adapter := NewTopicDatabaseAdapter(db)

	mock.ExpectQuery(`FROM dsa_topics`).WillReturnError(errors.New("ORA-00942: table or view does not exist"))

	_, err := adapter.ListTopics(context.Background())
	assert.ErrorContains(t, err, "failed to list topics")
}

func TestTopicDatabaseAdapter_GetTopicByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)
		now := time.Now()

		mock.ExpectQuery(`SELECT .+ FROM dsa_topics WHERE id = :1`).
			WithArgs("dijkstra").
			WillReturnRows(sqlmock.NewRows(topicRowColumns).AddRow(
				"dijkstra", "Dijkstra", "Shortest paths", "Graphs", "Advanced", 13,
				nil, nil, nil, nil, "Routing", nil, nil, "func dijkstra() {}", now, now))
		mock.ExpectQuery(`SELECT .+ FROM dsa_quiz_questions WHERE topic_id = :1 ORDER BY position`).
			WithArgs("dijkstra").
			WillReturnRows(sqlmock.NewRows(questionRowColumns).
				AddRow("01J0000000000000000000000C", "dijkstra", 0, "Negative edges?", `["ok","not ok"]`, 1, "Greedy", now))

		topic, err := adapter.GetTopicByID(ctx, "dijkstra")

		require.NoError(t, err)
		require.NotNil(t, topic)
		assert.Equal(t, domain.DifficultyAdvanced, topic.Difficulty)
		assert.Equal(t, "Routing", topic.RealWorldApplications)
		assert.Equal(t, "func dijkstra() {}", topic.ImplementationCode)
		require.Len(t, topic.QuizQuestions, 1)
		assert.Equal(t, "not ok", topic.QuizQuestions[0].CorrectOption())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)

		mock.ExpectQuery(`FROM dsa_topics WHERE id = :1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(topicRowColumns))

		topic, err := adapter.GetTopicByID(ctx, "missing")

		assert.NoError(t, err)
		assert.Nil(t, topic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTopicDatabaseAdapter_UpsertCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("insert", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM dsa_categories WHERE name = :1`)).
			WithArgs("Heaps").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`INSERT INTO dsa_categories`).
			WithArgs("Heaps", 7, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, adapter.UpsertCategory(ctx, "Heaps", 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)

		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs("Heaps").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectExec(`UPDATE dsa_categories SET position = :1`).
			WithArgs(3, sqlmock.AnyArg(), "Heaps").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, adapter.UpsertCategory(ctx, "Heaps", 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTopicDatabaseAdapter_UpsertTopic(t *testing.T) {
	ctx := context.Background()
	topic := &domain.Topic{
		ID:          "stack",
		Title:       "Stack",
		Description: "LIFO",
		Category:    "Stacks",
		Difficulty:  domain.DifficultyBeginner,
		Pseudocode:  "push(x)",
		QuizQuestions: []domain.QuizQuestion{
			{Question: "Top?", Options: []string{"push", "pop"}, CorrectAnswer: 1, Explanation: "LIFO"},
			{Question: "Cost?", Options: []string{"O(1)", "O(n)"}, CorrectAnswer: 0},
		},
	}

	expectQuestions := func(mock sqlmock.Sqlmock) {
		mock.ExpectExec(`DELETE FROM dsa_quiz_questions WHERE topic_id = :1`).
			WithArgs("stack").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`INSERT INTO dsa_quiz_questions`).
			WithArgs(sqlmock.AnyArg(), "stack", 0, "Top?", `["push","pop"]`, 1, "LIFO", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO dsa_quiz_questions`).
			WithArgs(sqlmock.AnyArg(), "stack", 1, "Cost?", `["O(1)","O(n)"]`, 0, nil, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	t.Run("insert", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM dsa_topics WHERE id = :1`)).
			WithArgs("stack").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec(`INSERT INTO dsa_topics`).
			WithArgs("stack", "Stack", "LIFO", "Stacks", "Beginner", 2,
				nil, nil, nil, nil, nil, "push(x)", nil, nil,
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		expectQuestions(mock)

		require.NoError(t, adapter.UpsertTopic(ctx, topic, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)

		mock.ExpectQuery(`SELECT COUNT`).
			WithArgs("stack").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectExec(`UPDATE dsa_topics SET`).
			WithArgs("Stack", "LIFO", "Stacks", "Beginner", 2,
				nil, nil, nil, nil, nil, "push(x)", nil, nil,
				sqlmock.AnyArg(), "stack").
			WillReturnResult(sqlmock.NewResult(0, 1))
		expectQuestions(mock)

		require.NoError(t, adapter.UpsertTopic(ctx, topic, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil topic", func(t *testing.T) {
		db, _ := setupTestDB(t)
		assert.Error(t, NewTopicDatabaseAdapter(db).UpsertTopic(ctx, nil, 0))
	})
}

func TestTopicDatabaseAdapter_DeleteNotIn(t *testing.T) {
	ctx := context.Background()

	t.Run("topics", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM dsa_topics WHERE id NOT IN (:1, :2)`)).
			WithArgs("stack", "queue").
			WillReturnResult(sqlmock.NewResult(0, 2))

		removed, err := adapter.DeleteTopicsNotIn(ctx, []string{"stack", "queue"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("long keep list is split into several NOT IN lists", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)

		ids := make([]string, maxInListSize+1)
		args := make([]driver.Value, len(ids))
		for i := range ids {
			ids[i] = fmt.Sprintf("topic-%d", i)
			args[i] = ids[i]
		}
		mock.ExpectExec(`^DELETE FROM dsa_topics WHERE id NOT IN \(:1, :2, .*, :1000\) AND id NOT IN \(:1001\)$`).
			WithArgs(args...).
			WillReturnResult(sqlmock.NewResult(0, 3))

		removed, err := adapter.DeleteTopicsNotIn(ctx, ids)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty keep list clears the table", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)

		mock.ExpectExec(`^DELETE FROM dsa_categories$`).
			WillReturnResult(sqlmock.NewResult(0, 14))

		removed, err := adapter.DeleteCategoriesNotIn(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(14), removed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTopicDatabaseAdapter_Ping(t *testing.T) {
	db, mock := setupTestDB(t)
	adapter := NewTopicDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT 1 FROM dual`).WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	assert.NoError(t, adapter.Ping(context.Background()))

	mock.ExpectQuery(`SELECT 1 FROM dual`).WillReturnError(errors.New("ORA-03113"))
	assert.ErrorContains(t, adapter.Ping(context.Background()), "failed to ping database")
}

func TestTransactionManager_RunsAdapterInsideTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		db, mock := setupTestDB(t)
		adapter := NewTopicDatabaseAdapter(db)
		tm := NewTransactionManagerAdapter(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM dsa_topics`).WithArgs("stack").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := tm.WithTransaction(ctx, func(txCtx context.Context) error {
			_, err := adapter.DeleteTopicsNotIn(txCtx, []string{"stack"})
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		tm := NewTransactionManagerAdapter(db)
		fnErr := errors.New("upsert failed")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tm.WithTransaction(ctx, func(txCtx context.Context) error { return fnErr })
		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on panic", func(t *testing.T) {
		db, mock := setupTestDB(t)
		tm := NewTransactionManagerAdapter(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = tm.WithTransaction(ctx, func(txCtx context.Context) error { panic("boom") })
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
