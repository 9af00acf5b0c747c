package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"dsa-catalog/internal/domain"
	"dsa-catalog/internal/repository/models"
	"dsa-catalog/internal/util"
)

const topicColumns = `id "id",
		title "title",
		description "description",
		category "category",
		difficulty "difficulty",
		position "position",
		extended_definition "extended_definition",
		example "example",
		syntax "syntax",
		voice_explanation "voice_explanation",
		real_world_applications "real_world_applications",
		pseudocode "pseudocode",
		key_concepts "key_concepts",
		implementation_code "implementation_code",
		created_at "created_at",
		updated_at "updated_at"`

const questionColumns = `id "id",
		topic_id "topic_id",
		position "position",
		question "question",
		options "options",
		correct_answer "correct_answer",
		explanation "explanation",
		created_at "created_at"`

var _ domain.TopicStore = (*TopicDatabaseAdapter)(nil)

// TopicDatabaseAdapter implements domain.TopicRepository and domain.TopicWriter over Oracle.
type TopicDatabaseAdapter struct {
	db DBTX
}

// NewTopicDatabaseAdapter creates a new adapter. db may be a *sqlx.DB or *sqlx.Tx;
// a transaction carried by the call context takes precedence.
func NewTopicDatabaseAdapter(db DBTX) *TopicDatabaseAdapter {
	return &TopicDatabaseAdapter{db: db}
}

// ListCategories implements domain.TopicRepository
func (a *TopicDatabaseAdapter) ListCategories(ctx context.Context) ([]string, error) {
	var names []string
	query := `SELECT name "name" FROM dsa_categories ORDER BY position`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ListTopics implements domain.TopicRepository
func (a *TopicDatabaseAdapter) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	exec := GetExecutor(ctx, a.db)

	var rows []models.Topic
	query := `SELECT ` + topicColumns + ` FROM dsa_topics ORDER BY position`
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	var questions []models.QuizQuestion
	qQuery := `SELECT ` + questionColumns + ` FROM dsa_quiz_questions ORDER BY topic_id, position`
	if err := exec.SelectContext(ctx, &questions, qQuery); err != nil {
		return nil, fmt.Errorf("failed to list quiz questions: %w", err)
	}

	byTopic := make(map[string][]models.QuizQuestion, len(rows))
	for _, q := range questions {
		byTopic[q.TopicID] = append(byTopic[q.TopicID], q)
	}

	topics := make([]*domain.Topic, len(rows))
	for i := range rows {
		topics[i] = toDomainTopic(&rows[i], byTopic[rows[i].ID])
	}
	return topics, nil
}

// GetTopicByID implements domain.TopicRepository
func (a *TopicDatabaseAdapter) GetTopicByID(ctx context.Context, id string) (*domain.Topic, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Topic
	query := `SELECT ` + topicColumns + ` FROM dsa_topics WHERE id = :1`
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get topic by ID %s: %w", id, err)
	}

	var questions []models.QuizQuestion
	qQuery := `SELECT ` + questionColumns + ` FROM dsa_quiz_questions WHERE topic_id = :1 ORDER BY position`
	if err := exec.SelectContext(ctx, &questions, qQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get quiz questions for topic %s: %w", id, err)
	}

	return toDomainTopic(&row, questions), nil
}

// Ping implements domain.TopicRepository
func (a *TopicDatabaseAdapter) Ping(ctx context.Context) error {
	var one int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &one, `SELECT 1 FROM dual`); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// UpsertCategory implements domain.TopicWriter
func (a *TopicDatabaseAdapter) UpsertCategory(ctx context.Context, name string, position int) error {
	exec := GetExecutor(ctx, a.db)
	now := time.Now()

	var count int
	if err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM dsa_categories WHERE name = :1`, name); err != nil {
		return fmt.Errorf("failed to check category %s: %w", name, err)
	}

	if count > 0 {
		query := `UPDATE dsa_categories SET position = :1, updated_at = :2 WHERE name = :3`
		if _, err := exec.ExecContext(ctx, query, position, now, name); err != nil {
			return fmt.Errorf("failed to update category %s: %w", name, err)
		}
		return nil
	}

	query := `INSERT INTO dsa_categories (name, position, created_at, updated_at) VALUES (:1, :2, :3, :4)`
	if _, err := exec.ExecContext(ctx, query, name, position, now, now); err != nil {
		return fmt.Errorf("failed to insert category %s: %w", name, err)
	}
	return nil
}

// UpsertTopic implements domain.TopicWriter. The topic's quiz questions are replaced wholesale.
func (a *TopicDatabaseAdapter) UpsertTopic(ctx context.Context, topic *domain.Topic, position int) error {
	if topic == nil {
		return fmt.Errorf("cannot save nil topic")
	}
	exec := GetExecutor(ctx, a.db)
	row := toModelTopic(topic, position)
	now := time.Now()

	var count int
	if err := exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM dsa_topics WHERE id = :1`, row.ID); err != nil {
		return fmt.Errorf("failed to check topic %s: %w", row.ID, err)
	}

	if count > 0 {
		query := `UPDATE dsa_topics SET
		title = :1,
		description = :2,
		category = :3,
		difficulty = :4,
		position = :5,
		extended_definition = :6,
		example = :7,
		syntax = :8,
		voice_explanation = :9,
		real_world_applications = :10,
		pseudocode = :11,
		key_concepts = :12,
		implementation_code = :13,
		updated_at = :14
	WHERE id = :15`
		_, err := exec.ExecContext(ctx, query,
			row.Title, row.Description, row.Category, row.Difficulty, row.Position,
			row.ExtendedDefinition, row.Example, row.Syntax, row.VoiceExplanation,
			row.RealWorldApplications, row.Pseudocode, row.KeyConcepts, row.ImplementationCode,
			now, row.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update topic %s: %w", row.ID, err)
		}
	} else {
		query := `INSERT INTO dsa_topics (
		id, title, description, category, difficulty, position,
		extended_definition, example, syntax, voice_explanation,
		real_world_applications, pseudocode, key_concepts, implementation_code,
		created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12, :13, :14, :15, :16
	)`
		_, err := exec.ExecContext(ctx, query,
			row.ID, row.Title, row.Description, row.Category, row.Difficulty, row.Position,
			row.ExtendedDefinition, row.Example, row.Syntax, row.VoiceExplanation,
			row.RealWorldApplications, row.Pseudocode, row.KeyConcepts, row.ImplementationCode,
			now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert topic %s: %w", row.ID, err)
		}
	}

	if _, err := exec.ExecContext(ctx, `DELETE FROM dsa_quiz_questions WHERE topic_id = :1`, row.ID); err != nil {
		return fmt.Errorf("failed to clear quiz questions for topic %s: %w", row.ID, err)
	}

	insertQuestion := `INSERT INTO dsa_quiz_questions (
		id, topic_id, position, question, options, correct_answer, explanation, created_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8
	)`
	for i, q := range topic.QuizQuestions {
		_, err := exec.ExecContext(ctx, insertQuestion,
			util.NewULID(),
			row.ID,
			i,
			q.Question,
			models.StringSlice(q.Options),
			q.CorrectAnswer,
			util.StringToNullString(q.Explanation),
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert quiz question %d for topic %s: %w", i, row.ID, err)
		}
	}
	return nil
}

// DeleteTopicsNotIn implements domain.TopicWriter. Quiz questions go with
// their topic through the ON DELETE CASCADE foreign key.
func (a *TopicDatabaseAdapter) DeleteTopicsNotIn(ctx context.Context, ids []string) (int64, error) {
	removed, err := a.deleteNotIn(ctx, "dsa_topics", "id", ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale topics: %w", err)
	}
	return removed, nil
}

// DeleteCategoriesNotIn implements domain.TopicWriter
func (a *TopicDatabaseAdapter) DeleteCategoriesNotIn(ctx context.Context, names []string) (int64, error) {
	removed, err := a.deleteNotIn(ctx, "dsa_categories", "name", names)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale categories: %w", err)
	}
	return removed, nil
}

// maxInListSize is the most expressions Oracle accepts in one IN list (ORA-01795).
const maxInListSize = 1000

// deleteNotIn deletes every row of table whose column is not in keep. An
// empty keep list empties the table. Longer keep lists are split into
// NOT IN lists joined with AND.
func (a *TopicDatabaseAdapter) deleteNotIn(ctx context.Context, table, column string, keep []string) (int64, error) {
	query := `DELETE FROM ` + table
	args := make([]interface{}, len(keep))
	if len(keep) > 0 {
		var clauses []string
		for start := 0; start < len(keep); start += maxInListSize {
			end := min(start+maxInListSize, len(keep))
			placeholders := make([]string, 0, end-start)
			for i := start; i < end; i++ {
				placeholders = append(placeholders, fmt.Sprintf(":%d", i+1))
				args[i] = keep[i]
			}
			clauses = append(clauses, column+` NOT IN (`+strings.Join(placeholders, ", ")+`)`)
		}
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}

	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return removed, nil
}

func toModelTopic(t *domain.Topic, position int) *models.Topic {
	return &models.Topic{
		ID:                    t.ID,
		Title:                 t.Title,
		Description:           t.Description,
		Category:              t.Category,
		Difficulty:            string(t.Difficulty),
		Position:              position,
		ExtendedDefinition:    util.StringToNullString(t.ExtendedDefinition),
		Example:               util.StringToNullString(t.Example),
		Syntax:                util.StringToNullString(t.Syntax),
		VoiceExplanation:      util.StringToNullString(t.VoiceExplanation),
		RealWorldApplications: util.StringToNullString(t.RealWorldApplications),
		Pseudocode:            util.StringToNullString(t.Pseudocode),
		KeyConcepts:           util.StringToNullString(t.KeyConcepts),
		ImplementationCode:    util.StringToNullString(t.ImplementationCode),
	}
}

func toDomainTopic(row *models.Topic, questions []models.QuizQuestion) *domain.Topic {
	t := &domain.Topic{
		ID:                    row.ID,
		Title:                 row.Title,
		Description:           row.Description,
		Category:              row.Category,
		Difficulty:            domain.Difficulty(row.Difficulty),
		ExtendedDefinition:    row.ExtendedDefinition.String,
		Example:               row.Example.String,
		Syntax:                row.Syntax.String,
		VoiceExplanation:      row.VoiceExplanation.String,
		RealWorldApplications: row.RealWorldApplications.String,
		Pseudocode:            row.Pseudocode.String,
		KeyConcepts:           row.KeyConcepts.String,
		ImplementationCode:    row.ImplementationCode.String,
	}
	if len(questions) > 0 {
		t.QuizQuestions = make([]domain.QuizQuestion, len(questions))
		for i, q := range questions {
			t.QuizQuestions[i] = domain.QuizQuestion{
				Question:      q.Question,
				Options:       []string(q.Options),
				CorrectAnswer: q.CorrectAnswer,
				Explanation:   q.Explanation.String,
			}
		}
	}
	return t
}
