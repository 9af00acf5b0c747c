package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"dsa-catalog/internal/cache"
	"dsa-catalog/internal/config"
	"dsa-catalog/internal/domain"
	"dsa-catalog/internal/dto"
	"dsa-catalog/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func sampleTopics() []*domain.Topic {
	return []*domain.Topic{
		{
			ID:          "stack",
			Title:       "Stack",
			Description: "LIFO collection",
			Category:    "Stacks",
			Difficulty:  domain.DifficultyBeginner,
			Example:     "Undo history",
			Pseudocode:  "push(x); pop()",
			QuizQuestions: []domain.QuizQuestion{
				{Question: "Which end is popped?", Options: []string{"Top", "Bottom"}, CorrectAnswer: 0, Explanation: "LIFO"},
				{Question: "Push cost?", Options: []string{"O(1)", "O(n)"}, CorrectAnswer: 0},
			},
		},
		{
			ID:          "queue",
			Title:       "Queue",
			Description: "FIFO collection",
			Category:    "Queues",
			Difficulty:  domain.DifficultyBeginner,
		},
		{
			ID:          "dijkstra",
			Title:       "Dijkstra",
			Description: "Shortest paths",
			Category:    "Graphs",
			Difficulty:  domain.DifficultyAdvanced,
			QuizQuestions: []domain.QuizQuestion{
				{Question: "Negative edges?", Options: []string{"Allowed", "Not allowed"}, CorrectAnswer: 1},
			},
		},
	}
}

func TestTopicService_GetTopic(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss reads repository and caches result", func(t *testing.T) {
		repo := new(MockTopicStore)
		mockCache := new(MockCache)
		topic := sampleTopics()[0]

		mockCache.On("Get", ctx, cache.TopicKey("stack")).Return("", domain.ErrCacheMiss).Once()
		repo.On("GetTopicByID", ctx, "stack").Return(topic, nil).Once()
		mockCache.On("Set", ctx, cache.TopicKey("stack"), mock.AnythingOfType("string"), defaultTopicTTL).Return(nil).Once()

		svc := NewTopicService(repo, mockCache, nil)
		resp, err := svc.GetTopic(ctx, "stack")

		require.NoError(t, err)
		assert.Equal(t, "Stack", resp.Title)
		assert.Equal(t, []string{domain.SectionExample, domain.SectionPseudocode}, resp.Sections)
		assert.Len(t, resp.QuizQuestions, 2)
		repo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(MockTopicStore)
		mockCache := new(MockCache)
		encoded, err := json.Marshal(dto.NewTopicResponse(sampleTopics()[0]))
		require.NoError(t, err)

		mockCache.On("Get", ctx, cache.TopicKey("stack")).Return(string(encoded), nil).Once()

		svc := NewTopicService(repo, mockCache, nil)
		resp, err := svc.GetTopic(ctx, "stack")

		require.NoError(t, err)
		assert.Equal(t, "stack", resp.ID)
		assert.Equal(t, domain.DifficultyBeginner, resp.Difficulty)
		assert.Equal(t, "LIFO", resp.QuizQuestions[0].Explanation)
		repo.AssertNotCalled(t, "GetTopicByID", mock.Anything, mock.Anything)
		mockCache.AssertExpectations(t)
	})

	t.Run("corrupt cache entry falls back to repository", func(t *testing.T) {
		repo := new(MockTopicStore)
		mockCache := new(MockCache)

		mockCache.On("Get", ctx, cache.TopicKey("stack")).Return("{not json", nil).Once()
		repo.On("GetTopicByID", ctx, "stack").Return(sampleTopics()[0], nil).Once()
		mockCache.On("Set", ctx, cache.TopicKey("stack"), mock.AnythingOfType("string"), defaultTopicTTL).Return(nil).Once()

		svc := NewTopicService(repo, mockCache, nil)
		resp, err := svc.GetTopic(ctx, "stack")

		require.NoError(t, err)
		assert.Equal(t, "Stack", resp.Title)
		repo.AssertExpectations(t)
	})

	t.Run("cache errors are not returned", func(t *testing.T) {
		repo := new(MockTopicStore)
		mockCache := new(MockCache)

		mockCache.On("Get", ctx, cache.TopicKey("stack")).Return("", errors.New("connection refused")).Once()
		repo.On("GetTopicByID", ctx, "stack").Return(sampleTopics()[0], nil).Once()
		mockCache.On("Set", ctx, cache.TopicKey("stack"), mock.AnythingOfType("string"), defaultTopicTTL).
			Return(errors.New("connection refused")).Once()

		svc := NewTopicService(repo, mockCache, nil)
		resp, err := svc.GetTopic(ctx, "stack")

		require.NoError(t, err)
		assert.Equal(t, "stack", resp.ID)
		mockCache.AssertExpectations(t)
	})

	t.Run("missing topic is not cached", func(t *testing.T) {
		repo := new(MockTopicStore)
		mockCache := new(MockCache)

		mockCache.On("Get", ctx, cache.TopicKey("nope")).Return("", domain.ErrCacheMiss).Once()
		repo.On("GetTopicByID", ctx, "nope").Return(nil, nil).Once()

		svc := NewTopicService(repo, mockCache, nil)
		resp, err := svc.GetTopic(ctx, "nope")

		assert.Nil(t, resp)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeTopicNotFound, domainErr.Code)
		assert.Equal(t, "nope", domainErr.Context["topic_id"])
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository failure is a store error", func(t *testing.T) {
		repo := new(MockTopicStore)
		dbErr := errors.New("ORA-12541: TNS:no listener")
		repo.On("GetTopicByID", ctx, "stack").Return(nil, dbErr).Once()

		svc := NewTopicService(repo, nil, nil)
		_, err := svc.GetTopic(ctx, "stack")

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeStore, domainErr.Code)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestTopicService_ConfiguredTTL(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTopicStore)
	mockCache := new(MockCache)
	cfg := &config.Config{CacheTTLs: config.CacheTTLConfig{Topic: "5m", Listing: "bogus"}}

	mockCache.On("Get", ctx, cache.TopicKey("stack")).Return("", domain.ErrCacheMiss).Once()
	repo.On("GetTopicByID", ctx, "stack").Return(sampleTopics()[0], nil).Once()
	mockCache.On("Set", ctx, cache.TopicKey("stack"), mock.AnythingOfType("string"), 5*time.Minute).Return(nil).Once()

	mockCache.On("Get", ctx, cache.TopicListKey()).Return("", domain.ErrCacheMiss).Once()
	repo.On("ListTopics", ctx).Return(sampleTopics(), nil).Once()
	mockCache.On("Set", ctx, cache.TopicListKey(), mock.AnythingOfType("string"), defaultListingTTL).Return(nil).Once()

	svc := NewTopicService(repo, mockCache, cfg)
	_, err := svc.GetTopic(ctx, "stack")
	require.NoError(t, err)
	_, err = svc.ListTopics(ctx)
	require.NoError(t, err)

	mockCache.AssertExpectations(t)
}

func TestTopicService_ListTopics(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTopicStore)
	repo.On("ListTopics", ctx).Return(sampleTopics(), nil).Once()

	svc := NewTopicService(repo, nil, nil)
	resp, err := svc.ListTopics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Topics, 3)
	assert.Equal(t, "stack", resp.Topics[0].ID)
	assert.Equal(t, "queue", resp.Topics[1].ID)
	assert.Equal(t, "dijkstra", resp.Topics[2].ID)
	assert.Equal(t, 2, resp.Topics[0].QuizQuestions)
	assert.Empty(t, resp.Topics[1].Sections)
	assert.Equal(t, "Advanced", resp.Topics[2].Difficulty)
}

func TestTopicService_ListCategories(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTopicStore)
	repo.On("ListCategories", ctx).Return([]string{"Stacks", "Queues", "Graphs", "Heaps"}, nil).Once()
	repo.On("ListTopics", ctx).Return(sampleTopics(), nil).Once()

	svc := NewTopicService(repo, nil, nil)
	resp, err := svc.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, []dto.CategoryResponse{
		{Name: "Stacks", Position: 0, TopicCount: 1, QuizCount: 2},
		{Name: "Queues", Position: 1, TopicCount: 1, QuizCount: 0},
		{Name: "Graphs", Position: 2, TopicCount: 1, QuizCount: 1},
		{Name: "Heaps", Position: 3, TopicCount: 0, QuizCount: 0},
	}, resp)
}

func TestTopicService_ListCategories_StoreError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTopicStore)
	repo.On("ListCategories", ctx).Return(nil, errors.New("boom")).Once()

	svc := NewTopicService(repo, nil, nil)
	_, err := svc.ListCategories(ctx)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeStore, domainErr.Code)
	repo.AssertNotCalled(t, "ListTopics", mock.Anything)
}

func TestTopicService_GetTopicQuiz(t *testing.T) {
	ctx := context.Background()
	topics := sampleTopics()
	repo := new(MockTopicStore)
	repo.On("GetTopicByID", ctx, "stack").Return(topics[0], nil).Once()
	repo.On("GetTopicByID", ctx, "queue").Return(topics[1], nil).Once()

	svc := NewTopicService(repo, nil, nil)

	quiz, err := svc.GetTopicQuiz(ctx, "stack")
	require.NoError(t, err)
	assert.Equal(t, "stack", quiz.TopicID)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, 1, quiz.Questions[1].Position)
	assert.Equal(t, "O(1)", quiz.Questions[1].Options[quiz.Questions[1].CorrectAnswer])

	empty, err := svc.GetTopicQuiz(ctx, "queue")
	require.NoError(t, err)
	assert.NotNil(t, empty.Questions)
	assert.Empty(t, empty.Questions)
}

func TestTopicService_ValidateCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("valid content", func(t *testing.T) {
		repo := new(MockTopicStore)
		repo.On("ListCategories", ctx).Return([]string{"Stacks", "Queues", "Graphs"}, nil).Once()
		repo.On("ListTopics", ctx).Return(sampleTopics(), nil).Once()

		report, err := NewTopicService(repo, nil, nil).ValidateCatalog(ctx)

		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Equal(t, 3, report.TopicCount)
		assert.Equal(t, 3, report.QuizCount)
		assert.Empty(t, report.Errors)
		assert.Empty(t, report.Warnings)
	})

	t.Run("broken content is reported, not returned as error", func(t *testing.T) {
		topics := sampleTopics()
		topics[1].Category = "Tries"
		topics[2].QuizQuestions[0].CorrectAnswer = 2

		repo := new(MockTopicStore)
		repo.On("ListCategories", ctx).Return([]string{"Stacks", "Queues", "Graphs"}, nil).Once()
		repo.On("ListTopics", ctx).Return(topics, nil).Once()

		report, err := NewTopicService(repo, nil, nil).ValidateCatalog(ctx)

		require.NoError(t, err)
		assert.False(t, report.Valid)
		fields := make([]string, len(report.Errors))
		for i, e := range report.Errors {
			fields[i] = e.Field
		}
		assert.Contains(t, fields, "topics[1].category")
		assert.Contains(t, fields, "topics[2].quizQuestions[0].correctAnswer")
		require.Len(t, report.Warnings, 1)
		assert.Equal(t, "categories[1]", report.Warnings[0].Field)
	})
}
