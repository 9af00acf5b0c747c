package service

import (
	"context"

	"dsa-catalog/internal/cache"
	"dsa-catalog/internal/catalog"
	"dsa-catalog/internal/domain"
	"dsa-catalog/internal/logger"
	"dsa-catalog/internal/validation"

	"go.uber.org/zap"
)

// SyncResult summarizes one Sync run.
type SyncResult struct {
	Categories        int   `json:"categories"`
	Topics            int   `json:"topics"`
	QuizQuestions     int   `json:"quiz_questions"`
	RemovedTopics     int64 `json:"removed_topics"`
	RemovedCategories int64 `json:"removed_categories"`
}

// SeedService writes catalog content into a persistent store
type SeedService interface {
	Sync(ctx context.Context, c *catalog.Catalog) (*SyncResult, error)
}

type seedService struct {
	store     domain.TopicStore
	txManager domain.TransactionManager
	cache     domain.Cache
}

// NewSeedService creates a new SeedService. cache may be nil.
func NewSeedService(store domain.TopicStore, txManager domain.TransactionManager, cache domain.Cache) SeedService {
	return &seedService{
		store:     store,
		txManager: txManager,
		cache:     cache,
	}
}

// Sync makes the store hold exactly the content of c in one transaction.
// Content with validation errors is refused before anything is written.
func (s *seedService) Sync(ctx context.Context, c *catalog.Catalog) (*SyncResult, error) {
	log := logger.Get()

	categories := c.Categories()
	topics := c.All()
	if report := validation.ValidateContent(categories, topics); !report.OK() {
		return nil, report.Errors
	}

	result := &SyncResult{Categories: len(categories), Topics: len(topics)}
	var staleKeys []string

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.store.ListTopics(txCtx)
		if err != nil {
			return domain.NewStoreError("Failed to read existing topics", err)
		}
		for _, t := range existing {
			staleKeys = append(staleKeys, cache.TopicKey(t.ID), cache.TopicQuizKey(t.ID))
		}

		for i, name := range categories {
			if err := s.store.UpsertCategory(txCtx, name, i); err != nil {
				return domain.NewStoreError("Failed to save category", err).WithContext("category", name)
			}
		}

		ids := make([]string, len(topics))
		for i, t := range topics {
			if err := s.store.UpsertTopic(txCtx, t, i); err != nil {
				return domain.NewStoreError("Failed to save topic", err).WithContext("topic_id", t.ID)
			}
			ids[i] = t.ID
			result.QuizQuestions += len(t.QuizQuestions)
			staleKeys = append(staleKeys, cache.TopicKey(t.ID), cache.TopicQuizKey(t.ID))
		}

		if result.RemovedTopics, err = s.store.DeleteTopicsNotIn(txCtx, ids); err != nil {
			return domain.NewStoreError("Failed to remove stale topics", err)
		}
		if result.RemovedCategories, err = s.store.DeleteCategoriesNotIn(txCtx, categories); err != nil {
			return domain.NewStoreError("Failed to remove stale categories", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Catalog synced",
		zap.Int("categories", result.Categories),
		zap.Int("topics", result.Topics),
		zap.Int("quiz_questions", result.QuizQuestions),
		zap.Int64("removed_topics", result.RemovedTopics),
		zap.Int64("removed_categories", result.RemovedCategories),
	)

	if s.cache != nil {
		staleKeys = append(staleKeys, cache.CategoriesKey(), cache.TopicListKey())
		if err := s.cache.Delete(ctx, staleKeys...); err != nil {
			log.Error("Failed to invalidate cached catalog entries", zap.Error(err), zap.Int("keys", len(staleKeys)))
		}
	}

	return result, nil
}
