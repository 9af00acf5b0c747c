package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dsa-catalog/internal/cache"
	"dsa-catalog/internal/catalog"
	"dsa-catalog/internal/config"
	"dsa-catalog/internal/domain"
	"dsa-catalog/internal/dto"
	"dsa-catalog/internal/logger"
	"dsa-catalog/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultTopicTTL   = 30 * time.Minute
	defaultListingTTL = 10 * time.Minute
)

// TopicService defines the read operations of the catalog API
type TopicService interface {
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	ListTopics(ctx context.Context) (*dto.TopicListResponse, error)
	GetTopic(ctx context.Context, id string) (*dto.TopicResponse, error)
	GetTopicQuiz(ctx context.Context, id string) (*dto.QuizResponse, error)
	ValidateCatalog(ctx context.Context) (*dto.ValidationReportResponse, error)
}

// topicService implements TopicService
type topicService struct {
	repo       domain.TopicRepository
	cache      domain.Cache
	topicTTL   time.Duration
	listingTTL time.Duration
	sfGroup    singleflight.Group
}

// NewTopicService creates a new TopicService. cache may be nil, in which
// case every call reads the repository.
func NewTopicService(repo domain.TopicRepository, cache domain.Cache, cfg *config.Config) TopicService {
	s := &topicService{
		repo:       repo,
		cache:      cache,
		topicTTL:   defaultTopicTTL,
		listingTTL: defaultListingTTL,
	}
	if cfg != nil {
		s.topicTTL = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Topic, defaultTopicTTL)
		s.listingTTL = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Listing, defaultListingTTL)
	}
	return s
}

// ListCategories implements TopicService
func (s *topicService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	return cached(ctx, s, cache.CategoriesKey(), s.listingTTL, func(ctx context.Context) ([]dto.CategoryResponse, error) {
		categories, err := s.repo.ListCategories(ctx)
		if err != nil {
			return nil, domain.NewStoreError("Failed to list categories", err)
		}
		topics, err := s.repo.ListTopics(ctx)
		if err != nil {
			return nil, domain.NewStoreError("Failed to list topics", err)
		}

		summaries := catalog.Summarize(categories, topics)
		resp := make([]dto.CategoryResponse, len(summaries))
		for i, sum := range summaries {
			resp[i] = dto.CategoryResponse{
				Name:       sum.Name,
				Position:   sum.Position,
				TopicCount: sum.TopicCount,
				QuizCount:  sum.QuizCount,
			}
		}
		return resp, nil
	})
}

// ListTopics implements TopicService
func (s *topicService) ListTopics(ctx context.Context) (*dto.TopicListResponse, error) {
	return cached(ctx, s, cache.TopicListKey(), s.listingTTL, func(ctx context.Context) (*dto.TopicListResponse, error) {
		topics, err := s.repo.ListTopics(ctx)
		if err != nil {
			return nil, domain.NewStoreError("Failed to list topics", err)
		}

		resp := &dto.TopicListResponse{
			Topics: make([]dto.TopicSummary, len(topics)),
			Total:  len(topics),
		}
		for i, t := range topics {
			resp.Topics[i] = dto.NewTopicSummary(t)
		}
		return resp, nil
	})
}

// GetTopic implements TopicService
func (s *topicService) GetTopic(ctx context.Context, id string) (*dto.TopicResponse, error) {
	return cached(ctx, s, cache.TopicKey(id), s.topicTTL, func(ctx context.Context) (*dto.TopicResponse, error) {
		topic, err := s.loadTopic(ctx, id)
		if err != nil {
			return nil, err
		}
		return dto.NewTopicResponse(topic), nil
	})
}

// GetTopicQuiz implements TopicService
func (s *topicService) GetTopicQuiz(ctx context.Context, id string) (*dto.QuizResponse, error) {
	return cached(ctx, s, cache.TopicQuizKey(id), s.topicTTL, func(ctx context.Context) (*dto.QuizResponse, error) {
		topic, err := s.loadTopic(ctx, id)
		if err != nil {
			return nil, err
		}
		return dto.NewQuizResponse(topic), nil
	})
}

// ValidateCatalog implements TopicService. Reports are never cached.
func (s *topicService) ValidateCatalog(ctx context.Context) (*dto.ValidationReportResponse, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewStoreError("Failed to list categories", err)
	}
	topics, err := s.repo.ListTopics(ctx)
	if err != nil {
		return nil, domain.NewStoreError("Failed to list topics", err)
	}

	report := validation.ValidateContent(categories, topics)
	if !report.OK() {
		logger.Get().Warn("Catalog content has validation errors",
			zap.Int("errors", len(report.Errors)),
			zap.Int("warnings", len(report.Warnings)),
		)
	}

	return &dto.ValidationReportResponse{
		Valid:      report.OK(),
		TopicCount: report.TopicCount,
		QuizCount:  report.QuizCount,
		Errors:     dto.NewValidationIssues(report.Errors),
		Warnings:   dto.NewValidationIssues(report.Warnings),
	}, nil
}

func (s *topicService) loadTopic(ctx context.Context, id string) (*domain.Topic, error) {
	topic, err := s.repo.GetTopicByID(ctx, id)
	if err != nil {
		return nil, domain.NewStoreError("Failed to get topic", err).WithContext("topic_id", id)
	}
	if topic == nil {
		return nil, domain.NewTopicNotFoundError(id)
	}
	return topic, nil
}

// cached serves key from the cache when it holds a decodable value and
// otherwise runs load once per key across concurrent callers, storing the
// result. Cache failures are logged and fall through to load.
func cached[T any](ctx context.Context, s *topicService, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	log := logger.Get()

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var value T
			errDecode := json.Unmarshal([]byte(raw), &value)
			if errDecode == nil {
				log.Debug("Cache hit", zap.String("key", key))
				return value, nil
			}
			log.Warn("Failed to decode cached value", zap.String("key", key), zap.Error(errDecode))
		case errors.Is(err, domain.ErrCacheMiss):
			log.Debug("Cache miss", zap.String("key", key))
		default:
			log.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		}
	}

	res, err, shared := s.sfGroup.Do(key, func() (interface{}, error) {
		value, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}

		if s.cache != nil {
			encoded, errEncode := json.Marshal(value)
			if errEncode != nil {
				log.Error("Failed to encode value for caching", zap.String("key", key), zap.Error(errEncode))
				return value, nil
			}
			if errSet := s.cache.Set(ctx, key, string(encoded), ttl); errSet != nil {
				log.Error("Failed to set cache", zap.String("key", key), zap.Error(errSet))
			}
		}
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if shared {
		log.Debug("Shared in-flight load", zap.String("key", key))
	}

	value, ok := res.(T)
	if !ok {
		var zero T
		return zero, domain.NewInternalError(fmt.Sprintf("unexpected type from singleflight.Do: %T", res), nil)
	}
	return value, nil
}
