package service

import (
	"context"
	"time"

	"dsa-catalog/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTopicStore ---
type MockTopicStore struct {
	mock.Mock
}

func (m *MockTopicStore) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTopicStore) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Topic), args.Error(1)
}

func (m *MockTopicStore) GetTopicByID(ctx context.Context, id string) (*domain.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topic), args.Error(1)
}

func (m *MockTopicStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTopicStore) UpsertCategory(ctx context.Context, name string, position int) error {
	args := m.Called(ctx, name, position)
	return args.Error(0)
}

func (m *MockTopicStore) UpsertTopic(ctx context.Context, topic *domain.Topic, position int) error {
	args := m.Called(ctx, topic, position)
	return args.Error(0)
}

func (m *MockTopicStore) DeleteTopicsNotIn(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTopicStore) DeleteCategoriesNotIn(ctx context.Context, names []string) (int64, error) {
	args := m.Called(ctx, names)
	return args.Get(0).(int64), args.Error(1)
}

var _ domain.TopicStore = (*MockTopicStore)(nil)

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ domain.Cache = (*MockCache)(nil)

// --- MockTransactionManager ---
// Runs fn directly, unless an error is configured for the transaction itself.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

var _ domain.TransactionManager = (*MockTransactionManager)(nil)
