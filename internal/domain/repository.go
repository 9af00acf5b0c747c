package domain

import "context"

// TopicRepository is the read port over a topic store.
type TopicRepository interface {
	// ListCategories returns category names in display order.
	ListCategories(ctx context.Context) ([]string, error)

	// ListTopics returns every topic in catalog order, quiz questions included.
	ListTopics(ctx context.Context) ([]*Topic, error)

	// GetTopicByID returns nil, nil when no topic has the id.
	GetTopicByID(ctx context.Context, id string) (*Topic, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// TopicWriter is implemented by stores that can be seeded.
type TopicWriter interface {
	// UpsertCategory inserts or renames-in-place the category at position.
	UpsertCategory(ctx context.Context, name string, position int) error

	// UpsertTopic inserts or updates the topic at position and replaces its quiz questions.
	UpsertTopic(ctx context.Context, topic *Topic, position int) error

	// DeleteTopicsNotIn removes topics whose ids are not listed and returns how many went.
	DeleteTopicsNotIn(ctx context.Context, ids []string) (int64, error)

	// DeleteCategoriesNotIn removes categories whose names are not listed.
	// Topics referencing them must already be gone.
	DeleteCategoriesNotIn(ctx context.Context, names []string) (int64, error)
}

// TopicStore is a repository that can be both read and seeded.
type TopicStore interface {
	TopicRepository
	TopicWriter
}

// TransactionManager runs fn inside a transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
