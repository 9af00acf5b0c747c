package repository

import (
	"context"

	"dsa-catalog/internal/catalog"
	"dsa-catalog/internal/domain"
)

var _ domain.TopicRepository = (*CatalogRepository)(nil)

// CatalogRepository serves topics straight from an in-memory catalog.
type CatalogRepository struct {
	catalog *catalog.Catalog
}

// NewCatalogRepository creates a read-only repository over c.
func NewCatalogRepository(c *catalog.Catalog) *CatalogRepository {
	return &CatalogRepository{catalog: c}
}

// ListCategories implements domain.TopicRepository
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]string, error) {
	return r.catalog.Categories(), nil
}

// ListTopics implements domain.TopicRepository
func (r *CatalogRepository) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	return r.catalog.All(), nil
}

// GetTopicByID implements domain.TopicRepository
func (r *CatalogRepository) GetTopicByID(ctx context.Context, id string) (*domain.Topic, error) {
	t, ok := r.catalog.Get(id)
	if !ok {
		return nil, nil
	}
	return t, nil
}

// Ping implements domain.TopicRepository
func (r *CatalogRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
