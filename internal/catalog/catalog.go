// Package catalog holds the built-in DSA learning content and an immutable
// index over it. Content is fixed at build time; every accessor returns copies.
package catalog

import (
	"sync"

	"dsa-catalog/internal/domain"
)

// Topics returns the built-in topics in display order.
func Topics() []*domain.Topic {
	groups := [][]domain.Topic{linearTopics, nonlinearTopics, algorithmTopics}
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]*domain.Topic, 0, n)
	for _, g := range groups {
		for i := range g {
			out = append(out, g[i].Clone())
		}
	}
	return out
}

// Catalog is an immutable, indexed view of a category list and a topic list.
type Catalog struct {
	categories []string
	topics     []*domain.Topic
	byID       map[string]*domain.Topic
}

// New builds a Catalog. Inputs are copied. When ids repeat, the first
// occurrence is indexed; validation is what reports the duplicate.
func New(categories []string, topics []*domain.Topic) *Catalog {
	c := &Catalog{
		categories: append([]string(nil), categories...),
		topics:     make([]*domain.Topic, 0, len(topics)),
		byID:       make(map[string]*domain.Topic, len(topics)),
	}
	for _, t := range topics {
		if t == nil {
			continue
		}
		cp := t.Clone()
		c.topics = append(c.topics, cp)
		if _, exists := c.byID[cp.ID]; !exists {
			c.byID[cp.ID] = cp
		}
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog over the built-in content.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(builtinCategories, Topics())
	})
	return defaultCatalog
}

// Get returns a copy of the topic with the given id.
func (c *Catalog) Get(id string) (*domain.Topic, bool) {
	t, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// All returns copies of every topic in catalog order.
func (c *Catalog) All() []*domain.Topic {
	out := make([]*domain.Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = t.Clone()
	}
	return out
}

// Categories returns the category names in display order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// HasCategory reports whether name is a known category.
func (c *Catalog) HasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}

// Len is the number of topics, duplicates included.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// QuizCount is the total number of quiz questions across all topics.
func (c *Catalog) QuizCount() int {
	n := 0
	for _, t := range c.topics {
		n += len(t.QuizQuestions)
	}
	return n
}

// CategorySummaries returns one entry per category in display order.
// Topics whose category is unknown are not counted anywhere.
func (c *Catalog) CategorySummaries() []domain.CategorySummary {
	return Summarize(c.categories, c.topics)
}

// Summarize counts topics and quiz questions per category.
func Summarize(categories []string, topics []*domain.Topic) []domain.CategorySummary {
	out := make([]domain.CategorySummary, len(categories))
	pos := make(map[string]int, len(categories))
	for i, name := range categories {
		out[i] = domain.CategorySummary{Name: name, Position: i}
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	for _, t := range topics {
		i, ok := pos[t.Category]
		if !ok {
			continue
		}
		out[i].TopicCount++
		out[i].QuizCount += len(t.QuizQuestions)
	}
	return out
}
