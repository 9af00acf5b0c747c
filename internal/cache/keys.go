package cache

import "strings"

const (
	GlobalKeyPrefix = "dsacatalog"

	catalogService = "catalog"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// TopicKey caches one rendered topic.
func TopicKey(topicID string) string {
	return GenerateCacheKey(catalogService, "topic", topicID)
}

// TopicQuizKey caches the quiz of one topic.
func TopicQuizKey(topicID string) string {
	return GenerateCacheKey(catalogService, "quiz", topicID)
}

// TopicListKey caches the full topic listing.
func TopicListKey() string {
	return GenerateCacheKey(catalogService, "topics", "all")
}

// CategoriesKey caches the category listing.
func CategoriesKey() string {
	return GenerateCacheKey(catalogService, "categories", "all")
}
