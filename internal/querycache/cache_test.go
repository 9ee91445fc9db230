package querycache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scrapedocs/organizer/internal/organizer/document"
)

func TestNilCache_ComputesStraightThrough(t *testing.T) {
	var cache *Cache

	calls := 0
	snapshots, hit := cache.GetOrCompute(context.Background(), "related", "doc-1", func() []document.Snapshot {
		calls++
		return []document.Snapshot{{URL: "u1"}}
	})

	assert.False(t, hit)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "u1", snapshots[0].URL)
}

func TestNilCache_InvalidateAndStatsAreNoOps(t *testing.T) {
	var cache *Cache
	cache.InvalidateAll(context.Background())

	hits, misses := cache.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestBuildKey_DistinguishesKindAndArg(t *testing.T) {
	related := buildKey("related", "doc-1")
	search := buildKey("search", "doc-1")
	other := buildKey("related", "doc-2")

	assert.NotEqual(t, related, search)
	assert.NotEqual(t, related, other)
	assert.Equal(t, related, buildKey("related", "doc-1"))
	assert.Contains(t, related, keyPrefix)
}
