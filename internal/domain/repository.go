package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogClient defines the interface for the retailer search API
type CatalogClient interface {
	// Search runs a product search for a term in a market and returns the
	// parsed response. A non-OK upstream status is an error.
	Search(ctx context.Context, term, country, language string) (*SearchResponse, error)

	// SearchRaw runs the same search but returns the upstream body and
	// status untouched, for proxy passthrough.
	SearchRaw(ctx context.Context, term, country, language string) ([]byte, int, error)
}
