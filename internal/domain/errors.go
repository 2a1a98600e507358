package domain

import "errors"

var (
	// ErrInsufficientProducts is returned when a resolution pass exhausts
	// every search term with fewer than RoundsPerDay products collected
	ErrInsufficientProducts = errors.New("insufficient products for daily set")

	// ErrNoProductFound is returned when a random-product lookup yields no valid candidate
	ErrNoProductFound = errors.New("no valid product found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCatalogFailure is returned when a retailer search request fails
	ErrCatalogFailure = errors.New("catalog search request failed")
)
