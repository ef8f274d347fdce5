package cache

import "errors"

var (
	// ErrCacheUnavailable is returned when the configured cache backend
	// cannot be reached at startup.
	ErrCacheUnavailable = errors.New("page cache is unavailable")
	// ErrStaleGeneration is returned by Set when the path was revalidated
	// while the page was being rendered.
	ErrStaleGeneration = errors.New("page was revalidated while rendering")
)
