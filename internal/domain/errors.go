package domain

import "errors"

var (
	// ErrNotFound signals a missing remote resource (HTTP 404).
	ErrNotFound = errors.New("not found")
	// ErrRateLimited signals the search service throttled the request (HTTP 429).
	ErrRateLimited = errors.New("rate limited")
	// ErrInvalidSchema signals an invalid index or field definition.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrInvalidConfig signals missing or malformed settings.
	ErrInvalidConfig = errors.New("invalid config")
)
