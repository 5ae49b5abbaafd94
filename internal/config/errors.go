package config

import "errors"

// Validation errors returned by [Configuration.validate] and by the presence
// adapter.
var (
	// ErrInvalidShardCount indicates a shard count lower than one.
	ErrInvalidShardCount = errors.New("invalid shard count")
	// ErrInvalidMessageCache indicates a negative message cache size.
	ErrInvalidMessageCache = errors.New("invalid message cache size")
	// ErrInvalidRequestTimeout indicates a zero or negative request timeout.
	ErrInvalidRequestTimeout = errors.New("invalid request timeout")
	// ErrUnknownActivityType indicates an activity type name Discord does not
	// know.
	ErrUnknownActivityType = errors.New("unknown activity type")
	// ErrMissingActivityText indicates an activity without text.
	ErrMissingActivityText = errors.New("missing activity text")
)
