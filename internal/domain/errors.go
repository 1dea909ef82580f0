package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrPriceUnavailable is returned by the fuel client when no usable price
	// could be fetched; the price oracle absorbs it and serves a fallback
	ErrPriceUnavailable = errors.New("fuel price unavailable")

	// ErrCompletionFailure is returned when the LLM completion request fails
	ErrCompletionFailure = errors.New("completion request failed")

	// ErrConversationNotFound is returned when a conversation has no messages
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
