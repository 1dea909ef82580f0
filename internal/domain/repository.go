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

// FuelPriceClient defines the interface for the fuel price data provider.
// FetchPrice returns ErrPriceUnavailable (possibly wrapped) when the provider
// is unreachable, misconfigured, or returns no usable numeric field.
type FuelPriceClient interface {
	FetchPrice(ctx context.Context, location string) (float64, error)
}

// CompletionClient defines the interface for the opaque text-completion
// provider used for general chat analysis
type CompletionClient interface {
	Complete(ctx context.Context, history []Message) (string, error)
}

// MessageRepository defines the interface for chat transcript persistence
type MessageRepository interface {
	Insert(ctx context.Context, msg *Message) error
	ListByConversation(ctx context.Context, conversationID string) ([]*Message, error)
}
