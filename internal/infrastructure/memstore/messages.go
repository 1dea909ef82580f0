package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/dashlens/backend/internal/domain"
	"github.com/google/uuid"
)

// MessageStore is an in-memory, conversation-keyed chat transcript store.
// Messages are kept in insertion order per conversation.
type MessageStore struct {
	messages map[string][]*domain.Message
	mutex    sync.RWMutex
}

// NewMessageStore creates a new in-memory message store
func NewMessageStore() *MessageStore {
	return &MessageStore{
		messages: make(map[string][]*domain.Message),
	}
}

// Insert stores a message, assigning an ID and timestamp when absent
func (s *MessageStore) Insert(ctx context.Context, msg *domain.Message) error {
	if msg == nil || msg.ConversationID == "" {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}

	stored := *msg
	s.messages[msg.ConversationID] = append(s.messages[msg.ConversationID], &stored)
	return nil
}

// ListByConversation returns all messages for a conversation in insertion order
func (s *MessageStore) ListByConversation(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	msgs, exists := s.messages[conversationID]
	if !exists {
		return nil, domain.ErrConversationNotFound
	}

	// Copy so callers cannot mutate the stored slice
	result := make([]*domain.Message, len(msgs))
	copy(result, msgs)
	return result, nil
}
