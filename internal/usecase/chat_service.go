package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/dashlens/backend/internal/domain"
	"github.com/google/uuid"
)

// historyLimit bounds how much transcript is replayed to the completion
// provider on the generic analysis path
const historyLimit = 20

// ChatService handles one conversational turn: persist the user message, try
// the tool dispatcher, and fall back to the completion provider when no tool
// applies. Tool replies and LLM replies go through the same insert path.
type ChatService struct {
	messages   domain.MessageRepository
	dispatcher *ToolDispatcher
	completion domain.CompletionClient
}

// NewChatService creates a new chat service with dependencies
func NewChatService(
	messages domain.MessageRepository,
	dispatcher *ToolDispatcher,
	completion domain.CompletionClient,
) *ChatService {
	return &ChatService{
		messages:   messages,
		dispatcher: dispatcher,
		completion: completion,
	}
}

// HandleMessage processes one incoming user message and returns the
// assistant reply. A new conversation ID is minted when none is supplied.
func (s *ChatService) HandleMessage(ctx context.Context, conversationID, text string) (*domain.ChatResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrInvalidRequest
	}

	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	userMsg := &domain.Message{
		ConversationID: conversationID,
		Role:           domain.RoleUser,
		Content:        text,
	}
	if err := s.messages.Insert(ctx, userMsg); err != nil {
		return nil, err
	}

	var replyText, source string
	if reply, handled := s.dispatcher.Dispatch(ctx, text); handled {
		replyText = reply.Text
		source = reply.Source
	} else {
		history, err := s.messages.ListByConversation(ctx, conversationID)
		if err != nil {
			// The user message was just inserted; fall back to it alone.
			history = []*domain.Message{userMsg}
		}

		completion, err := s.completion.Complete(ctx, trimHistory(history))
		if err != nil {
			log.Printf("[CHAT] completion failed for conversation %s: %v", conversationID, err)
			return nil, err
		}
		replyText = completion
		source = domain.SourceLLM
	}

	assistantMsg := &domain.Message{
		ConversationID: conversationID,
		Role:           domain.RoleAssistant,
		Content:        replyText,
		Source:         source,
	}
	if err := s.messages.Insert(ctx, assistantMsg); err != nil {
		return nil, err
	}

	return &domain.ChatResult{
		ConversationID: conversationID,
		Reply:          replyText,
		Source:         source,
	}, nil
}

// trimHistory keeps the most recent messages and converts to values for the
// completion client
func trimHistory(msgs []*domain.Message) []domain.Message {
	if len(msgs) > historyLimit {
		msgs = msgs[len(msgs)-historyLimit:]
	}

	out := make([]domain.Message, len(msgs))
	for i, msg := range msgs {
		out[i] = *msg
	}
	return out
}
