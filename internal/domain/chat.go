package domain

import "time"

// Message roles in a conversation transcript
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Reply sources identify which path produced an assistant message
const (
	SourceOrderOptimizer = "order_optimizer"
	SourceGasPrice       = "gas_price"
	SourceLLM            = "llm"
)

// Message is a single chat transcript entry. Tool replies and LLM replies are
// stored through the same insert path with no special schema.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	Source         string    `json:"source,omitempty"` // assistant messages only
	CreatedAt      time.Time `json:"createdAt"`
}

// ToolReply is a templated response produced by the tool dispatcher instead of
// delegating the turn to the LLM
type ToolReply struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// ChatResult is what the chat service returns to the delivery layer
type ChatResult struct {
	ConversationID string `json:"conversationId"`
	Reply          string `json:"reply"`
	Source         string `json:"source"`
}
