package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dashlens/backend/internal/domain"
	"github.com/dashlens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	chatService *usecase.ChatService
	oracle      *usecase.PriceOracle
}

// NewHandler creates a new HTTP handler
func NewHandler(chatService *usecase.ChatService, oracle *usecase.PriceOracle) *Handler {
	return &Handler{
		chatService: chatService,
		oracle:      oracle,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "dashlens-backend",
		"version": "1.0.0",
	})
}

// chatRequest is the request body for posting a chat message
type chatRequest struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message" binding:"required"`
}

// PostMessage handles one conversational turn
func (h *Handler) PostMessage(c *gin.Context) {
	if h.chatService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "chat service not configured"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	result, err := h.chatService.HandleMessage(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message"})
		case errors.Is(err, domain.ErrCompletionFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "assistant is temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFuelPrice returns the current fuel price quote from the oracle. Serves
// the same cache the tool dispatcher reads.
func (h *Handler) GetFuelPrice(c *gin.Context) {
	if h.oracle == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "price oracle not configured"})
		return
	}

	quote := h.oracle.GetQuote(c.Request.Context(), c.Query("location"))
	c.JSON(http.StatusOK, quote)
}
