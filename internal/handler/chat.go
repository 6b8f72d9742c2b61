package handler

import (
	"log/slog"
	"net/http"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/httputil"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/service"
)

// ChatHandler proxies conversations to the chat-completion provider.
type ChatHandler struct {
	chatService *service.ChatService
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// chatRequest is the inbound payload: the caller's full conversation history,
// resent every turn.
type chatRequest struct {
	Messages []models.ChatMessage `json:"messages"`
}

// chatResponse carries the single reply string on success.
type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat forwards the conversation and relays the provider's reply
// POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid messages format")
		return
	}

	// A decoded nil slice means the messages field was absent. An explicit
	// empty list is fine; the system prompt alone still produces a reply.
	if req.Messages == nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid messages format")
		return
	}

	reply, err := h.chatService.Reply(r.Context(), req.Messages)
	if err != nil {
		// Reply already logged the provider detail; the client only sees
		// the fixed apology.
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
