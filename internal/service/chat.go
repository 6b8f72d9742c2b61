package service

import (
	"context"
	"log/slog"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/portfolio"
)

// Fixed user-facing strings. The raw provider failure never leaves the
// server; callers only ever see one of these.
const (
	// EmptyReplyFallback substitutes for a provider choice with no content.
	EmptyReplyFallback = "I'm sorry, I couldn't generate a response."

	// UpstreamFailureMessage is returned with a 500 when the provider call
	// fails outright.
	UpstreamFailureMessage = "I'm having trouble connecting right now. Please try again in a moment."
)

// CompletionClient is the outbound chat-completion dependency. Swapping
// providers means reimplementing this one interface.
type CompletionClient interface {
	// Complete submits the full message list (system prompt included) and
	// returns the content of the provider's first choice. An empty string
	// with a nil error means the provider replied with no content.
	Complete(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// ChatService turns a caller-supplied conversation into one outbound
// completion request. It holds no conversation state; the caller resends the
// entire history every turn.
type ChatService struct {
	client       CompletionClient
	systemPrompt string
	logger       *slog.Logger
}

// NewChatService creates a new chat service. The system prompt is built once;
// the portfolio data never changes after startup.
func NewChatService(client CompletionClient, data *portfolio.Data, logger *slog.Logger) *ChatService {
	return &ChatService{
		client:       client,
		systemPrompt: BuildSystemPrompt(data),
		logger:       logger,
	}
}

// SystemPrompt returns the fixed instruction text prepended to every request.
func (s *ChatService) SystemPrompt() string {
	return s.systemPrompt
}

// Reply prepends the system prompt to the conversation, submits it to the
// provider and returns the reply text. The caller's messages are forwarded
// verbatim. Any provider failure comes back as a domain.UpstreamError whose
// message is safe to show a client.
func (s *ChatService) Reply(ctx context.Context, history []models.ChatMessage) (string, error) {
	messages := make([]models.ChatMessage, 0, len(history)+1)
	messages = append(messages, models.ChatMessage{
		Role:    models.RoleSystem,
		Content: s.systemPrompt,
	})
	messages = append(messages, history...)

	reply, err := s.client.Complete(ctx, messages)
	if err != nil {
		s.logger.Error("chat completion failed",
			"error", err,
			"turns", len(history),
		)
		return "", &domain.UpstreamError{Message: UpstreamFailureMessage, Cause: err}
	}

	if reply == "" {
		return EmptyReplyFallback, nil
	}
	return reply, nil
}
