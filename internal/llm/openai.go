// Package llm adapts the external chat-completion provider behind the
// service-level CompletionClient interface.
package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/config"
	"github.com/JdarlingGT/PortfolioJdbuild/internal/domain/models"
)

// OpenAIClient calls the OpenAI chat-completions API with fixed parameters:
// bounded output length, moderate temperature, no streaming.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a provider client. The API key comes from process
// configuration and stays inside the underlying transport.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete submits the message list and returns the first choice's content.
// The call is bounded by config.ChatTimeout and honors ctx cancellation, so
// a dropped client connection abandons the provider call.
func (c *OpenAIClient) Complete(ctx context.Context, messages []models.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.ChatTimeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    make([]openai.ChatCompletionMessage, len(messages)),
		MaxTokens:   config.ChatMaxTokens,
		Temperature: config.ChatTemperature,
	}
	for i, m := range messages {
		req.Messages[i] = openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
