// Package genai provides the OpenAI-backed fallback chat used for
// non-calculation conversation. The consultation flow itself never calls
// the language model.
package genai

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultSystemPrompt frames the fallback assistant when no prompt file is
// configured.
const DefaultSystemPrompt = "You are a friendly assistant for a commercial refrigeration company. " +
	"Answer briefly and helpfully. If the user wants a cold room capacity estimate, " +
	"tell them to send the word 'calculate' to start the guided questionnaire."

// ClientInterface is the minimal surface the response handler needs, so
// tests can substitute a stub.
type ClientInterface interface {
	GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Client wraps the OpenAI chat completion API.
type Client struct {
	client openai.Client
	model  openai.ChatModel
}

// NewClient initializes a GenAI client from the OPENAI_API_KEY environment
// variable.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	slog.Debug("GenAI client created", "model", openai.ChatModelGPT4oMini)
	return &Client{client: cli, model: openai.ChatModelGPT4oMini}, nil
}

// GenerateReply produces one assistant reply for the given system prompt
// and user message.
func (c *Client) GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
	})
	if err != nil {
		slog.Error("GenAI completion failed", "error", err)
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		slog.Error("GenAI completion returned no choices")
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
