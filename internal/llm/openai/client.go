// Package openai implements llm.Client for text-only models: the PDF is
// reduced to plain text locally before the round-trip.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gopenai "github.com/sashabaranov/go-openai"

	"rfp-backend/internal/extract"
	"rfp-backend/internal/llm"
	"rfp-backend/internal/shared/telemetry"
)

const defaultModel = "gpt-4o"

// Client implements llm.Client using OpenAI Chat Completions.
type Client struct {
	api   *gopenai.Client
	model string
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	return &Client{api: gopenai.NewClient(apiKey), model: model}, nil
}

// AnalyzeRFP extracts the document text and sends it inline after the
// instruction prompt, requesting a JSON object reply.
func (c *Client) AnalyzeRFP(ctx context.Context, input llm.AnalyzeInput) (string, error) {
	text, err := extract.Text(ctx, input.PDF)
	if err != nil {
		return "", fmt.Errorf("prepare document text: %w", err)
	}

	prompt, _ := llm.PromptTemplate(input.PromptVersion)
	req := gopenai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: llm.MaxOutputTokens,
		ResponseFormat: &gopenai.ChatCompletionResponseFormat{
			Type: gopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleUser, Content: prompt + "\n\nRFP document text:\n\n" + text},
		},
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", llm.ErrTimeout, err)
		}
		return "", fmt.Errorf("openai request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("openai response empty content")
	}

	telemetry.Info("llm.response", map[string]any{
		"provider":          "openai",
		"model":             resp.Model,
		"prompt_version":    input.PromptVersion,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
		"total_tokens":      resp.Usage.TotalTokens,
	})

	return content, nil
}
