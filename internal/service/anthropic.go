package service

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient calls the Anthropic messages API.
type AnthropicClient struct {
	client     anthropic.Client
	configured bool
}

// NewAnthropicClient creates a client for the given key. An empty key
// produces a client whose calls fail with an ExternalServiceError.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		client:     anthropic.NewClient(option.WithAPIKey(apiKey)),
		configured: apiKey != "",
	}
}

// Complete sends a system and user message pair and returns the assistant's
// reply text.
func (c *AnthropicClient) Complete(ctx context.Context, model, systemMessage, userPrompt string) (string, error) {
	if !c.configured {
		return "", &ExternalServiceError{Service: "anthropic", Err: fmt.Errorf("API key not configured")}
	}

	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1000,
		System: []anthropic.TextBlockParam{
			{Text: systemMessage},
		},
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: userPrompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", &ExternalServiceError{Service: "anthropic", Err: err}
	}

	for _, block := range response.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", &ExternalServiceError{Service: "anthropic", Err: fmt.Errorf("empty completion")}
}
