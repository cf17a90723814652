package genai

import (
	"context"
	"fmt"

	"github.com/aicorp/command-center-go/internal/config"
	genaiSDK "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the official Google generative AI SDK
type Client struct {
	sdk   *genaiSDK.Client
	model *genaiSDK.GenerativeModel
	cfg   config.GenAIConfig
}

// NewClient creates a new Gemini client using the official SDK
func NewClient(ctx context.Context, cfg config.GenAIConfig) (*Client, error) {
	sdk, err := genaiSDK.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := sdk.GenerativeModel(cfg.Model)
	// The verdict schema is strict JSON; keep the model on-format.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.1)

	return &Client{
		sdk:   sdk,
		model: model,
		cfg:   cfg,
	}, nil
}

// Close releases the underlying SDK connection.
func (c *Client) Close() error {
	return c.sdk.Close()
}

// generate runs one prompt and returns the concatenated text parts of the
// first candidate.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genaiSDK.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genaiSDK.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", fmt.Errorf("no text parts in model response")
	}
	return out, nil
}
