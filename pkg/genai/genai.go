// Package genai wraps an OpenAI-compatible chat completion endpoint behind
// the single Generate operation the bakery tools depend on. The default
// base URL targets Gemini's OpenAI compatibility layer, but any compatible
// endpoint (OpenRouter, a local proxy) works.
package genai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Config struct {
	BaseURL            string        `envconfig:"BASE_URL" split_words:"true" default:"https://generativelanguage.googleapis.com/v1beta/openai"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	Model              string        `envconfig:"MODEL" split_words:"true" default:"gemini-2.5-flash"`
	MaxCompletionToken int           `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float64       `envconfig:"TEMPERATURE" split_words:"true" default:"0.3"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("genai: api key is required")
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("genai: model is required")
	}
	return nil
}

// Client issues single-prompt completions. Each call is billed upstream;
// callers must not assume cheap retries.
type Client struct {
	sdk   openaisdk.Client
	model string
	cfg   Config
}

func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		sdk:   openaisdk.NewClient(opts...),
		model: strings.TrimSpace(cfg.Model),
		cfg:   cfg,
	}, nil
}

func MustNew(cfg Config) *Client {
	client, err := NewClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Generate sends the prompt as a single user message and returns the raw
// completion text. The output is not validated here; callers that expect
// structured data must parse defensively.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
		Temperature: openaisdk.Float(c.cfg.Temperature),
	}
	if c.cfg.MaxCompletionToken > 0 {
		params.MaxTokens = openaisdk.Int(int64(c.cfg.MaxCompletionToken))
	}

	resp, err := c.sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("genai: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("genai: completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
