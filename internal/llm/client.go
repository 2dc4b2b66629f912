// Package llm wraps the Azure OpenAI chat-completions API behind a small
// synchronous client. Each call gets an explicit timeout and one retry on
// transient transport errors; nothing is streamed.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Sentinel errors for client operations.
var (
	ErrMissingCredentials = errors.New("azure openai credentials missing")
	ErrEmptyCompletion    = errors.New("model returned empty content")
	ErrCompletion         = errors.New("chat completion failed")
)

// Defaults matching the deployed service configuration.
const (
	DefaultAPIVersion  = "2024-06-01"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 16384
	DefaultTimeout     = 2 * time.Minute
)

// transientRetries is the number of extra attempts after a transient failure.
const transientRetries = 1

// Config holds connection and generation settings for one client.
type Config struct {
	APIKey      string
	Endpoint    string // https://<resource>.openai.azure.com/
	Deployment  string // Azure deployment name, used as the model
	APIVersion  string // empty = DefaultAPIVersion
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Client is a synchronous chat-completions client bound to one deployment.
type Client struct {
	api         *openai.Client
	deployment  string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// NewClient validates cfg and builds a client. Missing credentials are a
// configuration error, reported before any network traffic happens.
func NewClient(cfg Config) (*Client, error) {
	var missing []string
	if cfg.APIKey == "" {
		missing = append(missing, "api key")
	}
	if cfg.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if cfg.Deployment == "" {
		missing = append(missing, "deployment")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	ac := openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	ac.APIVersion = DefaultAPIVersion
	if cfg.APIVersion != "" {
		ac.APIVersion = cfg.APIVersion
	}

	c := &Client{
		api:         openai.NewClientWithConfig(ac),
		deployment:  cfg.Deployment,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
	}
	if c.temperature == 0 {
		c.temperature = DefaultTemperature
	}
	if c.maxTokens == 0 {
		c.maxTokens = DefaultMaxTokens
	}
	if c.timeout == 0 {
		c.timeout = DefaultTimeout
	}
	return c, nil
}

// Complete sends one system+user prompt pair and returns the model's text.
// Transient failures (timeouts, 429, 5xx) are retried once; everything else
// propagates immediately. Caller cancellation always wins.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= transientRetries; attempt++ {
		content, err := c.complete(ctx, systemPrompt, userPrompt)
		if err == nil {
			return content, nil
		}
		lastErr = err
		if ctx.Err() != nil || !isTransient(err) {
			return "", err
		}
	}
	return "", lastErr
}

func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: c.deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature:         c.temperature,
		MaxCompletionTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCompletion, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	choice := resp.Choices[0]
	if strings.TrimSpace(choice.Message.Content) == "" {
		return "", fmt.Errorf("%w (finish_reason=%s)", ErrEmptyCompletion, choice.FinishReason)
	}
	return choice.Message.Content, nil
}

// isTransient reports whether err is worth exactly one more attempt.
func isTransient(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
