// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// Defaults match the hosted model the assistant was built against.
const (
	DefaultModel       = "gemini-1.5-pro-002"
	DefaultTemperature = 0.7
)

// ErrNoAPIKey is returned by Complete when no Gemini API key is configured.
// The key is only required on first use, not at startup.
var ErrNoAPIKey = errors.New("llm: GEMINI_API_KEY is not set")

// Config holds the completion client settings.
type Config struct {
	// APIKey is the Gemini API key, usually from GEMINI_API_KEY.
	APIKey string
	// Model is the model identifier to generate with.
	Model string
	// Temperature is the sampling temperature for generation.
	Temperature float64
}

// Client is a thin synchronous wrapper around the Gemini API. One prompt in,
// one generated text out. No retry, no timeout, no streaming - the call
// blocks until the provider returns or errors.
type Client struct {
	apiKey      string
	model       string
	temperature float32

	mu     sync.Mutex
	client *genai.Client // created lazily on first Complete
}

// NewClient creates a completion client. Zero-valued config fields fall back
// to the package defaults.
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	return &Client{
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: float32(temperature),
	}
}

// ModelID returns the configured model identifier.
func (c *Client) ModelID() string {
	return c.model
}

// Complete sends the prompt to the hosted model and returns the full
// generated text. The underlying API client is created on first use, so a
// missing credential surfaces here rather than at startup.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := c.apiClient(ctx)
	if err != nil {
		return "", err
	}

	res, err := client.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("llm: generating content: %w", err)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("llm: empty response from model %s", c.model)
	}

	text := res.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("llm: response from model %s has no text", c.model)
	}
	return text, nil
}

// apiClient returns the lazily constructed genai client.
func (c *Client) apiClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: creating client: %w", err)
	}
	c.client = client
	return client, nil
}
