// Package llm provides the AI completion collaborator used as the final
// fallback of the resolution chain.
package llm

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arogyamitra/arogya-bot/internal/config"
)

// Client answers a free-form prompt with generated text. Calls may fail;
// callers are expected to degrade to a safe default reply.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type mockClient struct{}

// New returns the OpenAI-backed client, or a mock client when no API key is
// configured so the service can run locally without credentials.
func New(cfg *config.Config, logger *zerolog.Logger) Client {
	if cfg.LLMAPIKey == "" || cfg.LLMAPIKey == llmAPIKeyMock {
		return &mockClient{}
	}

	return NewOpenAI(cfg, logger)
}

func (c *mockClient) Complete(_ context.Context, _ string) (string, error) {
	return mockCompletion, nil
}
