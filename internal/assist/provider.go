package assist

import (
	"context"
	"fmt"
	"os"

	"github.com/0xsj/modaled/internal/config"
)

// Provider explains a completed vim.Cmd in a sentence of natural
// language, for display on the status line.
type Provider interface {
	// Explain returns a short explanation of description (typically
	// the host's one-line summary of a Cmd, e.g. "69 Delete Right*20").
	Explain(ctx context.Context, description string) (string, error)
}

// ErrDisabled is returned by New when cfg.Provider is empty —
// the F1 hotkey is then a no-op at the host level.
var ErrDisabled = fmt.Errorf("assist: no provider configured")

// New builds the configured Provider. Returns ErrDisabled if
// cfg.Provider is empty, and a plain error if the provider is
// unrecognized or its API key environment variable is unset.
func New(cfg config.AISettings) (Provider, error) {
	if cfg.Provider == "" {
		return nil, ErrDisabled
	}

	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("assist: environment variable %s is not set", cfg.APIKeyEnv)
	}

	switch cfg.Provider {
	case "anthropic":
		return newAnthropicProvider(apiKey, cfg.Model), nil
	case "openai":
		return newOpenAIProvider(apiKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("assist: unknown provider %q", cfg.Provider)
	}
}
