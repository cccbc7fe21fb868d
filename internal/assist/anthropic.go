package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = anthropic.ModelClaude3_5HaikuLatest

const assistSystemPrompt = "You are embedded in a modal code editor's status line. " +
	"Given a short description of a just-executed editor command, reply with a single " +
	"plain-English sentence explaining what it did. No markdown, no preamble."

type anthropicProvider struct {
	client anthropic.Client
	model  anthropic.Model
}

func newAnthropicProvider(apiKey, model string) *anthropicProvider {
	m := anthropic.Model(model)
	if model == "" {
		m = defaultAnthropicModel
	}
	return &anthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  m,
	}
}

func (p *anthropicProvider) Explain(ctx context.Context, description string) (string, error) {
	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: 128,
		System: []anthropic.TextBlockParam{
			{Text: assistSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(description)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic assist: %w", err)
	}

	var out strings.Builder
	for _, block := range msg.Content {
		out.WriteString(block.Text)
	}
	return strings.TrimSpace(out.String()), nil
}
