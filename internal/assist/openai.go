package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = openai.ChatModelGPT4oMini

type openAIProvider struct {
	client openai.Client
	model  openai.ChatModel
}

func newOpenAIProvider(apiKey, model string) *openAIProvider {
	m := openai.ChatModel(model)
	if model == "" {
		m = defaultOpenAIModel
	}
	return &openAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  m,
	}
}

func (p *openAIProvider) Explain(ctx context.Context, description string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(assistSystemPrompt),
			openai.UserMessage(description),
		},
		MaxTokens: openai.Int(128),
	})
	if err != nil {
		return "", fmt.Errorf("openai assist: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai assist: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
