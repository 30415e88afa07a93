package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/airgraph/airgraph/internal/core/model"
)

type ClaudeClassifier struct {
	client *anthropic.Client
	model  string
	prompt string
}

func NewClaudeClassifier(apiKey, modelName, baseURL, prompt string) *ClaudeClassifier {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}

	client := anthropic.NewClient(apiKey, opts...)

	return &ClaudeClassifier{
		client: client,
		model:  modelName,
		prompt: prompt,
	}
}

func (c *ClaudeClassifier) Classify(ctx context.Context, text string) (model.Sentiment, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(fmt.Sprintf(c.prompt, text)),
				},
			},
		},
		MaxTokens: 16,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Content) == 0 || resp.Content[0].Text == nil {
		return "", fmt.Errorf("no response content")
	}
	return parseLabel(*resp.Content[0].Text)
}
