package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/airgraph/airgraph/internal/core/model"
)

type OpenAIClassifier struct {
	client *openai.Client
	model  string
	prompt string
}

func NewOpenAIClassifier(apiKey, modelName, baseURL, prompt string) *OpenAIClassifier {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIClassifier{
		client: client,
		model:  modelName,
		prompt: prompt,
	}
}

func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (model.Sentiment, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(c.prompt, text),
			},
		},
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}
	return parseLabel(resp.Choices[0].Message.Content)
}
