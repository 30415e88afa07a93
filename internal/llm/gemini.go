package llm

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/airgraph/airgraph/internal/core/model"
)

type GeminiClassifier struct {
	client *genai.Client
	model  string
	prompt string
}

func NewGeminiClassifier(ctx context.Context, apiKey, modelName, prompt string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiClassifier{
		client: client,
		model:  modelName,
		prompt: prompt,
	}, nil
}

func (c *GeminiClassifier) Classify(ctx context.Context, text string) (model.Sentiment, error) {
	m := c.client.GenerativeModel(c.model)
	resp, err := m.GenerateContent(ctx, genai.Text(fmt.Sprintf(c.prompt, text)))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil && len(resp.Candidates[0].Content.Parts) > 0 {
		if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			return parseLabel(string(txt))
		}
	}

	return "", fmt.Errorf("no response candidates or content")
}
