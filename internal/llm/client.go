package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/airgraph/airgraph/internal/core/model"
)

// Classifier assigns one of the three sentiment labels to review
// text. The rest of the system treats classification as opaque.
type Classifier interface {
	Classify(ctx context.Context, text string) (model.Sentiment, error)
}

// parseLabel extracts a sentiment label from a model reply. Exact
// match is tried first; otherwise the first label mentioned anywhere
// in the reply wins, since models like to answer in sentences.
func parseLabel(response string) (model.Sentiment, error) {
	if label, err := model.ParseSentiment(strings.Trim(response, " \t\n.\"'")); err == nil {
		return label, nil
	}

	lower := strings.ToLower(response)
	best := -1
	var found model.Sentiment
	for _, label := range []model.Sentiment{model.Negative, model.Neutral, model.Positive} {
		if idx := strings.Index(lower, strings.ToLower(string(label))); idx != -1 && (best == -1 || idx < best) {
			best = idx
			found = label
		}
	}
	if best == -1 {
		return "", fmt.Errorf("no sentiment label in response: %q", response)
	}
	return found, nil
}
