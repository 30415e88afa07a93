package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/airgraph/airgraph/internal/core/model"
	"github.com/airgraph/airgraph/internal/core/validate"
	"github.com/airgraph/airgraph/internal/driver"
	"github.com/airgraph/airgraph/internal/llm"
)

// ingestedAtLayout is fixed-width so the stored stamps sort
// lexically in chronological order; RFC3339Nano trims trailing
// fractional zeros and would invert sub-second ordering.
const ingestedAtLayout = "2006-01-02T15:04:05.000000000Z"

// Engine is the graph ingestion and aggregation core. It holds its
// collaborators as explicit capabilities; lifecycle (connect, close)
// belongs to the caller.
type Engine struct {
	Driver     driver.GraphDriver
	Classifier llm.Classifier

	// Overridable for deterministic tests.
	UUIDGenerator func() string
	Now           func() time.Time
}

func NewEngine(d driver.GraphDriver, classifier llm.Classifier) *Engine {
	return &Engine{
		Driver:        d,
		Classifier:    classifier,
		UUIDGenerator: func() string { return uuid.New().String() },
		Now:           time.Now,
	}
}

func (e *Engine) BuildConstraints(ctx context.Context) error {
	if e.Driver == nil {
		return ErrStoreUnavailable
	}
	return e.Driver.BuildConstraints(ctx)
}

// IngestResult reports a successful ingestion: the identity of the
// new Review node and the label the classifier assigned.
type IngestResult struct {
	ReviewID  string          `json:"review_id"`
	Sentiment model.Sentiment `json:"sentiment"`
}

// IngestReview validates the submission, classifies the review text,
// and writes the review with its six linked dimension nodes in one
// atomic unit. Validation failures never reach the classifier or the
// store.
func (e *Engine) IngestReview(ctx context.Context, fields model.Fields, reviewText string) (*IngestResult, error) {
	params, err := validate.Normalize(fields, reviewText)
	if err != nil {
		return nil, err
	}

	if e.Driver == nil {
		return nil, ErrStoreUnavailable
	}

	label, err := e.Classifier.Classify(ctx, reviewText)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	reviewID := e.UUIDGenerator()
	params["uuid"] = reviewID
	params["ingested_at"] = e.Now().UTC().Format(ingestedAtLayout)
	params["sentiment"] = string(label)

	if _, err := e.Driver.ExecuteQuery(ctx, driver.SaveReviewQuery, params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGraphWrite, err)
	}

	return &IngestResult{ReviewID: reviewID, Sentiment: label}, nil
}

// AspectDistribution counts rated reviews per (aspect, category),
// ordered by aspect then category. An empty store yields an empty
// slice, not an error.
func (e *Engine) AspectDistribution(ctx context.Context) ([]model.AspectCount, error) {
	if e.Driver == nil {
		return nil, ErrStoreUnavailable
	}

	result, err := e.Driver.ExecuteQuery(ctx, driver.AspectSentimentQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAggregationQuery, err)
	}

	counts := make([]model.AspectCount, 0, len(result.Records))
	for _, rec := range result.Records {
		aspect, _ := rec.Get("aspect")
		category, _ := rec.Get("sentiment_category")
		total, _ := rec.Get("total_reviews")

		name, ok := aspect.(string)
		if !ok {
			// Schema drift; a phantom zero row would be worse than a
			// missing one.
			log.Printf("Warning: skipping aggregation row with non-string aspect %v", aspect)
			continue
		}

		row := model.AspectCount{Aspect: name}
		if s, ok := category.(string); ok {
			row.Category = model.Sentiment(s)
		}
		if n, ok := total.(int64); ok {
			row.Count = n
		}
		counts = append(counts, row)
	}

	return counts, nil
}

// LatestReview returns the most recently ingested review's passenger
// name and raw aspect scores, unrated sentinel preserved. A nil
// snapshot with nil error means the store holds no reviews yet.
func (e *Engine) LatestReview(ctx context.Context) (*model.LatestReview, error) {
	if e.Driver == nil {
		return nil, ErrStoreUnavailable
	}

	result, err := e.Driver.ExecuteQuery(ctx, driver.LatestReviewQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAggregationQuery, err)
	}

	if len(result.Records) == 0 {
		return nil, nil
	}

	rec := result.Records[0]
	latest := &model.LatestReview{Scores: make(map[string]float64, len(model.Aspects))}

	if v, _ := rec.Get("PassengerName"); v != nil {
		if s, ok := v.(string); ok {
			latest.PassengerName = s
		}
	}

	for _, aspect := range model.Aspects {
		v, _ := rec.Get(aspect)
		latest.Scores[aspect] = asScore(v)
	}

	return latest, nil
}

// asScore coerces a stored score value. Nulls and non-numeric values
// collapse to the unrated sentinel, matching how they were written.
func asScore(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return model.UnratedScore
	}
}
