package core

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/airgraph/airgraph/internal/core/model"
)

type MockDriver struct {
	QueryExecuted string
	QueryParams   map[string]interface{}
	Calls         int
	MockResult    neo4j.EagerResult
	Err           error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.QueryExecuted = query
	m.QueryParams = params
	m.Calls++
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	return m.MockResult, nil
}

func (m *MockDriver) BuildConstraints(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

type MockClassifier struct {
	Label    model.Sentiment
	Err      error
	Calls    int
	LastText string
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (model.Sentiment, error) {
	m.Calls++
	m.LastText = text
	if m.Err != nil {
		return "", m.Err
	}
	return m.Label, nil
}
