// Package mock provides a test double for the ai.Analyst interface,
// so pipeline and API tests can run without an LLM provider.
package mock

import (
	"context"

	"github.com/soniclabs/callscribe/ai"
	"github.com/soniclabs/callscribe/core"
)

var _ ai.Analyst = (*MockAnalyst)(nil)

// MockAnalyst is a test double for ai.Analyst.
// It allows custom behavior injection via function fields.
type MockAnalyst struct {
	// AnalyzeFunc is called by Analyze if set.
	// If nil, canned valid insights are returned.
	AnalyzeFunc func(ctx context.Context, transcription string) (*core.Insights, error)

	callCount int
}

// NewMockAnalyst creates a mock analyst with default canned insights.
func NewMockAnalyst() *MockAnalyst {
	return &MockAnalyst{}
}

// WithAnalyzeFunc sets custom Analyze behavior and returns the mock for chaining.
func (m *MockAnalyst) WithAnalyzeFunc(fn func(ctx context.Context, transcription string) (*core.Insights, error)) *MockAnalyst {
	m.AnalyzeFunc = fn
	return m
}

// Analyze returns the injected behavior or canned contract-valid insights.
func (m *MockAnalyst) Analyze(ctx context.Context, transcription string) (*core.Insights, error) {
	m.callCount++

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, transcription)
	}

	return &core.Insights{
		Summary:           "Test call analyzed by mock analyst.",
		Tags:              []string{"requesting_info"},
		Sentiment:         core.Sentiment{Positive: 30, Negative: 10, Neutral: 60},
		SatisfactionScore: 3,
		KeyPoints:         []string{"Caller requested information"},
		CallerIntent:      "Request information",
		RecommendedAction: "Send requested information",
		Confidence:        0.8,
	}, nil
}

// CallCount returns how many times Analyze was invoked.
func (m *MockAnalyst) CallCount() int {
	return m.callCount
}
