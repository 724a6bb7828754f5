// Package mock provides a test double for the stt.Client interface,
// so pipeline and API tests can run without a transcription provider.
package mock

import (
	"context"

	"github.com/soniclabs/callscribe/core"
	"github.com/soniclabs/callscribe/stt"
)

// MockClient is a test double for stt.Client.
// It allows custom behavior injection via function fields.
type MockClient struct {
	// ConvertFunc is called by Convert if set.
	// If nil, a canned single-speaker transcription is returned.
	ConvertFunc func(ctx context.Context, audio []byte, filename string) (*stt.Result, error)

	callCount int
}

// NewMockClient creates a mock transcription client with default canned output.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// WithConvertFunc sets custom Convert behavior and returns the mock for chaining.
func (m *MockClient) WithConvertFunc(fn func(ctx context.Context, audio []byte, filename string) (*stt.Result, error)) *MockClient {
	m.ConvertFunc = fn
	return m
}

// Convert returns the injected behavior or a canned diarized result.
func (m *MockClient) Convert(ctx context.Context, audio []byte, filename string) (*stt.Result, error) {
	m.callCount++

	if m.ConvertFunc != nil {
		return m.ConvertFunc(ctx, audio, filename)
	}

	return &stt.Result{
		Text: "Hello, this is a test call.",
		Tokens: []core.Token{
			{Speaker: "speaker_0", Kind: core.TokenWord, Text: "Hello,", Start: 0.0},
			{Speaker: "speaker_0", Kind: core.TokenSpacing, Text: " ", Start: 0.4},
			{Speaker: "speaker_0", Kind: core.TokenWord, Text: "this", Start: 0.5},
			{Speaker: "speaker_0", Kind: core.TokenSpacing, Text: " ", Start: 0.7},
			{Speaker: "speaker_0", Kind: core.TokenWord, Text: "is", Start: 0.8},
			{Speaker: "speaker_0", Kind: core.TokenSpacing, Text: " ", Start: 0.9},
			{Speaker: "speaker_0", Kind: core.TokenWord, Text: "a", Start: 1.0},
			{Speaker: "speaker_0", Kind: core.TokenSpacing, Text: " ", Start: 1.1},
			{Speaker: "speaker_0", Kind: core.TokenWord, Text: "test", Start: 1.2},
			{Speaker: "speaker_0", Kind: core.TokenSpacing, Text: " ", Start: 1.5},
			{Speaker: "speaker_0", Kind: core.TokenWord, Text: "call.", Start: 1.6},
		},
	}, nil
}

// CallCount returns how many times Convert was invoked.
func (m *MockClient) CallCount() int {
	return m.callCount
}

var _ stt.Client = (*MockClient)(nil)
