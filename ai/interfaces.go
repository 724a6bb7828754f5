package ai

import (
	"context"

	"github.com/soniclabs/callscribe/core"
)

// Analyst derives structured insights from a call transcription.
// Implementations must be thread-safe for concurrent use.
type Analyst interface {
	// Analyze examines the flat transcription text and returns structured
	// insights about the call: summary, intent tags, sentiment breakdown,
	// satisfaction score, key points, and a confidence estimate.
	// The returned insights satisfy core.Insights validation invariants.
	// Returns an error if the provider call fails or the response cannot
	// be coerced into a valid Insights value.
	Analyze(ctx context.Context, transcription string) (*core.Insights, error)
}
