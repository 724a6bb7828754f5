// Package stt defines the boundary to external speech-to-text providers.
package stt

import (
	"context"

	"github.com/soniclabs/callscribe/core"
)

// Result is a provider transcription mapped into domain shapes.
//
// Text is the provider's own flattened transcript and is persisted verbatim;
// it is a separate provider field, not a reconstruction from Tokens, and the
// two are not required to agree byte-for-byte.
type Result struct {
	Text   string
	Tokens []core.Token
}

// Client converts raw audio bytes into a diarized transcription.
// Implementations must be safe for concurrent use and must not retry
// failed provider calls.
type Client interface {
	// Convert sends the audio payload to the provider and returns the
	// transcription with per-speaker word attribution. Any transport or
	// provider fault is returned as an error; no partial result is
	// produced on failure.
	Convert(ctx context.Context, audio []byte, filename string) (*Result, error)
}
