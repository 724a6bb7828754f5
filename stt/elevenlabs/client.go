// Copyright 2026 Soniclabs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package elevenlabs implements stt.Client against the ElevenLabs
// speech-to-text API.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/soniclabs/callscribe/core"
	"github.com/soniclabs/callscribe/stt"
)

const (
	// DefaultBaseURL is the production ElevenLabs API root.
	DefaultBaseURL = "https://api.elevenlabs.io/v1"
	// DefaultModelID is the diarizing transcription model.
	DefaultModelID = "scribe_v1"

	transcribePath = "/speech-to-text"

	defaultTimeout = 120 * time.Second
)

// ErrAPIKeyRequired is returned when a client is constructed without an API key.
var ErrAPIKeyRequired = errors.New("elevenlabs: API key required")

// transcribeResponse is the provider wire shape. Only the fields the
// pipeline consumes are mapped; everything else is ignored.
type transcribeResponse struct {
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
	Words        []struct {
		Text      string  `json:"text"`
		Type      string  `json:"type"` // word, spacing, audio_event
		Start     float64 `json:"start"`
		End       float64 `json:"end"`
		SpeakerID string  `json:"speaker_id"`
	} `json:"words"`
}

// Client calls the ElevenLabs speech-to-text endpoint with diarization
// enabled. It performs no retries; a failed call surfaces as an error to
// the pipeline, which treats transcription failure as fatal.
type Client struct {
	apiKey     string
	baseURL    string
	modelID    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ stt.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithModelID overrides the transcription model.
func WithModelID(modelID string) Option {
	return func(c *Client) {
		c.modelID = modelID
	}
}

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout bounds each provider call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates an ElevenLabs transcription client.
//
// Returns stt.Client interface to enforce abstraction.
func NewClient(apiKey string, opts ...Option) (stt.Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		modelID:    DefaultModelID,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default().With("component", "elevenlabs-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Convert uploads the audio payload and maps the provider response into
// domain tokens at the boundary, so nothing downstream performs ad hoc
// shape checks.
func (c *Client) Convert(ctx context.Context, audio []byte, filename string) (*stt.Result, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if err := w.WriteField("model_id", c.modelID); err != nil {
		return nil, fmt.Errorf("elevenlabs: building request: %w", err)
	}
	if err := w.WriteField("diarize", "true"); err != nil {
		return nil, fmt.Errorf("elevenlabs: building request: %w", err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: building request: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("elevenlabs: building request: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("elevenlabs: building request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transcribePath, &body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: building request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("xi-api-key", c.apiKey)

	c.logger.Debug("transcribing audio", "filename", filename, "bytes", len(audio), "model", c.modelID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs: reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("elevenlabs: transcription failed: status=%d body=%s",
			resp.StatusCode, truncate(string(payload), 200))
	}

	var decoded transcribeResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("elevenlabs: unparseable response: %w", err)
	}

	tokens := make([]core.Token, 0, len(decoded.Words))
	for _, word := range decoded.Words {
		kind := core.TokenSpacing
		if word.Type == "word" {
			kind = core.TokenWord
		}
		tokens = append(tokens, core.Token{
			Speaker: word.SpeakerID,
			Kind:    kind,
			Text:    word.Text,
			Start:   word.Start,
		})
	}

	c.logger.Debug("transcription complete",
		"filename", filename,
		"language", decoded.LanguageCode,
		"tokens", len(tokens))

	return &stt.Result{Text: decoded.Text, Tokens: tokens}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
