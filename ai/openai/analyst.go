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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/soniclabs/callscribe/ai"
	"github.com/soniclabs/callscribe/core"
)

// Analyst implements ai.Analyst using OpenAI-compatible chat APIs.
type Analyst struct {
	client llms.Model
	logger *slog.Logger
}

// insightsResponse is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type insightsResponse struct {
	Summary   string   `json:"summary"`
	Tags      []string `json:"tags"`
	Sentiment struct {
		Positive int `json:"positive"`
		Negative int `json:"negative"`
		Neutral  int `json:"neutral"`
	} `json:"sentiment"`
	SatisfactionScore int      `json:"satisfaction_score"`
	KeyPoints         []string `json:"key_points"`
	CallerIntent      string   `json:"caller_intent"`
	RecommendedAction string   `json:"recommended_action"`
	Confidence        float64  `json:"confidence"`
}

// newAnalyst is an internal constructor that returns the concrete type.
func newAnalyst(config *ai.Config) (*Analyst, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Analyst{
		client: client,
		logger: slog.Default().With("component", "openai-analyst"),
	}, nil
}

// NewAnalyst creates a call analyst using the provided configuration.
//
// Returns ai.Analyst interface to enforce abstraction.
func NewAnalyst(config *ai.Config) (ai.Analyst, error) {
	return newAnalyst(config)
}

// Analyze derives structured insights from a transcription using an LLM.
// The decoded response is validated against the insights contract before
// being returned; contract violations surface as ai.ErrMalformedInsights.
func (a *Analyst) Analyze(ctx context.Context, transcription string) (*core.Insights, error) {
	if strings.TrimSpace(transcription) == "" {
		return nil, ai.ErrEmptyTranscription
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(transcription),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result insightsResponse
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return nil, fmt.Errorf("%w: no choices returned", ai.ErrMalformedInsights)
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		// Reset so a partial decode from a failed attempt cannot leak
		// stale fields into this one.
		result = insightsResponse{}
		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing analyst response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse analyst response after retries", "err", lastErr)
		return nil, fmt.Errorf("%w: %v", ai.ErrMalformedInsights, lastErr)
	}

	insights, err := coerceInsights(&result)
	if err != nil {
		a.logger.Error("analyst response violates insights contract", "err", err)
		return nil, err
	}

	a.logger.Debug("call analysis complete",
		"tags", insights.Tags,
		"satisfaction", insights.SatisfactionScore,
		"confidence", insights.Confidence)

	return insights, nil
}

// coerceInsights validates the decoded response against the insights
// contract and converts it into the domain type.
func coerceInsights(r *insightsResponse) (*core.Insights, error) {
	if r.Summary == "" {
		return nil, fmt.Errorf("%w: empty summary", ai.ErrMalformedInsights)
	}
	if len(r.Tags) == 0 || len(r.Tags) > ai.MaxTags {
		return nil, fmt.Errorf("%w: expected 1-%d tags, got %d", ai.ErrMalformedInsights, ai.MaxTags, len(r.Tags))
	}
	for _, tag := range r.Tags {
		if !ai.IsValidTag(tag) {
			return nil, fmt.Errorf("%w: unknown tag %q", ai.ErrMalformedInsights, tag)
		}
	}
	// The prompt asks for percentages summing to 100, but rounding
	// artifacts like 33/33/33 are tolerated. Only negatives are rejected.
	if r.Sentiment.Positive < 0 || r.Sentiment.Negative < 0 || r.Sentiment.Neutral < 0 {
		return nil, fmt.Errorf("%w: negative sentiment percentage", ai.ErrMalformedInsights)
	}
	if r.SatisfactionScore < 1 || r.SatisfactionScore > 5 {
		return nil, fmt.Errorf("%w: satisfaction score %d out of range", ai.ErrMalformedInsights, r.SatisfactionScore)
	}
	if r.Confidence < 0.0 || r.Confidence > 1.0 {
		return nil, fmt.Errorf("%w: confidence %v out of range", ai.ErrMalformedInsights, r.Confidence)
	}

	keyPoints := r.KeyPoints
	if keyPoints == nil {
		keyPoints = []string{}
	}

	return &core.Insights{
		Summary: r.Summary,
		Tags:    r.Tags,
		Sentiment: core.Sentiment{
			Positive: r.Sentiment.Positive,
			Negative: r.Sentiment.Negative,
			Neutral:  r.Sentiment.Neutral,
		},
		SatisfactionScore: r.SatisfactionScore,
		KeyPoints:         keyPoints,
		CallerIntent:      r.CallerIntent,
		RecommendedAction: r.RecommendedAction,
		Confidence:        r.Confidence,
	}, nil
}
