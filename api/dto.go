package api

import (
	"time"

	"github.com/soniclabs/callscribe/core"
)

// transcriptSegment is one speaker turn in the wire format.
type transcriptSegment struct {
	Speaker   string  `json:"speaker"`
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
}

// sentimentResponse is the sentiment breakdown in the wire format.
type sentimentResponse struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// insightsResponse is the insights object in the wire format.
type insightsResponse struct {
	Summary           string            `json:"summary"`
	Tags              []string          `json:"tags"`
	Sentiment         sentimentResponse `json:"sentiment"`
	SatisfactionScore int               `json:"satisfaction_score"`
	KeyPoints         []string          `json:"key_points"`
	CallerIntent      string            `json:"caller_intent"`
	RecommendedAction string            `json:"recommended_action"`
	Confidence        float64           `json:"confidence"`
}

// callResponse is a call record in the wire format. Insights is null
// until enrichment succeeds.
type callResponse struct {
	Success             bool                `json:"success"`
	CallID              string              `json:"call_id"`
	Filename            string              `json:"filename"`
	DurationSeconds     int                 `json:"duration_seconds"`
	Transcription       string              `json:"transcription"`
	FormattedTranscript []transcriptSegment `json:"formatted_transcript"`
	Speakers            []string            `json:"speakers"`
	Insights            *insightsResponse   `json:"insights"`
	UploadedAt          string              `json:"uploaded_at"`
}

// callListResponse wraps the /calls listing.
type callListResponse struct {
	Success bool           `json:"success"`
	Calls   []callResponse `json:"calls"`
}

// errorResponse is the error envelope.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// toCallResponse converts a domain record into the wire format.
func toCallResponse(record *core.CallRecord) callResponse {
	segments := make([]transcriptSegment, len(record.Transcript))
	for i, turn := range record.Transcript {
		segments[i] = transcriptSegment{
			Speaker:   turn.Speaker,
			Text:      turn.Text,
			StartTime: turn.Start,
		}
	}

	speakers := record.Speakers
	if speakers == nil {
		speakers = []string{}
	}

	return callResponse{
		Success:             true,
		CallID:              record.Id,
		Filename:            record.Filename,
		DurationSeconds:     record.DurationSeconds,
		Transcription:       record.Transcription,
		FormattedTranscript: segments,
		Speakers:            speakers,
		Insights:            toInsightsResponse(record.Insights),
		UploadedAt:          record.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func toInsightsResponse(insights *core.Insights) *insightsResponse {
	if insights == nil {
		return nil
	}
	return &insightsResponse{
		Summary: insights.Summary,
		Tags:    insights.Tags,
		Sentiment: sentimentResponse{
			Positive: insights.Sentiment.Positive,
			Negative: insights.Sentiment.Negative,
			Neutral:  insights.Sentiment.Neutral,
		},
		SatisfactionScore: insights.SatisfactionScore,
		KeyPoints:         insights.KeyPoints,
		CallerIntent:      insights.CallerIntent,
		RecommendedAction: insights.RecommendedAction,
		Confidence:        insights.Confidence,
	}
}
