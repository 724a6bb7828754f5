package openai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/soniclabs/callscribe/ai"
)

// fakeModel is a scripted llms.Model returning canned responses in order.
type fakeModel struct {
	responses []string
	calls     int
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	idx := f.calls
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	f.calls++
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.responses[idx]}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := f.GenerateContent(ctx, nil)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

const validInsightsJSON = `{
  "summary": "Caller asked about pricing for the premium plan.",
  "tags": ["pricing_inquiry"],
  "sentiment": {"positive": 40, "negative": 10, "neutral": 50},
  "satisfaction_score": 4,
  "key_points": ["Interested in premium plan", "Asked about annual discount"],
  "caller_intent": "Learn premium plan pricing",
  "recommended_action": "Send pricing sheet with annual discount details",
  "confidence": 0.92
}`

func newTestAnalyst(model llms.Model) *Analyst {
	a, err := newAnalyst(ai.NewConfig(
		ai.WithHost("http://localhost:11434/v1"),
		ai.WithToken("none"),
		ai.WithModel("test-model"),
	))
	if err != nil {
		panic(err)
	}
	a.client = model
	return a
}

func TestAnalyze(t *testing.T) {
	analyst := newTestAnalyst(&fakeModel{responses: []string{validInsightsJSON}})

	insights, err := analyst.Analyze(context.Background(), "Hi, how much is the premium plan?")
	require.NoError(t, err)

	assert.Equal(t, "Caller asked about pricing for the premium plan.", insights.Summary)
	assert.Equal(t, []string{"pricing_inquiry"}, insights.Tags)
	assert.Equal(t, 40, insights.Sentiment.Positive)
	assert.Equal(t, 10, insights.Sentiment.Negative)
	assert.Equal(t, 50, insights.Sentiment.Neutral)
	assert.Equal(t, 4, insights.SatisfactionScore)
	assert.Len(t, insights.KeyPoints, 2)
	assert.Equal(t, "Learn premium plan pricing", insights.CallerIntent)
	assert.InDelta(t, 0.92, insights.Confidence, 1e-9)
}

func TestAnalyze_StripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validInsightsJSON + "\n```"
	analyst := newTestAnalyst(&fakeModel{responses: []string{fenced}})

	insights, err := analyst.Analyze(context.Background(), "transcription")
	require.NoError(t, err)
	assert.Equal(t, []string{"pricing_inquiry"}, insights.Tags)
}

func TestAnalyze_RetriesOnMalformedJSON(t *testing.T) {
	model := &fakeModel{responses: []string{"not json at all", validInsightsJSON}}
	analyst := newTestAnalyst(model)

	insights, err := analyst.Analyze(context.Background(), "transcription")
	require.NoError(t, err)
	assert.Equal(t, 2, model.calls)
	assert.NotNil(t, insights)
}

func TestAnalyze_NoStaleFieldsAcrossRetries(t *testing.T) {
	// First response decodes partway before failing; the second omits
	// key_points. Nothing from the failed attempt may survive.
	partial := `{"summary": "stale summary", "key_points": ["leftover"], "tags": [`
	clean := `{
	  "summary": "Caller left a voicemail.",
	  "tags": ["voicemail"],
	  "sentiment": {"positive": 0, "negative": 0, "neutral": 100},
	  "satisfaction_score": 3,
	  "caller_intent": "Leave a message",
	  "recommended_action": "Return the call",
	  "confidence": 0.8
	}`
	model := &fakeModel{responses: []string{partial, clean}}
	analyst := newTestAnalyst(model)

	insights, err := analyst.Analyze(context.Background(), "transcription")
	require.NoError(t, err)
	assert.Equal(t, 2, model.calls)
	assert.Equal(t, "Caller left a voicemail.", insights.Summary)
	assert.Empty(t, insights.KeyPoints)
}

func TestAnalyze_MalformedAfterRetries(t *testing.T) {
	model := &fakeModel{responses: []string{"{broken"}}
	analyst := newTestAnalyst(model)

	insights, err := analyst.Analyze(context.Background(), "transcription")
	assert.Nil(t, insights)
	assert.ErrorIs(t, err, ai.ErrMalformedInsights)
	assert.Equal(t, 3, model.calls)
}

func TestAnalyze_EmptyTranscription(t *testing.T) {
	analyst := newTestAnalyst(&fakeModel{responses: []string{validInsightsJSON}})

	_, err := analyst.Analyze(context.Background(), "   ")
	assert.ErrorIs(t, err, ai.ErrEmptyTranscription)
}

func TestCoerceInsights_ContractViolations(t *testing.T) {
	base := func() *insightsResponse {
		var r insightsResponse
		r.Summary = "summary"
		r.Tags = []string{"voicemail"}
		r.Sentiment.Positive = 0
		r.Sentiment.Negative = 0
		r.Sentiment.Neutral = 100
		r.SatisfactionScore = 3
		r.CallerIntent = "intent"
		r.RecommendedAction = "action"
		r.Confidence = 0.5
		return &r
	}

	tests := []struct {
		name   string
		mutate func(*insightsResponse)
	}{
		{"empty summary", func(r *insightsResponse) { r.Summary = "" }},
		{"no tags", func(r *insightsResponse) { r.Tags = nil }},
		{"too many tags", func(r *insightsResponse) {
			r.Tags = []string{"voicemail", "complaint", "scheduling", "support_issue"}
		}},
		{"unknown tag", func(r *insightsResponse) { r.Tags = []string{"angry_customer"} }},
		{"negative sentiment percentage", func(r *insightsResponse) { r.Sentiment.Negative = -5 }},
		{"satisfaction too low", func(r *insightsResponse) { r.SatisfactionScore = 0 }},
		{"satisfaction too high", func(r *insightsResponse) { r.SatisfactionScore = 6 }},
		{"confidence negative", func(r *insightsResponse) { r.Confidence = -0.1 }},
		{"confidence above one", func(r *insightsResponse) { r.Confidence = 1.1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			tt.mutate(r)
			_, err := coerceInsights(r)
			assert.ErrorIs(t, err, ai.ErrMalformedInsights)
		})
	}

	t.Run("valid passes", func(t *testing.T) {
		insights, err := coerceInsights(base())
		require.NoError(t, err)
		assert.NotNil(t, insights.KeyPoints, "nil key points normalized to empty slice")
	})

	t.Run("rounded sentiment accepted", func(t *testing.T) {
		r := base()
		r.Sentiment.Positive = 33
		r.Sentiment.Negative = 33
		r.Sentiment.Neutral = 33
		insights, err := coerceInsights(r)
		require.NoError(t, err)
		assert.Equal(t, 33, insights.Sentiment.Neutral)
	})
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid untouched", `{"tags": ["voicemail"]}`, `{"tags": ["voicemail"]}`},
		{"missing opening quote", `{summary": "x", tags": []}`, `{"summary": "x", "tags": []}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}
