package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soniclabs/callscribe/core"
)

func TestCallRecordRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	record := &core.CallRecord{
		Id:              "0d9af2f3-3f0a-44aa-9d77-0e5a38e0c9a1",
		Filename:        "call.mp3",
		DurationSeconds: 127,
		Transcription:   "Hello there. Hi, who is this?",
		Transcript: []core.SpeakerTurn{
			{Speaker: "speaker_0", Text: "Hello there.", Start: 0.1},
			{Speaker: "speaker_1", Text: "Hi, who is this?", Start: 1.3},
		},
		Speakers:    []string{"speaker_0", "speaker_1"},
		Fingerprint: core.FingerprintData([]byte("audio bytes")),
		UploadedAt:  now,
		UpdatedAt:   now,
	}

	decoded, err := UnmarshalCallRecord(MarshalCallRecord(record))
	require.NoError(t, err)
	require.NotNil(t, decoded)

	assert.Equal(t, record.Id, decoded.Id)
	assert.Equal(t, record.Filename, decoded.Filename)
	assert.Equal(t, record.DurationSeconds, decoded.DurationSeconds)
	assert.Equal(t, record.Transcription, decoded.Transcription)
	assert.Equal(t, record.Transcript, decoded.Transcript)
	assert.Equal(t, record.Speakers, decoded.Speakers)
	assert.Equal(t, record.Fingerprint, decoded.Fingerprint)
	assert.True(t, record.UploadedAt.Equal(decoded.UploadedAt))
	assert.True(t, record.UpdatedAt.Equal(decoded.UpdatedAt))
	assert.Nil(t, decoded.Insights)
}

func TestCallRecordRoundTripWithInsights(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	record := &core.CallRecord{
		Id:              "7c2f7a80-51a5-4e11-93b0-2f4d6c1f5a77",
		Filename:        "call.wav",
		DurationSeconds: 0,
		Transcription:   "Please leave a message.",
		Transcript: []core.SpeakerTurn{
			{Speaker: "speaker_0", Text: "Please leave a message.", Start: 0.0},
		},
		Speakers: []string{"speaker_0"},
		Insights: &core.Insights{
			Summary:           "Voicemail reached, no conversation.",
			Tags:              []string{"voicemail"},
			Sentiment:         core.Sentiment{Positive: 0, Negative: 0, Neutral: 100},
			SatisfactionScore: 3,
			KeyPoints:         []string{"No live answer"},
			CallerIntent:      "Reach the customer",
			RecommendedAction: "Retry the call later",
			Confidence:        0.95,
		},
		Fingerprint: core.FingerprintData([]byte("voicemail audio")),
		UploadedAt:  now,
		UpdatedAt:   now.Add(2 * time.Second),
	}

	decoded, err := UnmarshalCallRecord(MarshalCallRecord(record))
	require.NoError(t, err)
	require.NotNil(t, decoded)

	require.NotNil(t, decoded.Insights)
	assert.Equal(t, record.Insights, decoded.Insights)
	assert.Equal(t, record.Transcript, decoded.Transcript)
	assert.True(t, record.UploadedAt.Equal(decoded.UploadedAt))
	assert.True(t, record.UpdatedAt.Equal(decoded.UpdatedAt))
}

func TestUnmarshalCallRecordCorrupt(t *testing.T) {
	_, err := UnmarshalCallRecord([]byte{0xff, 0x01, 0x02})
	assert.Error(t, err)
}
