package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// Fingerprint is a content hash of an uploaded audio payload.
// It is informational: two uploads of the same bytes produce the same
// fingerprint, but records are always keyed by their store-assigned ID.
type Fingerprint uint64

// FingerprintData computes a deterministic fingerprint from raw audio bytes
// using BLAKE2b hashing.
func FingerprintData(data []byte) Fingerprint {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write(data)
	sum := h.Sum(nil)
	return Fingerprint(binary.LittleEndian.Uint64(sum))
}

// TokenKind distinguishes the two kinds of units a transcription provider
// emits in its word stream.
type TokenKind int

const (
	// TokenWord is a spoken word. Only word tokens carry speaker identity
	// and can open or close a speaker turn.
	TokenWord TokenKind = iota + 1
	// TokenSpacing is inter-word glue (whitespace, punctuation, audio
	// events). Spacing attaches to whichever turn is open and never
	// registers a speaker.
	TokenSpacing
)

// Token is one unit of provider output: a word or spacing, with speaker
// attribution and a start offset in seconds from the beginning of the audio.
// Stream order is authoritative; consumers must not reorder tokens.
type Token struct {
	Speaker string
	Kind    TokenKind
	Text    string
	Start   float64
}

// SpeakerTurn is a maximal contiguous run of tokens attributed to one
// speaker. Text is the raw concatenation of the member token texts with a
// single leading/trailing trim; internal spacing is preserved verbatim.
// Start is the start time of the first word token of the turn.
type SpeakerTurn struct {
	Speaker string
	Text    string
	Start   float64
}

// Sentiment is the positive/negative/neutral split of a call, in percent.
// The three values are expected, but not mechanically enforced, to sum to 100.
type Sentiment struct {
	Positive int
	Negative int
	Neutral  int
}

// Insights is the structured analysis of a call transcription produced by
// the AI analyst. Tags are drawn from the closed vocabulary in the ai
// package, at most three per call.
type Insights struct {
	Summary           string
	Tags              []string
	Sentiment         Sentiment
	SatisfactionScore int // 1-5
	KeyPoints         []string
	CallerIntent      string
	RecommendedAction string
	Confidence        float64 // 0.0-1.0
}

// CallRecord is one ingested call. A record always exists with Insights nil
// immediately after creation; Insights transitions at most once from nil to
// a populated value when enrichment succeeds.
type CallRecord struct {
	Id              string // assigned by the store on creation; immutable
	Filename        string
	DurationSeconds int
	Transcription   string // provider flat text, never recomputed from turns
	Transcript      []SpeakerTurn
	Speakers        []string // distinct speakers in first-appearance order
	Insights        *Insights
	Fingerprint     Fingerprint
	UploadedAt      time.Time // assigned by the store on creation
	UpdatedAt       time.Time
}
