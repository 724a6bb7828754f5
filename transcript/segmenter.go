package transcript

import (
	"strings"

	"github.com/soniclabs/callscribe/core"
)

// Segment regroups a provider token stream into speaker turns and returns
// them together with the registry of distinct speakers in first-appearance
// order among word tokens.
//
// The pass is linear with no lookahead and no backtracking:
//
//   - A word token whose speaker differs from the open turn's speaker (or
//     arriving when no turn is open) closes the open turn and opens a new
//     one starting at that token's timestamp.
//   - A word token from the same speaker, or any spacing token, appends its
//     text to the open turn.
//   - Spacing that arrives before any word token has nowhere to attach and
//     is dropped.
//   - The stream end closes the open turn.
//
// Turn text is the raw concatenation of its token texts with a single
// leading/trailing trim; internal spacing is preserved verbatim. Speaker ids
// are compared exactly, with no merging of near-identical ids. Input order
// is authoritative, so turn start times inherit the stream's non-decreasing
// order.
func Segment(tokens []core.Token) ([]core.SpeakerTurn, []string) {
	turns := []core.SpeakerTurn{}
	speakers := []string{}
	seen := make(map[string]bool)

	var (
		currentSpeaker string
		currentText    []string
		currentStart   float64
		open           bool
	)

	closeTurn := func() {
		if !open || len(currentText) == 0 {
			return
		}
		turns = append(turns, core.SpeakerTurn{
			Speaker: currentSpeaker,
			Text:    strings.TrimSpace(strings.Join(currentText, "")),
			Start:   currentStart,
		})
	}

	for _, tok := range tokens {
		if tok.Kind == core.TokenWord && !seen[tok.Speaker] {
			seen[tok.Speaker] = true
			speakers = append(speakers, tok.Speaker)
		}

		if tok.Kind == core.TokenWord && (!open || tok.Speaker != currentSpeaker) {
			closeTurn()
			currentSpeaker = tok.Speaker
			currentText = []string{tok.Text}
			currentStart = tok.Start
			open = true
			continue
		}

		// Spacing, or a word continuing the current speaker's turn. The
		// turn's start time never moves.
		if open {
			currentText = append(currentText, tok.Text)
		}
	}

	closeTurn()
	return turns, speakers
}
