// Package audio extracts playback duration from uploaded audio containers.
package audio

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// Duration returns the playback length of an audio payload in whole seconds.
// The container format is chosen from the filename extension (.mp3 or .wav,
// case-insensitive). Fractional seconds are truncated.
//
// Duration is best-effort: any unsupported extension or parse failure yields
// 0 rather than an error, so a corrupt upload never fails ingestion.
func Duration(data []byte, filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	case ".wav":
		streamer, format, err = wav.Decode(bytes.NewReader(data))
	default:
		return 0
	}
	if err != nil {
		slog.Debug("audio duration extraction failed", "filename", filename, "err", err)
		return 0
	}
	defer streamer.Close()

	return int(format.SampleRate.D(streamer.Len()).Seconds())
}
