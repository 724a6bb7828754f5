package ingestion

import (
	"context"
	"log/slog"

	"github.com/soniclabs/callscribe/ai"
	"github.com/soniclabs/callscribe/audio"
	"github.com/soniclabs/callscribe/core"
	"github.com/soniclabs/callscribe/storage"
	"github.com/soniclabs/callscribe/stt"
	"github.com/soniclabs/callscribe/transcript"
)

// Pipeline orchestrates the ingestion of uploaded call audio.
type Pipeline struct {
	callRepository storage.CallRepository
	transcriber    stt.Client
	analyst        ai.Analyst
	logger         *slog.Logger
}

// Result is the outcome of a successful ingestion. Record is always
// populated. EnrichmentErr is non-nil when the record was stored but
// insights could not be attached; the ingestion still counts as a
// success.
type Result struct {
	Record        *core.CallRecord
	EnrichmentErr error
}

// Degraded reports whether the record was stored without insights.
func (r *Result) Degraded() bool {
	return r.EnrichmentErr != nil
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	callRepository storage.CallRepository,
	transcriber stt.Client,
	analyst ai.Analyst,
	opts ...Option,
) (*Pipeline, error) {
	if callRepository == nil {
		return nil, ErrCallRepositoryRequired
	}
	if transcriber == nil {
		return nil, ErrTranscriberRequired
	}
	if analyst == nil {
		return nil, ErrAnalystRequired
	}

	p := &Pipeline{
		callRepository: callRepository,
		transcriber:    transcriber,
		analyst:        analyst,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest runs the full ingestion workflow for one uploaded file.
//
// The steps run in order: validate, transcribe, segment, measure
// duration, persist, enrich. Exactly one record is created per
// successful call; a validation or transcription failure creates
// nothing. Enrichment failures are folded into the Result rather than
// returned as errors.
func (p *Pipeline) Ingest(ctx context.Context, audioData []byte, filename string) (*Result, error) {
	if err := core.ValidateFilename(filename); err != nil {
		return nil, &ValidationError{Err: err}
	}

	converted, err := p.transcriber.Convert(ctx, audioData, filename)
	if err != nil {
		p.logger.Error("transcription failed", "filename", filename, "err", err)
		return nil, &TranscriptionError{Err: err}
	}

	turns, speakers := transcript.Segment(converted.Tokens)

	// Duration measurement is best effort: 0 means unknown
	duration := audio.Duration(audioData, filename)

	record := &core.CallRecord{
		Filename:        filename,
		DurationSeconds: duration,
		Transcription:   converted.Text,
		Transcript:      turns,
		Speakers:        speakers,
		Fingerprint:     core.FingerprintData(audioData),
	}

	record, err = p.callRepository.CreateCall(ctx, record)
	if err != nil {
		p.logger.Error("failed to persist call record", "filename", filename, "err", err)
		return nil, &PersistenceError{Err: err}
	}

	p.logger.Info("call record created",
		"id", record.Id,
		"filename", filename,
		"duration_seconds", duration,
		"turns", len(turns),
		"speakers", len(speakers))

	if enrichErr := p.enrich(ctx, record); enrichErr != nil {
		p.logger.Warn("insights enrichment failed, record stored without insights",
			"id", record.Id, "err", enrichErr)
		return &Result{Record: record, EnrichmentErr: enrichErr}, nil
	}

	return &Result{Record: record}, nil
}

// enrich analyzes the transcription and attaches the insights to the
// stored record.
func (p *Pipeline) enrich(ctx context.Context, record *core.CallRecord) error {
	insights, err := p.analyst.Analyze(ctx, record.Transcription)
	if err != nil {
		return err
	}

	updated, err := p.callRepository.UpdateCallInsights(ctx, record.Id, insights)
	if err != nil {
		return err
	}

	*record = *updated
	return nil
}
