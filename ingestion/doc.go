// Package ingestion provides the pipeline that turns an uploaded audio
// file into a persisted call record.
//
// The Pipeline type runs the ingestion workflow synchronously:
//   - Validating the upload filename
//   - Transcribing audio with speaker diarization
//   - Segmenting the token stream into speaker turns
//   - Measuring audio duration (best effort)
//   - Persisting the record, then enriching it with AI insights (best effort)
//
// Transcription failure aborts the ingestion before anything is stored.
// Duration and insights failures never fail an ingestion: the record is
// persisted and the enrichment error is reported alongside it.
package ingestion
