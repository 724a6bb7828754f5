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


package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AllowedExtensions is the set of upload file extensions accepted for
// ingestion, matched case-insensitively.
var AllowedExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
}

// MaxUploadBytes is the declared upload size limit. It is not currently
// enforced anywhere.
const MaxUploadBytes = 5 * 1024 * 1024

// ValidateFilename checks that a filename carries an allowed audio
// extension.
//
// Rules:
//   - The filename must not be empty.
//   - The extension is matched case-insensitively against AllowedExtensions.
//   - A bare extension such as ".mp3" has an empty base name and is rejected.
func ValidateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCallRecord, ErrEmptyFilename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || !AllowedExtensions[ext] {
		return fmt.Errorf("%w: %q", ErrFileTypeNotAllowed, filename)
	}
	if len(filename) == len(ext) {
		// The whole name is the extension ("hidden file" style), so there
		// is no base name to speak of.
		return fmt.Errorf("%w: %q", ErrFileTypeNotAllowed, filename)
	}
	return nil
}

// ValidateCallRecord validates a CallRecord according to domain rules.
//
// Validation rules:
//   - Filename must be non-empty and carry an allowed extension
//   - DurationSeconds must not be negative
//
// NOT validated (populated by the pipeline or the store):
//   - Insights (nil until enrichment succeeds)
//   - Id, UploadedAt, UpdatedAt (assigned by the store)
func ValidateCallRecord(record *CallRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidCallRecord)
	}

	if err := ValidateFilename(record.Filename); err != nil {
		return err
	}

	if record.DurationSeconds < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCallRecord, ErrNegativeDuration)
	}

	return nil
}

// ValidateTokenKind validates that a TokenKind has a valid value.
func ValidateTokenKind(kind TokenKind) error {
	if kind != TokenWord && kind != TokenSpacing {
		return fmt.Errorf("%w: value %d", ErrInvalidTokenKind, kind)
	}
	return nil
}
