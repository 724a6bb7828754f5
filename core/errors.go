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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCallRecord indicates a CallRecord failed validation.
	ErrInvalidCallRecord = errors.New("invalid call record")

	// ErrEmptyFilename indicates the Filename field is empty.
	ErrEmptyFilename = errors.New("filename cannot be empty")

	// ErrFileTypeNotAllowed indicates a filename whose extension is not in
	// the allowed set.
	ErrFileTypeNotAllowed = errors.New("file type not allowed")

	// ErrNegativeDuration indicates a negative duration value.
	ErrNegativeDuration = errors.New("duration cannot be negative")

	// ErrInvalidTokenKind indicates an invalid TokenKind value.
	ErrInvalidTokenKind = errors.New("invalid token kind")
)
