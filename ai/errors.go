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


package ai

import "errors"

var (
	// ErrMalformedInsights indicates the model response could not be
	// parsed or violated the insights output contract (unknown tags,
	// sentiment not summing to 100, out-of-range scores).
	ErrMalformedInsights = errors.New("malformed insights response")

	// ErrEmptyTranscription indicates Analyze was called with an empty
	// transcription.
	ErrEmptyTranscription = errors.New("empty transcription")
)
