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


// Package transcript turns the flat, time-ordered token stream returned by a
// transcription provider into coherent speaker turns.
//
// A provider with diarization enabled emits words and inter-word spacing as
// one flat sequence, each entry tagged with a speaker and a start timestamp.
// Segment regroups that stream losslessly: every word token belongs to
// exactly one turn, spacing attaches to the turn that is open when it
// arrives, and turn order follows stream order.
//
// Segment is a pure function with no I/O and no hidden state, so it can be
// unit tested without any external dependency.
package transcript
