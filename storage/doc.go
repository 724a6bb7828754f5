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


// Package storage defines persistence interfaces and serialization for
// call records.
//
// # Architecture
//
// The package follows an interface/implementation split:
//
//   - storage (this package): CallRepository interface, sentinel errors,
//     MUS-format serialization helpers
//   - storage/badger: BadgerDB-backed implementation
//
// # Write Discipline
//
// A call record is created exactly once, always without insights.
// Insights may be attached later through UpdateCallInsights, which
// succeeds at most once per record; subsequent attempts fail with
// ErrInsightsAlreadySet. No other field of a stored record is ever
// rewritten, so a record's transcript and registry remain immutable
// after creation.
//
// # Serialization
//
// Records are serialized with the MUS binary format. The serializers
// (core.CallRecordMUS and friends) are produced by go generate in the
// core package.
package storage
