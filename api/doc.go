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


// Package api exposes the call-ingestion service over HTTP.
//
// Endpoints:
//
//	GET  /          liveness check
//	GET  /calls     all stored calls, most recent first
//	GET  /call/:id  a single call by ID
//	POST /upload    multipart audio upload, runs the full ingestion pipeline
//
// Upload handling is bounded by a worker pool: at most N uploads run
// through the pipeline concurrently, the rest queue. Responses follow
// the original JSON contract with snake_case field names; insights are
// null when enrichment failed or has not happened.
package api
