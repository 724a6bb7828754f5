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


// Package ai defines the call-analysis boundary: interfaces and
// configuration for deriving structured insights from a call
// transcription with an LLM.
//
// # Architecture
//
// The package follows an interface/implementation split:
//
//   - ai (this package): Analyst interface, Config, tag vocabulary
//   - ai/openai: production implementation against OpenAI-compatible chat APIs
//   - ai/mock: test doubles with injectable behavior
//
// Insights production is best-effort by contract. Callers (the
// ingestion pipeline) treat any error from Analyze as a degraded
// outcome, never a failed ingestion: the call record exists and is
// complete without insights.
//
// # Usage
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("https://api.openai.com/v1"),
//	    ai.WithToken(os.Getenv("OPENAI_API_KEY")),
//	)
//	analyst, err := openai.NewAnalyst(cfg)
//	if err != nil { ... }
//	insights, err := analyst.Analyze(ctx, transcription)
//
// # Output Contract
//
// Analyze returns a fully validated *core.Insights: tags drawn from
// the closed CallTags vocabulary, sentiment percentages summing to
// 100, satisfaction score in 1-5, confidence in [0, 1]. A response
// that cannot be coerced into this shape yields ErrMalformedInsights.
package ai
