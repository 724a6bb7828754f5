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


// Package openai implements the ai.Analyst interface against
// OpenAI-compatible chat APIs via langchaingo.
//
// The analyst prompts the model in JSON mode with a strict response
// schema, strips markdown fences, repairs common JSON defects, and
// validates the decoded insights against the closed tag vocabulary
// and score ranges before returning them. Up to three parse attempts
// are made per call; provider transport errors are never retried.
package openai
