// Copyright 2025 Poiesic Systems
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


// Package openai implements the ai capability interfaces against
// OpenAI-compatible APIs (Ollama, LocalAI, vLLM, OpenAI).
//
// The planner, query rewriter, and reranker share a single JSON-mode chat
// client. Model responses are treated as untrusted: markdown fences are
// stripped, common JSON defects repaired, parsing retried a bounded number
// of times, and every extracted field sanitized before it leaves the package.
//
// The embedder conforms every vector to the configured dimensionality before
// returning it.
package openai
