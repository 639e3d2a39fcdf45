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


// Package ai declares the external reasoning and embedding capabilities the
// pipeline consumes: workflow planning, query rewriting, candidate reranking,
// and text embedding.
//
// The reasoning capabilities are opaque. Their internal behavior is never
// reimplemented here; only their declared input/output contracts matter, and
// every field they return is validated before use. Concrete implementations
// live in subpackages:
//
//   - openai: OpenAI-compatible chat and embedding APIs (Ollama, LocalAI, vLLM)
//   - mock: deterministic test doubles with injectable behavior
//
// ConformVector enforces the fixed embedding dimensionality wherever vectors
// cross a service boundary.
package ai
