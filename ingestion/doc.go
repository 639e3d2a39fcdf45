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


// Package ingestion loads job records into both stores.
//
// Records are validated and written to the authoritative key-value store
// synchronously, then embedded and indexed asynchronously on a worker pool.
// Embedding calls are retried with exponential backoff; a batch that still
// fails is indexed with zero vectors so its records remain reachable through
// lexical search. That fallback is deliberately confined to ingestion: a
// query whose embedding fails is an error, never a zero vector.
package ingestion
