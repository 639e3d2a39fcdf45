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


// Package search implements hybrid retrieval over job records.
//
// A structured query fans out to two indexes at once: a weighted BM25
// lexical search and an embedding nearest-neighbour search, both carrying
// the same location and experience constraints. The two rankings are
// combined by reciprocal rank fusion, enriched with authoritative records
// from the key-value store, and ranked by required experience with fused
// relevance breaking ties.
//
// Either index may fail without failing the search; the result degrades to
// the surviving index's ranking. Only an embedding failure aborts
// retrieval, since a silently missing vector ranking would skew fusion.
package search
