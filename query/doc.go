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


// Package query builds structured search descriptors for the job indexes.
//
// The Builder accumulates weighted text terms, equality filters, a range
// filter, and vector-search configuration, then emits two independent
// descriptors - one lexical, one vector - that carry identical constraints
// so both retrieval paths honor the same filters.
//
// ParseExperience normalizes free-form experience expressions ("3-5",
// "3 to 5", a bare number) into a canonical constraint, degrading to nil
// rather than failing on unparseable input.
package query
