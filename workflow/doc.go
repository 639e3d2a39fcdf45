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


// Package workflow executes planned tool sequences over the retrieval stack.
//
// A plan is an ordered list of tool invocations produced by the planning
// model. The executor runs steps sequentially with typed piping between
// them: a job_search step consumes the query produced by query_rewrite, and
// a rerank step consumes the candidates produced by job_search. Steps whose
// piped input is unavailable fall back to the planner-provided text, then
// to the original request.
//
// Failures are data: an unknown tool, a tool error, or a tool panic is
// recorded as an error output on its step and execution moves on. The
// caller always receives the full trace and decides what to surface.
package workflow
