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


package mock

import "github.com/poiesic/jobagent/ai"

// MockProvider is a test double for ai.Provider.
// It aggregates mock instances of all four capabilities.
type MockProvider struct {
	embedder *MockEmbedder
	planner  *MockPlanner
	rewriter *MockQueryRewriter
	reranker *MockReranker
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns ai.Provider interface for consistency with production constructors.
// Use the GetMock* accessors to reach concrete types for test assertions.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder: NewMockEmbedder(),
		planner:  NewMockPlanner(),
		rewriter: NewMockQueryRewriter(),
		reranker: NewMockReranker(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(embedder *MockEmbedder, planner *MockPlanner, rewriter *MockQueryRewriter, reranker *MockReranker) ai.Provider {
	return &MockProvider{
		embedder: embedder,
		planner:  planner,
		rewriter: rewriter,
		reranker: reranker,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Planner returns the mock planner.
func (p *MockProvider) Planner() ai.Planner {
	return p.planner
}

// QueryRewriter returns the mock query rewriter.
func (p *MockProvider) QueryRewriter() ai.QueryRewriter {
	return p.rewriter
}

// Reranker returns the mock reranker.
func (p *MockProvider) Reranker() ai.Reranker {
	return p.reranker
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockPlanner returns the underlying mock planner for test assertions.
func (p *MockProvider) GetMockPlanner() *MockPlanner {
	return p.planner
}

// GetMockRewriter returns the underlying mock rewriter for test assertions.
func (p *MockProvider) GetMockRewriter() *MockQueryRewriter {
	return p.rewriter
}

// GetMockReranker returns the underlying mock reranker for test assertions.
func (p *MockProvider) GetMockReranker() *MockReranker {
	return p.reranker
}
