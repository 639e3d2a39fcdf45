package mock

import (
	"context"

	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/core"
)

// MockReranker is a test double for ai.Reranker.
// It allows custom behavior injection via function fields.
type MockReranker struct {
	// RankCandidatesFunc is called by RankCandidates if set.
	// If nil, the supplied order is returned unchanged.
	RankCandidatesFunc func(ctx context.Context, candidates []ai.CandidateSummary) ([]core.ID, error)

	callCount int
}

// NewMockReranker creates a mock reranker with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockReranker().
func NewMockReranker() *MockReranker {
	return &MockReranker{}
}

// RankCandidates returns candidate identifiers in relevance order.
// Default behavior: identity ordering.
func (m *MockReranker) RankCandidates(ctx context.Context, candidates []ai.CandidateSummary) ([]core.ID, error) {
	m.callCount++

	if m.RankCandidatesFunc != nil {
		return m.RankCandidatesFunc(ctx, candidates)
	}

	order := make([]core.ID, len(candidates))
	for i, c := range candidates {
		order[i] = c.Id
	}
	return order, nil
}

// CallCount returns the number of times RankCandidates was called.
func (m *MockReranker) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockReranker) Reset() {
	m.callCount = 0
	m.RankCandidatesFunc = nil
}
