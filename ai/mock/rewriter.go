package mock

import (
	"context"
	"strings"

	"github.com/poiesic/jobagent/ai"
)

// MockQueryRewriter is a test double for ai.QueryRewriter.
// It allows custom behavior injection via function fields.
type MockQueryRewriter struct {
	// RewriteFunc is called by Rewrite if set.
	// If nil, the whole text becomes the keywords.
	RewriteFunc func(ctx context.Context, text string) (*ai.RewrittenQuery, error)

	callCount int
}

// NewMockQueryRewriter creates a mock rewriter with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockRewriter().
func NewMockQueryRewriter() *MockQueryRewriter {
	return &MockQueryRewriter{}
}

// Rewrite produces a structured query from free text.
// Default behavior: the trimmed text becomes the keywords, with no location
// and no experience.
func (m *MockQueryRewriter) Rewrite(ctx context.Context, text string) (*ai.RewrittenQuery, error) {
	m.callCount++

	if m.RewriteFunc != nil {
		return m.RewriteFunc(ctx, text)
	}

	return &ai.RewrittenQuery{Keywords: strings.TrimSpace(text)}, nil
}

// CallCount returns the number of times Rewrite was called.
func (m *MockQueryRewriter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockQueryRewriter) Reset() {
	m.callCount = 0
	m.RewriteFunc = nil
}
