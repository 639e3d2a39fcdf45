package mock

import (
	"context"

	"github.com/poiesic/jobagent/ai"
)

// MockPlanner is a test double for ai.Planner.
// It allows custom behavior injection via function fields.
type MockPlanner struct {
	// PlanWorkflowFunc is called by PlanWorkflow if set.
	// If nil, a fixed rewrite/search/rerank plan is produced.
	PlanWorkflowFunc func(ctx context.Context, text string) (*ai.ToolPlan, error)

	callCount int
}

// NewMockPlanner creates a mock planner with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockPlanner().
func NewMockPlanner() *MockPlanner {
	return &MockPlanner{}
}

// PlanWorkflow produces a tool plan for the request.
// Default behavior: the canonical three-step job search plan with the raw
// request text as every input.
func (m *MockPlanner) PlanWorkflow(ctx context.Context, text string) (*ai.ToolPlan, error) {
	m.callCount++

	if m.PlanWorkflowFunc != nil {
		return m.PlanWorkflowFunc(ctx, text)
	}

	return &ai.ToolPlan{
		Steps: []ai.PlanStep{
			{Tool: "query_rewrite", Input: text},
			{Tool: "job_search", Input: text},
			{Tool: "rerank", Input: text},
		},
	}, nil
}

// CallCount returns the number of times PlanWorkflow was called.
func (m *MockPlanner) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockPlanner) Reset() {
	m.callCount = 0
	m.PlanWorkflowFunc = nil
}
