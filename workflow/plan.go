package workflow

import (
	"strings"

	"github.com/poiesic/jobagent/ai"
)

// Canonical tool names the planner may emit.
const (
	ToolQueryRewrite = "query_rewrite"
	ToolJobSearch    = "job_search"
	ToolRerank       = "rerank"
)

// Step is one planned tool invocation. Input is the planner-provided text
// argument; an empty input means the step's input is resolved from earlier
// step outputs or the original request.
type Step struct {
	Tool  string
	Input string
}

// Plan is an ordered sequence of tool invocations.
type Plan struct {
	Steps []Step
}

// PlanFromToolPlan converts a raw planner response into an executable plan.
// Tool names are trimmed and steps with empty names are dropped; unknown
// tool names survive here and surface as per-step errors at execution time.
func PlanFromToolPlan(tp *ai.ToolPlan) *Plan {
	plan := &Plan{}
	if tp == nil {
		return plan
	}
	for _, step := range tp.Steps {
		tool := strings.TrimSpace(step.Tool)
		if tool == "" {
			continue
		}
		plan.Steps = append(plan.Steps, Step{
			Tool:  tool,
			Input: strings.TrimSpace(step.Input),
		})
	}
	return plan
}
