package workflow

import (
	"context"
	"log/slog"

	"github.com/poiesic/jobagent/core"
)

// Executor runs plans sequentially, piping step outputs into later step
// inputs. Execution never returns an error: every failure is recorded as an
// error output on its step, and the full trace always comes back.
type Executor struct {
	tools  map[string]Tool
	logger *slog.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorLogger sets a custom logger.
// Default is slog.Default().
func WithExecutorLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExecutor creates an executor over the given tools.
func NewExecutor(tools []Tool, opts ...ExecutorOption) *Executor {
	e := &Executor{
		tools:  make(map[string]Tool, len(tools)),
		logger: slog.Default().With("component", "workflow"),
	}
	for _, tool := range tools {
		e.tools[tool.Name()] = tool
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Trace is the complete record of one plan execution.
type Trace struct {
	RequestText string
	Steps       []*StepResult
}

// FinalCandidates returns the candidate list from the last step that
// produced one, preferring later steps so a rerank supersedes the search
// it reordered. Returns false when no step produced candidates.
func (t *Trace) FinalCandidates() ([]*core.Candidate, bool) {
	for i := len(t.Steps) - 1; i >= 0; i-- {
		if t.Steps[i].Output.Kind == OutputCandidates {
			return t.Steps[i].Output.Candidates, true
		}
	}
	return nil, false
}

// Execute runs every step of the plan in order. An empty plan yields an
// empty trace.
func (e *Executor) Execute(ctx context.Context, plan *Plan, requestText string) *Trace {
	trace := &Trace{RequestText: requestText}
	if plan == nil {
		return trace
	}

	execCtx := newExecutionContext()
	for _, step := range plan.Steps {
		result := e.runStep(ctx, execCtx, step, requestText)
		execCtx.record(result)
		trace.Steps = append(trace.Steps, result)

		if result.Output.Kind == OutputError {
			e.logger.Warn("workflow step failed", "tool", step.Tool, "err", result.Output.Err)
		} else {
			e.logger.Debug("workflow step completed", "tool", step.Tool, "output", result.Output.Kind.String())
		}
	}
	return trace
}

// runStep resolves the step's input, runs the tool, and normalizes the
// result. Panics inside a tool are contained and recorded as error outputs.
// Whatever happens, the step ends in StateRecorded.
func (e *Executor) runStep(ctx context.Context, execCtx *executionContext, step Step, requestText string) (result *StepResult) {
	result = &StepResult{Tool: step.Tool, State: StatePending}

	defer func() {
		if r := recover(); r != nil {
			result.Output = ErrorOutput("tool %s panicked: %v", step.Tool, r)
		}
		result.State = StateRecorded
	}()

	tool, ok := e.tools[step.Tool]
	if !ok {
		result.Output = ErrorOutput("unknown tool: %s", step.Tool)
		return result
	}

	result.State = StateResolvingInput
	result.Input = execCtx.resolveInput(step, requestText)

	result.State = StateExecuting
	value, err := tool.Run(ctx, result.Input)
	if err != nil {
		result.Output = ErrorOutput("tool %s failed: %v", step.Tool, err)
		return result
	}

	result.Output = normalizeOutput(step.Tool, value)
	return result
}
