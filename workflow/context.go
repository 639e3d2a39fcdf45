package workflow

// StepState tracks a step's progress through its lifecycle. Every step,
// successful or not, terminates in StateRecorded; failures are visible as
// error outputs, not as a distinct state.
type StepState int

const (
	StatePending StepState = iota
	StateResolvingInput
	StateExecuting
	StateRecorded
)

func (s StepState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateResolvingInput:
		return "resolving_input"
	case StateExecuting:
		return "executing"
	case StateRecorded:
		return "recorded"
	default:
		return "unknown"
	}
}

// StepResult is the recorded outcome of one executed step.
type StepResult struct {
	Tool   string
	State  StepState
	Input  Input
	Output Output
}

// Failed reports whether the step recorded an error output.
func (r *StepResult) Failed() bool {
	return r.Output.Kind == OutputError
}

// pipeRule declares that a tool's input is extracted from an earlier tool's
// output. The extract function returns false when the source output cannot
// supply the input (wrong variant or failed step).
type pipeRule struct {
	source  string
	extract func(out Output) (Input, bool)
}

// pipeRules wires step outputs to later step inputs: a search step consumes
// the rewritten query, a rerank step consumes the search candidates.
var pipeRules = map[string]pipeRule{
	ToolJobSearch: {
		source: ToolQueryRewrite,
		extract: func(out Output) (Input, bool) {
			if out.Kind != OutputQuery || out.Query == nil {
				return Input{}, false
			}
			return QueryInput(out.Query), true
		},
	},
	ToolRerank: {
		source: ToolJobSearch,
		extract: func(out Output) (Input, bool) {
			if out.Kind != OutputCandidates {
				return Input{}, false
			}
			return CandidatesInput(out.Candidates), true
		},
	},
}

// executionContext accumulates step results during a run and answers
// lookups against the most recent output of each tool.
type executionContext struct {
	results []*StepResult
	byTool  map[string]*StepResult
}

func newExecutionContext() *executionContext {
	return &executionContext{byTool: make(map[string]*StepResult)}
}

func (c *executionContext) record(result *StepResult) {
	c.results = append(c.results, result)
	c.byTool[result.Tool] = result
}

// lastOutput returns the most recent recorded output for a tool.
func (c *executionContext) lastOutput(tool string) (Output, bool) {
	result, ok := c.byTool[tool]
	if !ok {
		return Output{}, false
	}
	return result.Output, true
}

// resolveInput determines a step's input: piped output from its declared
// source tool when available, otherwise the planner-provided text, otherwise
// the original request text.
func (c *executionContext) resolveInput(step Step, requestText string) Input {
	if rule, ok := pipeRules[step.Tool]; ok {
		if out, found := c.lastOutput(rule.source); found {
			if input, ok := rule.extract(out); ok {
				return input
			}
		}
	}
	if step.Input != "" {
		return TextInput(step.Input)
	}
	return TextInput(requestText)
}
