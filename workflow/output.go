package workflow

import (
	"fmt"

	"github.com/poiesic/jobagent/core"
)

// OutputKind tags which variant of Output is populated.
type OutputKind int

const (
	// OutputQuery is a structured search query produced by a rewrite step.
	OutputQuery OutputKind = iota

	// OutputCandidates is a ranked candidate list produced by a search or
	// rerank step.
	OutputCandidates

	// OutputData is an untyped payload from a tool with no dedicated shape.
	OutputData

	// OutputError records a step failure. Failures are data in the trace,
	// never control flow.
	OutputError
)

func (k OutputKind) String() string {
	switch k {
	case OutputQuery:
		return "query"
	case OutputCandidates:
		return "candidates"
	case OutputData:
		return "data"
	case OutputError:
		return "error"
	default:
		return "unknown"
	}
}

// Output is the recorded result of one step. Exactly the field matching
// Kind is populated.
type Output struct {
	Kind       OutputKind
	Query      *core.SearchQuery
	Candidates []*core.Candidate
	Data       map[string]any
	Err        string
}

// ErrorOutput builds an error-variant output.
func ErrorOutput(format string, args ...any) Output {
	return Output{Kind: OutputError, Err: fmt.Sprintf(format, args...)}
}

// normalizeOutput maps a tool's raw return value onto a tagged output.
// Unrecognized shapes become error outputs naming the tool and the type.
func normalizeOutput(tool string, value any) Output {
	switch v := value.(type) {
	case *core.SearchQuery:
		return Output{Kind: OutputQuery, Query: v}
	case []*core.Candidate:
		return Output{Kind: OutputCandidates, Candidates: v}
	case map[string]any:
		return Output{Kind: OutputData, Data: v}
	case nil:
		return ErrorOutput("tool %s returned no output", tool)
	default:
		return ErrorOutput("tool %s returned unsupported output type %T", tool, value)
	}
}
