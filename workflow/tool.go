package workflow

import "context"

// Tool is a single executable workflow capability. Run returns the tool's
// raw result; the executor normalizes it into a tagged output. Returned
// errors are recorded as error outputs and never abort the plan.
type Tool interface {
	Name() string
	Run(ctx context.Context, input Input) (any, error)
}
