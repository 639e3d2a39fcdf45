package workflow

import (
	"context"

	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/search"
)

// JobSearchTool runs hybrid retrieval. It prefers a structured query piped
// from a rewrite step; given only text, it searches on the text as keywords.
type JobSearchTool struct {
	searcher *search.Searcher
}

var _ Tool = (*JobSearchTool)(nil)

// NewJobSearchTool creates a job-search tool.
func NewJobSearchTool(searcher *search.Searcher) *JobSearchTool {
	return &JobSearchTool{searcher: searcher}
}

func (t *JobSearchTool) Name() string {
	return ToolJobSearch
}

func (t *JobSearchTool) Run(ctx context.Context, input Input) (any, error) {
	var q *core.SearchQuery
	switch input.Kind {
	case InputQuery:
		q = input.Query
	case InputText:
		q = &core.SearchQuery{Keywords: input.Text}
	default:
		return nil, ErrUnsupportedInput
	}

	candidates, err := t.searcher.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
