package workflow

import (
	"context"

	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/query"
)

// RewriteTool structures a free-form request into a search query using the
// query-rewrite model, normalizing whatever experience expression the model
// returns into a canonical range.
type RewriteTool struct {
	rewriter ai.QueryRewriter
}

var _ Tool = (*RewriteTool)(nil)

// NewRewriteTool creates a query-rewrite tool.
func NewRewriteTool(rewriter ai.QueryRewriter) *RewriteTool {
	return &RewriteTool{rewriter: rewriter}
}

func (t *RewriteTool) Name() string {
	return ToolQueryRewrite
}

func (t *RewriteTool) Run(ctx context.Context, input Input) (any, error) {
	if input.Kind != InputText || input.Text == "" {
		return nil, ErrTextInputRequired
	}

	rewritten, err := t.rewriter.Rewrite(ctx, input.Text)
	if err != nil {
		return nil, err
	}

	return &core.SearchQuery{
		Keywords:   rewritten.Keywords,
		Location:   rewritten.Location,
		Experience: query.ParseExperience(rewritten.Experience),
	}, nil
}
