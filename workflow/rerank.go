package workflow

import (
	"context"

	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/search"
)

// RerankTool reorders retrieved candidates using the reranking model. The
// model only proposes an ordering; the merge keeps the full candidate union,
// so candidates the model forgets or invents can never be lost or added.
type RerankTool struct {
	reranker ai.Reranker
}

var _ Tool = (*RerankTool)(nil)

// NewRerankTool creates a rerank tool.
func NewRerankTool(reranker ai.Reranker) *RerankTool {
	return &RerankTool{reranker: reranker}
}

func (t *RerankTool) Name() string {
	return ToolRerank
}

func (t *RerankTool) Run(ctx context.Context, input Input) (any, error) {
	if input.Kind != InputCandidates {
		return nil, ErrCandidatesInputRequired
	}
	if len(input.Candidates) == 0 {
		return []*core.Candidate{}, nil
	}

	summaries := make([]ai.CandidateSummary, 0, len(input.Candidates))
	for _, cand := range input.Candidates {
		summaries = append(summaries, ai.SummarizeCandidate(cand))
	}

	ids, err := t.reranker.RankCandidates(ctx, summaries)
	if err != nil {
		return nil, err
	}

	return search.MergeOrder(input.Candidates, ids), nil
}
