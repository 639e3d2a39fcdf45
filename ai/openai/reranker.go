package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/core"
)

// Reranker implements ai.Reranker using OpenAI-compatible chat APIs.
type Reranker struct {
	chat   *chatClient
	logger *slog.Logger
}

// rerankResponse matches the JSON shape the model is asked to produce.
// Identifiers may come back as numbers or strings.
type rerankResponse struct {
	JobIds []any `json:"job_ids"`
}

// NewReranker creates a new reranker using the provided configuration.
//
// Returns ai.Reranker interface to enforce abstraction.
func NewReranker(config *ai.Config) (ai.Reranker, error) {
	chat, err := newChatClient(config)
	if err != nil {
		return nil, err
	}
	return &Reranker{
		chat:   chat,
		logger: slog.Default().With("component", "openai-reranker"),
	}, nil
}

// RankCandidates asks the model to order the candidate summaries by relevance
// and returns the identifiers it produced, in order. Identifiers that cannot
// be parsed are dropped; reconciling the order against the original candidate
// set is the caller's responsibility.
func (r *Reranker) RankCandidates(ctx context.Context, candidates []ai.CandidateSummary) ([]core.ID, error) {
	if len(candidates) == 0 {
		return []core.ID{}, nil
	}

	payload, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return nil, err
	}

	systemPrompt := fmt.Sprintf(rerankPromptTemplate, rerankResponseSchema)
	userPrompt := "Candidates:\n" + string(payload)

	var resp rerankResponse
	if err := r.chat.generateJSON(ctx, r.logger, systemPrompt, userPrompt, &resp); err != nil {
		return nil, err
	}

	order := make([]core.ID, 0, len(resp.JobIds))
	for _, raw := range resp.JobIds {
		id, ok := parseID(raw)
		if !ok {
			r.logger.Warn("dropping unparseable candidate id from reranker", "value", raw)
			continue
		}
		order = append(order, id)
	}

	r.logger.Debug("reranked candidates", "supplied", len(candidates), "returned", len(order))
	return order, nil
}

// parseID converts a loosely-typed identifier from model JSON into a core.ID.
func parseID(raw any) (core.ID, bool) {
	switch v := raw.(type) {
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return core.ID(n), true
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return 0, false
		}
		return core.ID(v), true
	case json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return core.ID(n), true
	default:
		return 0, false
	}
}
