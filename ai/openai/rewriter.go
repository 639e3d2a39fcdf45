package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/jobagent/ai"
)

// QueryRewriter implements ai.QueryRewriter using OpenAI-compatible chat APIs.
type QueryRewriter struct {
	chat   *chatClient
	logger *slog.Logger
}

// rewriteResponse matches the JSON shape the model is asked to produce.
// Experience is loose on purpose: absent, number, or textual range.
type rewriteResponse struct {
	Keywords   string `json:"keywords"`
	Location   string `json:"location"`
	Experience any    `json:"experience"`
}

// NewQueryRewriter creates a new query rewriter using the provided configuration.
//
// Returns ai.QueryRewriter interface to enforce abstraction.
func NewQueryRewriter(config *ai.Config) (ai.QueryRewriter, error) {
	chat, err := newChatClient(config)
	if err != nil {
		return nil, err
	}
	return &QueryRewriter{
		chat:   chat,
		logger: slog.Default().With("component", "openai-rewriter"),
	}, nil
}

// Rewrite extracts a structured search query from free text.
// Fields are sanitized before they are handed to any caller: keywords and
// location are trimmed, and a location the model invented as "null" or
// "none" is treated as absent.
func (r *QueryRewriter) Rewrite(ctx context.Context, text string) (*ai.RewrittenQuery, error) {
	systemPrompt := fmt.Sprintf(rewritePromptTemplate, rewriteResponseSchema)

	var resp rewriteResponse
	if err := r.chat.generateJSON(ctx, r.logger, systemPrompt, text, &resp); err != nil {
		return nil, err
	}

	rewritten := &ai.RewrittenQuery{
		Keywords:   strings.TrimSpace(resp.Keywords),
		Location:   sanitizeLocation(resp.Location),
		Experience: resp.Experience,
	}

	r.logger.Debug("rewrote query",
		"keywords", rewritten.Keywords,
		"location", rewritten.Location)
	return rewritten, nil
}

// sanitizeLocation drops placeholder values small models emit for an absent
// location.
func sanitizeLocation(location string) string {
	location = strings.TrimSpace(location)
	switch strings.ToLower(location) {
	case "null", "none", "n/a", "unknown":
		return ""
	}
	return location
}
