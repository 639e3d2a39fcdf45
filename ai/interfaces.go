package ai

import (
	"context"

	"github.com/poiesic/jobagent/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector is conformed to the configured dimensionality.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Planner converts a free-text request into an ordered tool plan.
// The plan is an opaque reasoning product and must be validated before
// execution; implementations must be thread-safe for concurrent use.
type Planner interface {
	// PlanWorkflow produces the raw tool plan for a request.
	// An empty Steps sequence is a valid "no applicable tool" outcome.
	PlanWorkflow(ctx context.Context, text string) (*ToolPlan, error)
}

// QueryRewriter turns a free-text job query into a structured descriptor.
// Its textual reasoning is opaque; only the declared output shape matters.
// Implementations must be thread-safe for concurrent use.
type QueryRewriter interface {
	// Rewrite extracts keywords, location, and experience from the text.
	// Fields absent from the text are left empty, never invented.
	Rewrite(ctx context.Context, text string) (*RewrittenQuery, error)
}

// Reranker orders job candidates by relevance to the implied user intent.
// Implementations must be thread-safe for concurrent use.
type Reranker interface {
	// RankCandidates returns candidate identifiers in relevance order.
	// The returned order may omit or invent identifiers; callers reconcile
	// it against the original candidate set.
	RankCandidates(ctx context.Context, candidates []CandidateSummary) ([]core.ID, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages the embedding and reasoning
// capabilities, ensuring they share configuration and resources.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Planner returns the workflow planning service.
	Planner() Planner

	// QueryRewriter returns the query rewriting service.
	QueryRewriter() QueryRewriter

	// Reranker returns the candidate reranking service.
	Reranker() Reranker

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
