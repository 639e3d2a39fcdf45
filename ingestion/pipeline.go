package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/storage"
)

const (
	// embedRetryAttempts is how many times an embedding batch is retried
	// before falling back to zero vectors.
	embedRetryAttempts = 5

	// embedRetryBaseDelay is the initial backoff between embedding retries.
	embedRetryBaseDelay = 200 * time.Millisecond

	// embedBatchSize caps how many records are embedded per worker task.
	embedBatchSize = 32
)

// Pipeline orchestrates ingestion of job records: validation, writing the
// authoritative store, embedding, and indexing. Embedding and indexing run
// asynchronously on a worker pool; a record that exhausts its embedding
// retries is indexed with a zero vector so it stays lexically searchable.
// Zero-vector fallback exists only here, never in the retrieval path.
type Pipeline struct {
	jobRepository   storage.JobRepository
	indexRepository storage.IndexRepository
	embedder        ai.Embedder
	dimensions      int
	retryAttempts   int
	retryBaseDelay  time.Duration
	pool            *ants.Pool
	pending         sync.WaitGroup
	logger          *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithEmbedRetry overrides the embedding retry policy.
// Defaults are embedRetryAttempts attempts starting at embedRetryBaseDelay.
func WithEmbedRetry(attempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if attempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.retryAttempts = attempts
		p.retryBaseDelay = baseDelay
		return nil
	}
}

// WithDimensions sets the embedding dimensionality records are conformed to.
// Default is ai.DefaultEmbeddingDimensions.
func WithDimensions(dims int) Option {
	return func(p *Pipeline) error {
		if dims > 0 {
			p.dimensions = dims
		}
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	jobRepository storage.JobRepository,
	indexRepository storage.IndexRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if jobRepository == nil {
		return nil, ErrJobRepositoryRequired
	}
	if indexRepository == nil {
		return nil, ErrIndexRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		jobRepository:   jobRepository,
		indexRepository: indexRepository,
		embedder:        provider.Embedder(),
		dimensions:      ai.DefaultEmbeddingDimensions,
		retryAttempts:   embedRetryAttempts,
		retryBaseDelay:  embedRetryBaseDelay,
		pool:            pool,
		logger:          slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest validates and stores job records, then submits them for embedding
// and indexing on the worker pool. Invalid records are logged and skipped.
// Returns the number of records accepted. Errors during async processing
// are logged but do not fail the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, records ...*core.JobRecord) (int, error) {
	accepted := make([]*core.JobRecord, 0, len(records))
	for _, record := range records {
		if err := core.ValidateJobRecord(record); err != nil {
			p.logger.Warn("skipping invalid job record", "jobId", record.JobId, "err", err)
			continue
		}
		if record.Id == 0 {
			record.Id = core.IDFromContent(record.JobId)
		}
		accepted = append(accepted, record)
	}
	if len(accepted) == 0 {
		return 0, nil
	}

	stored, err := p.jobRepository.PutJobs(ctx, accepted...)
	if err != nil {
		return 0, err
	}

	for start := 0; start < len(stored); start += embedBatchSize {
		end := min(start+embedBatchSize, len(stored))
		batch := stored[start:end]

		p.pending.Add(1)
		submitErr := p.pool.Submit(func() {
			defer p.pending.Done()
			if err := p.embedAndIndex(context.Background(), batch); err != nil {
				p.logger.Error("error embedding job records", "records", len(batch), "err", err)
			}
		})
		if submitErr != nil {
			p.pending.Done()
			return len(stored), submitErr
		}
	}

	return len(stored), nil
}

// Wait blocks until all submitted embedding work has finished.
func (p *Pipeline) Wait() {
	p.pending.Wait()
}

// Release releases the worker pool after draining pending work.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	p.pending.Wait()
	if p.pool != nil {
		p.pool.Release()
	}
}

// embedAndIndex generates embeddings for a batch with retry, attaches them
// to the records, and writes both stores. Exhausted retries degrade to zero
// vectors rather than dropping the batch.
func (p *Pipeline) embedAndIndex(ctx context.Context, records []*core.JobRecord) error {
	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.IndexText()
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		embeddings, embedErr = p.embedder.EmbedTexts(ctx, texts)
		if embedErr != nil {
			return embedErr
		}
		if len(embeddings) != len(records) {
			return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(records), len(embeddings))
		}
		return nil
	}, p.retryAttempts, p.retryBaseDelay)
	if err != nil {
		p.logger.Warn("embedding failed after retries, indexing with zero vectors", "records", len(records), "err", err)
		embeddings = make([][]float32, len(records))
		for i := range embeddings {
			embeddings[i] = ai.ZeroVector(p.dimensions)
		}
	}

	for i, record := range records {
		record.Vector = ai.ConformVector(embeddings[i], p.dimensions)
	}

	if _, err := p.jobRepository.PutJobs(ctx, records...); err != nil {
		return err
	}
	return p.indexRepository.IndexJobs(ctx, records...)
}
