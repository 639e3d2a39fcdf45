// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/ingestion"
	"github.com/poiesic/jobagent/storage"
)

// Config holds configuration for a reindexing run.
type Config struct {
	// BatchSize is the number of records to embed in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of records)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// Dimensions is the embedding dimensionality records are conformed to
	Dimensions int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		Dimensions:     ai.DefaultEmbeddingDimensions,
	}
}

// Reindexer re-embeds every indexed job record, typically after switching
// embedding models. Records are re-read from the index, embedded in batches,
// and written back to both stores.
type Reindexer struct {
	jobRepository   storage.JobRepository
	indexRepository storage.IndexRepository
	embedder        ai.Embedder
	config          *Config
	progress        io.Writer
}

// NewReindexer creates a new reindexer.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(
	jobRepository storage.JobRepository,
	indexRepository storage.IndexRepository,
	embedder ai.Embedder,
	config *Config,
	progress io.Writer,
) (*Reindexer, error) {
	if jobRepository == nil {
		return nil, ErrJobRepositoryRequired
	}
	if indexRepository == nil {
		return nil, ErrIndexRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &Reindexer{
		jobRepository:   jobRepository,
		indexRepository: indexRepository,
		embedder:        embedder,
		config:          config,
		progress:        progress,
	}, nil
}

// Run executes the reindexing operation over every indexed record.
// Progress is reported to the configured writer. Unlike ingestion, a batch
// whose embedding fails after retries aborts the run: reindexing exists to
// refresh vectors, so writing zero vectors would defeat it.
func (r *Reindexer) Run(ctx context.Context) error {
	var records []*core.JobRecord
	err := r.indexRepository.ScanJobs(ctx, func(record *core.JobRecord) error {
		records = append(records, record)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan index: %w", err)
	}

	total := len(records)
	if total == 0 {
		fmt.Fprintf(r.progress, "No records found in index (0 records)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d records (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	for start := 0; start < total; start += r.config.BatchSize {
		end := min(start+r.config.BatchSize, total)
		batch := records[start:end]

		if err := r.processBatch(ctx, batch); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}
		tracker.Increment(len(batch))
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Processed %d records in %v (%.1f records/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}

// processBatch embeds one batch with retry and writes both stores.
func (r *Reindexer) processBatch(ctx context.Context, batch []*core.JobRecord) error {
	texts := make([]string, len(batch))
	for i, record := range batch {
		texts[i] = record.IndexText()
	}

	var embeddings [][]float32
	err := ingestion.RetryWithBackoff(ctx, func() error {
		var embedErr error
		embeddings, embedErr = r.embedder.EmbedTexts(ctx, texts)
		if embedErr != nil {
			return embedErr
		}
		if len(embeddings) != len(batch) {
			return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(embeddings))
		}
		return nil
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return err
	}

	for i, record := range batch {
		record.Vector = ai.ConformVector(embeddings[i], r.config.Dimensions)
	}

	if _, err := r.jobRepository.PutJobs(ctx, batch...); err != nil {
		return err
	}
	return r.indexRepository.IndexJobs(ctx, batch...)
}
