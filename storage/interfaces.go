package storage

import (
	"context"

	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/query"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// JobRepository is the authoritative store for full job records.
// It is keyed by record ID and holds the complete document, including
// fields the search index never sees.
type JobRepository interface {
	Repository
	// PutJobs stores one or more job records, overwriting any existing
	// record with the same ID. Sets InsertedAt on first write and
	// UpdatedAt on every write.
	PutJobs(ctx context.Context, records ...*core.JobRecord) ([]*core.JobRecord, error)

	// GetJob retrieves a single job record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetJob(ctx context.Context, id core.ID) (*core.JobRecord, error)

	// GetJobs retrieves multiple job records in a single batched read.
	// Returns only the records that exist (no error for missing records).
	GetJobs(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error)

	// DeleteJobs removes job records by their IDs.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteJobs(ctx context.Context, ids ...core.ID) error

	// CountJobs returns the number of stored job records.
	CountJobs(ctx context.Context) (int, error)
}

// IndexRepository is the search-side store. Documents written here carry
// the searchable text fields plus the embedding vector, and are queried
// through the lexical and vector descriptors built by the query package.
type IndexRepository interface {
	Repository
	// IndexJobs writes one or more job records into the search index,
	// overwriting any existing document with the same ID.
	IndexJobs(ctx context.Context, records ...*core.JobRecord) error

	// RemoveJobs removes documents from the index by ID.
	// Missing documents are ignored.
	RemoveJobs(ctx context.Context, ids ...core.ID) error

	// SearchLexical executes a keyword query against the indexed text
	// fields. Results are ordered by relevance score descending, up to
	// the descriptor's limit.
	SearchLexical(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error)

	// SearchVector executes a nearest-neighbour query against the
	// indexed embedding vectors. Results are ordered by similarity
	// descending, up to the descriptor's K.
	SearchVector(ctx context.Context, q *query.VectorQuery) ([]*core.Hit, error)

	// ScanJobs iterates over every indexed document, invoking fn for
	// each. Iteration stops when fn returns an error.
	ScanJobs(ctx context.Context, fn func(record *core.JobRecord) error) error
}
