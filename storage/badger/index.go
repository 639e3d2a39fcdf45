package badger

import (
	"context"
	"math"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/query"
	"github.com/poiesic/jobagent/storage"
)

// IndexRepository implements storage.IndexRepository for BadgerDB.
// Searches scan the full document set inside a read transaction; the index
// is sized for corpora where an exhaustive scan stays cheap.
type IndexRepository struct {
	backend *Backend
}

var _ storage.IndexRepository = (*IndexRepository)(nil)

// NewIndexRepository creates a new IndexRepository.
func NewIndexRepository(backend *Backend) (storage.IndexRepository, error) {
	return &IndexRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *IndexRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *IndexRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// IndexJobs writes one or more job records into the search index.
func (r *IndexRepository) IndexJobs(ctx context.Context, records ...*core.JobRecord) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record.Id == 0 {
				record.Id = core.IDFromContent(record.JobId)
			}
			key := makeIndexDocKey(record.Id)
			value := storage.MarshalJobRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// RemoveJobs removes documents from the index by ID. Missing documents
// are ignored.
func (r *IndexRepository) RemoveJobs(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			if err := tx.Delete(makeIndexDocKey(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// SearchLexical executes a weighted BM25 query against the indexed text
// fields. Filters narrow the corpus before scoring, so document frequencies
// reflect only the filtered set.
func (r *IndexRepository) SearchLexical(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
	if q == nil {
		return nil, storage.ErrInvalidQuery
	}

	terms := tokenize(q.Text)

	type scoredDoc struct {
		record *core.JobRecord
		score  float64
	}

	var docs []scoredDoc
	stats := make(map[string]*fieldStats, len(q.Fields))
	for _, fw := range q.Fields {
		stats[fw.Field] = newFieldStats()
	}

	err := r.scanDocs(func(record *core.JobRecord) error {
		if !matchesConstraints(record, q.Filters, q.Range) {
			return nil
		}
		for _, fw := range q.Fields {
			stats[fw.Field].addDoc(fieldText(record, fw.Field))
		}
		docs = append(docs, scoredDoc{record: record})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// A pure-filter query (no text clause) matches everything the filters
	// allow, with a neutral score.
	if len(terms) > 0 {
		for i := range docs {
			var score float64
			for _, fw := range q.Fields {
				score += fw.Weight * stats[fw.Field].score(terms, i)
			}
			docs[i].score = score
		}
		docs = slices.DeleteFunc(docs, func(d scoredDoc) bool {
			return d.score == 0
		})
	}

	slices.SortStableFunc(docs, func(a, b scoredDoc) int {
		if a.score > b.score {
			return -1
		}
		if a.score < b.score {
			return 1
		}
		return 0
	})

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}

	hits := make([]*core.Hit, 0, len(docs))
	for _, d := range docs {
		hits = append(hits, &core.Hit{
			Id:     d.record.Id,
			Score:  d.score,
			Source: applyExclude(d.record, q.Exclude),
		})
	}
	return hits, nil
}

// SearchVector executes a cosine-similarity scan against the indexed
// embedding vectors.
func (r *IndexRepository) SearchVector(ctx context.Context, q *query.VectorQuery) ([]*core.Hit, error) {
	if q == nil || len(q.KNN.Vector) == 0 || q.KNN.K <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	var hits []*core.Hit
	err := r.scanDocs(func(record *core.JobRecord) error {
		if len(record.Vector) == 0 {
			return nil
		}
		if !matchesConstraints(record, q.Filters, q.Range) {
			return nil
		}
		sim := cosineSimilarity(q.KNN.Vector, record.Vector)
		hits = append(hits, &core.Hit{
			Id:     record.Id,
			Score:  sim,
			Source: applyExclude(record, q.Exclude),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(hits, func(a, b *core.Hit) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(hits) > q.KNN.K {
		hits = hits[:q.KNN.K]
	}
	return hits, nil
}

// ScanJobs iterates over every indexed document.
func (r *IndexRepository) ScanJobs(ctx context.Context, fn func(record *core.JobRecord) error) error {
	return r.scanDocs(fn)
}

func (r *IndexRepository) scanDocs(fn func(record *core.JobRecord) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(indexDocPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *core.JobRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalJobRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil {
				continue
			}
			if err := fn(record); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// matchesConstraints evaluates equality filters and the range constraint
// against a record. Location matching is case-insensitive. Records with
// unspecified experience never satisfy an experience range.
func matchesConstraints(record *core.JobRecord, filters []query.Filter, rng *query.RangeFilter) bool {
	for _, f := range filters {
		if !strings.EqualFold(fieldText(record, f.Field), f.Value) {
			return false
		}
	}
	if rng != nil && rng.Field == query.FieldExperience {
		exp := core.Experience{Min: rng.Min, Max: rng.Max}
		if !exp.Contains(record.Experience) {
			return false
		}
	}
	return true
}

// fieldText maps a document field name to its text value.
func fieldText(record *core.JobRecord, field string) string {
	switch field {
	case query.FieldTitle:
		return record.Title
	case query.FieldDescription:
		return record.Description
	case query.FieldSkills:
		return record.Skills
	case query.FieldLocation:
		return record.Location
	default:
		return ""
	}
}

// applyExclude returns a copy of the record with excluded fields stripped.
// Only the embedding vector is heavy enough to warrant exclusion.
func applyExclude(record *core.JobRecord, exclude []string) *core.JobRecord {
	if !slices.Contains(exclude, query.FieldEmbedding) {
		return record
	}
	clone := *record
	clone.Vector = nil
	return &clone
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths are compared over the shorter prefix.
func cosineSimilarity(a, b []float32) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
