package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/storage"
)

// JobRepository implements storage.JobRepository for BadgerDB.
type JobRepository struct {
	backend *Backend
}

var _ storage.JobRepository = (*JobRepository)(nil)

// NewJobRepository creates a new JobRepository.
func NewJobRepository(backend *Backend) (storage.JobRepository, error) {
	return &JobRepository{backend: backend}, nil
}

// Close releases repository resources.
func (r *JobRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *JobRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutJobs stores one or more job records, overwriting any existing record
// with the same ID.
func (r *JobRepository) PutJobs(ctx context.Context, records ...*core.JobRecord) ([]*core.JobRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Serialized timestamps carry microsecond precision; stamp with the
		// same precision so the returned record matches a later read.
		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, record := range records {
			if record.Id == 0 {
				record.Id = core.IDFromContent(record.JobId)
			}

			key := makeJobRecordKey(record.Id)

			// Preserve the original insertion time on overwrite
			old, err := r.readJobRecord(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				record.InsertedAt = old.InsertedAt
			} else if record.InsertedAt.IsZero() {
				record.InsertedAt = now
			} else {
				record.InsertedAt = record.InsertedAt.Truncate(time.Microsecond)
			}
			record.UpdatedAt = now

			value := storage.MarshalJobRecord(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetJob retrieves a single job record by ID.
func (r *JobRepository) GetJob(ctx context.Context, id core.ID) (*core.JobRecord, error) {
	var result *core.JobRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeJobRecordKey(id)
		var err error
		result, err = r.readJobRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetJobs retrieves multiple job records in a single batched read.
// Missing records are omitted from the result.
func (r *JobRepository) GetJobs(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
	var result []*core.JobRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeJobRecordKey(id)
			record, err := r.readJobRecord(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// DeleteJobs removes job records by their IDs.
func (r *JobRepository) DeleteJobs(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeJobRecordKey(id)

			record, err := r.readJobRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountJobs returns the number of stored job records.
func (r *JobRepository) CountJobs(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(jobRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readJobRecord reads and deserializes a job record from the transaction.
// Returns nil (not an error) if the key doesn't exist.
func (r *JobRepository) readJobRecord(tx *badger.Txn, key []byte) (*core.JobRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.JobRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalJobRecord(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
