package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/storage"
)

func TestJobRecordBasics(t *testing.T) {
	jobRepo, indexRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() {
		indexRepo.Close()
		jobRepo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	record := &core.JobRecord{
		JobId:      "job-1001",
		Title:      "Backend Engineer",
		Location:   "Pune",
		Skills:     "go postgres kubernetes",
		Experience: 4,
	}

	stored, err := jobRepo.PutJobs(ctx, record)
	if err != nil {
		t.Fatalf("Failed to put job record: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(stored))
	}
	if stored[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if stored[0].Id != core.IDFromContent("job-1001") {
		t.Fatal("Expected content-derived ID")
	}
	if stored[0].InsertedAt.IsZero() || stored[0].UpdatedAt.IsZero() {
		t.Fatal("Expected timestamps to be set")
	}

	retrieved, err := jobRepo.GetJob(ctx, stored[0].Id)
	if err != nil {
		t.Fatalf("Failed to get job record: %v", err)
	}
	if retrieved.Title != "Backend Engineer" {
		t.Fatalf("Expected 'Backend Engineer', got '%s'", retrieved.Title)
	}
}

func TestJobRecordOverwritePreservesInsertedAt(t *testing.T) {
	jobRepo, indexRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { indexRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	first := &core.JobRecord{JobId: "job-1", Title: "Engineer"}
	stored, err := jobRepo.PutJobs(ctx, first)
	if err != nil {
		t.Fatalf("Failed to put job record: %v", err)
	}
	insertedAt := stored[0].InsertedAt

	second := &core.JobRecord{JobId: "job-1", Title: "Senior Engineer"}
	stored, err = jobRepo.PutJobs(ctx, second)
	if err != nil {
		t.Fatalf("Failed to overwrite job record: %v", err)
	}
	if !stored[0].InsertedAt.Equal(insertedAt) {
		t.Fatal("Expected InsertedAt to be preserved on overwrite")
	}

	retrieved, err := jobRepo.GetJob(ctx, stored[0].Id)
	if err != nil {
		t.Fatalf("Failed to get job record: %v", err)
	}
	if retrieved.Title != "Senior Engineer" {
		t.Fatalf("Expected overwritten title, got '%s'", retrieved.Title)
	}
}

func TestJobRecordTimestampsSurviveRoundTrip(t *testing.T) {
	jobRepo, indexRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { indexRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	stored, err := jobRepo.PutJobs(ctx, &core.JobRecord{JobId: "job-1", Title: "Engineer"})
	if err != nil {
		t.Fatalf("Failed to put job record: %v", err)
	}

	retrieved, err := jobRepo.GetJob(ctx, stored[0].Id)
	if err != nil {
		t.Fatalf("Failed to get job record: %v", err)
	}
	if !stored[0].InsertedAt.Equal(retrieved.InsertedAt) {
		t.Fatalf("InsertedAt mismatch: put returned %v, read returned %v",
			stored[0].InsertedAt, retrieved.InsertedAt)
	}
	if !stored[0].UpdatedAt.Equal(retrieved.UpdatedAt) {
		t.Fatalf("UpdatedAt mismatch: put returned %v, read returned %v",
			stored[0].UpdatedAt, retrieved.UpdatedAt)
	}
}

func TestGetJobsOmitsMissing(t *testing.T) {
	jobRepo, indexRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { indexRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	records := []*core.JobRecord{
		{JobId: "job-1", Title: "Engineer"},
		{JobId: "job-2", Title: "Analyst"},
	}
	stored, err := jobRepo.PutJobs(ctx, records...)
	if err != nil {
		t.Fatalf("Failed to put job records: %v", err)
	}

	missing := core.IDFromContent("job-never-stored")
	got, err := jobRepo.GetJobs(ctx, stored[0].Id, missing, stored[1].Id)
	if err != nil {
		t.Fatalf("Failed to get job records: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
}

func TestJobRecordNotFound(t *testing.T) {
	jobRepo, indexRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { indexRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	_, err = jobRepo.GetJob(ctx, core.ID(12345))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	err = jobRepo.DeleteJobs(ctx, core.ID(12345))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on delete, got %v", err)
	}
}

func TestCountJobs(t *testing.T) {
	jobRepo, indexRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { indexRepo.Close(); jobRepo.Close(); backend.Close() }()

	ctx := context.Background()

	count, err := jobRepo.CountJobs(ctx)
	if err != nil {
		t.Fatalf("Failed to count jobs: %v", err)
	}
	if count != 0 {
		t.Fatalf("Expected 0 jobs, got %d", count)
	}

	_, err = jobRepo.PutJobs(ctx,
		&core.JobRecord{JobId: "job-1", Title: "Engineer"},
		&core.JobRecord{JobId: "job-2", Title: "Analyst"},
		&core.JobRecord{JobId: "job-3", Title: "Designer"},
	)
	if err != nil {
		t.Fatalf("Failed to put job records: %v", err)
	}

	count, err = jobRepo.CountJobs(ctx)
	if err != nil {
		t.Fatalf("Failed to count jobs: %v", err)
	}
	if count != 3 {
		t.Fatalf("Expected 3 jobs, got %d", count)
	}
}
