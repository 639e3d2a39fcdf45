package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is derived from the external job identifier using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ExperienceUnspecified marks a job record whose years-of-experience is unknown.
// Records with unspecified experience sort after all records with a known value.
const ExperienceUnspecified = -1

// JobRecord is the authoritative job posting record.
// The key-value store holds the canonical copy; the index holds its own copy
// alongside the embedding vector.
type JobRecord struct {
	Id          ID
	JobId       string // External identifier from the source system
	Title       string
	Description string
	Location    string
	Skills      string
	Experience  int       // Years of experience, ExperienceUnspecified if unknown
	Vector      []float32 // Embedding vector (populated by the ingestion pipeline)
	InsertedAt  time.Time
	UpdatedAt   time.Time
}

// IndexText returns the text a job record is embedded from.
func (r *JobRecord) IndexText() string {
	return r.Title + " " + r.Description + " " + r.Skills + " " + r.Location
}

// Experience is a canonical experience constraint produced by parsing
// free-form experience expressions.
// Exact is true when the source expression was a single number (Min == Max).
type Experience struct {
	Min   int
	Max   int
	Exact bool
}

// Contains reports whether the given years value satisfies the constraint.
// Unspecified experience never satisfies a constraint.
func (e *Experience) Contains(years int) bool {
	if years == ExperienceUnspecified {
		return false
	}
	return years >= e.Min && years <= e.Max
}

// SearchQuery is a structured search descriptor.
// It is produced by query rewriting and consumed by the query builder.
type SearchQuery struct {
	Keywords   string
	Location   string
	Experience *Experience // nil means no experience constraint
}

// IsEmpty reports whether the query carries no signal at all.
// Empty queries short-circuit retrieval without touching the indexes.
func (q *SearchQuery) IsEmpty() bool {
	return q.Keywords == "" && q.Location == "" && q.Experience == nil
}

// Hit is a single ordered result from one index query.
// Source is the index's own stored copy of the record, used as a fallback
// when the key-value store cannot supply the authoritative record.
type Hit struct {
	Id     ID
	Score  float64
	Source *JobRecord
}

// Candidate is a job candidate produced by hybrid retrieval.
// FusedScore is the reciprocal rank fusion score across both indexes.
// LexicalScore and VectorScore hold the raw per-source contributions and are
// informational only; ranking never sorts on them directly.
type Candidate struct {
	Id           ID
	FusedScore   float64
	LexicalScore float64
	VectorScore  float64
	Record       *JobRecord
}
