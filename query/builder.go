package query

import (
	"slices"

	"github.com/poiesic/jobagent/core"
)

// Default per-field weights for job text search. Title matches outrank skill
// matches, which outrank description matches.
var DefaultTextFields = []FieldWeight{
	{Field: FieldTitle, Weight: 3.0},
	{Field: FieldSkills, Weight: 2.0},
	{Field: FieldDescription, Weight: 1.0},
}

// Well-known job document field names shared by the builder and the indexes.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldSkills      = "skills"
	FieldLocation    = "location"
	FieldExperience  = "experience"
	FieldEmbedding   = "embedding"
)

// FieldWeight is a text-search field with its relative boost.
type FieldWeight struct {
	Field  string
	Weight float64
}

// Filter is an equality constraint on a single field.
type Filter struct {
	Field string
	Value string
}

// RangeFilter is an inclusive numeric range constraint on a single field.
type RangeFilter struct {
	Field string
	Min   int
	Max   int
}

// KNNConfig holds vector-similarity search parameters.
// NumCandidates is the per-shard candidate pool and must be >= K.
type KNNConfig struct {
	Vector        []float32
	K             int
	NumCandidates int
}

// LexicalQuery is a self-contained descriptor for a weighted full-text query.
type LexicalQuery struct {
	Text    string
	Fields  []FieldWeight
	Filters []Filter
	Range   *RangeFilter
	Exclude []string
	Limit   int
}

// VectorQuery is a self-contained descriptor for a nearest-neighbor query.
// It carries the same filter set as the lexical query built alongside it.
type VectorQuery struct {
	KNN     KNNConfig
	Filters []Filter
	Range   *RangeFilter
	Exclude []string
}

// Builder accumulates text terms, filters, and vector-search configuration,
// then emits independent lexical and vector query descriptors sharing the
// same constraints. The builder performs no I/O and is deterministic: the
// same inputs always produce the same descriptors.
type Builder struct {
	text        string
	fields      []FieldWeight
	filters     []Filter
	rangeFilter *RangeFilter
	knn         *KNNConfig
	exclude     []string
	limit       int
}

// NewBuilder creates an empty query builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Text sets the full-text search terms. An empty text omits the text clause
// entirely; filters may stand alone. When no fields are given,
// DefaultTextFields is used.
func (b *Builder) Text(text string, fields ...FieldWeight) *Builder {
	b.text = text
	if len(fields) > 0 {
		b.fields = fields
	} else {
		b.fields = DefaultTextFields
	}
	return b
}

// Filter adds an equality filter. An empty value is a no-op and is never
// encoded as a constraint.
func (b *Builder) Filter(field, value string) *Builder {
	if value == "" {
		return b
	}
	b.filters = append(b.filters, Filter{Field: field, Value: value})
	return b
}

// Range sets the single range filter. A nil constraint is a no-op.
func (b *Builder) Range(field string, exp *core.Experience) *Builder {
	if exp == nil {
		return b
	}
	b.rangeFilter = &RangeFilter{Field: field, Min: exp.Min, Max: exp.Max}
	return b
}

// KNN configures vector-similarity search. The candidate pool is raised to k
// when a smaller value is given.
func (b *Builder) KNN(vector []float32, k, numCandidates int) *Builder {
	if numCandidates < k {
		numCandidates = k
	}
	b.knn = &KNNConfig{Vector: vector, K: k, NumCandidates: numCandidates}
	return b
}

// Exclude suppresses heavy fields from result payloads, e.g. the embedding
// vector.
func (b *Builder) Exclude(fields ...string) *Builder {
	b.exclude = append(b.exclude, fields...)
	return b
}

// Limit caps the number of lexical hits returned.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Lexical emits the lexical-only query descriptor. The descriptor owns copies
// of the accumulated clauses, so later builder mutations do not affect it.
func (b *Builder) Lexical() *LexicalQuery {
	q := &LexicalQuery{
		Filters: slices.Clone(b.filters),
		Exclude: slices.Clone(b.exclude),
		Limit:   b.limit,
	}
	if b.text != "" {
		q.Text = b.text
		q.Fields = slices.Clone(b.fields)
	}
	if b.rangeFilter != nil {
		rf := *b.rangeFilter
		q.Range = &rf
	}
	return q
}

// Vector emits the vector-only query descriptor carrying the same filters as
// the lexical descriptor. Returns nil when no KNN configuration was set.
func (b *Builder) Vector() *VectorQuery {
	if b.knn == nil {
		return nil
	}
	q := &VectorQuery{
		KNN: KNNConfig{
			Vector:        slices.Clone(b.knn.Vector),
			K:             b.knn.K,
			NumCandidates: b.knn.NumCandidates,
		},
		Filters: slices.Clone(b.filters),
		Exclude: slices.Clone(b.exclude),
	}
	if b.rangeFilter != nil {
		rf := *b.rangeFilter
		q.Range = &rf
	}
	return q
}
