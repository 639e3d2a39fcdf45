package search

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/poiesic/jobagent/ai"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/query"
	"github.com/poiesic/jobagent/storage"
)

const (
	// DefaultMaxResults caps how many candidates a search returns.
	DefaultMaxResults = 20

	// candidatePoolSize is the per-index candidate pool for vector search.
	candidatePoolSize = 100
)

// Searcher provides hybrid lexical and vector retrieval over job records.
// Both indexes are queried concurrently and their rankings are combined by
// reciprocal rank fusion, then enriched from the authoritative store.
type Searcher struct {
	jobRepository   storage.JobRepository
	indexRepository storage.IndexRepository
	embedder        ai.Embedder
	maxResults      int
	logger          *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMaxResults overrides the result cap.
// Default is DefaultMaxResults.
func WithMaxResults(n int) Option {
	return func(s *Searcher) error {
		if n > 0 {
			s.maxResults = n
		}
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	jobRepository storage.JobRepository,
	indexRepository storage.IndexRepository,
	provider ai.Provider,
	opts ...Option,
) (*Searcher, error) {
	if jobRepository == nil {
		return nil, ErrJobRepositoryRequired
	}
	if indexRepository == nil {
		return nil, ErrIndexRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		jobRepository:   jobRepository,
		indexRepository: indexRepository,
		embedder:        provider.Embedder(),
		maxResults:      DefaultMaxResults,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search retrieves job candidates matching the structured query.
// Returns up to the configured result cap, ranked by required experience
// ascending with fused relevance breaking ties.
func (s *Searcher) Search(ctx context.Context, q *core.SearchQuery) ([]*core.Candidate, error) {
	return s.SearchWithMonitor(ctx, q, nil)
}

// SearchWithMonitor retrieves job candidates with monitoring.
// The monitor receives callbacks at each stage of the retrieval process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, q *core.SearchQuery, monitor SearchMonitor) ([]*core.Candidate, error) {
	if q == nil {
		return nil, ErrNilQuery
	}
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(q)

	// A query with no signal never touches the indexes or the embedder.
	if q.IsEmpty() {
		empty := []*core.Candidate{}
		monitor.Finish(empty)
		return empty, nil
	}

	builder := query.NewBuilder().
		Filter(query.FieldLocation, q.Location).
		Range(query.FieldExperience, q.Experience).
		Exclude(query.FieldEmbedding).
		Limit(s.maxResults)

	if q.Keywords != "" {
		builder.Text(q.Keywords)

		embedding, err := s.embedder.EmbedText(ctx, q.Keywords)
		if err != nil {
			s.logger.Error("error generating embedding for query", "keywords", q.Keywords, "err", err)
			return nil, err
		}
		builder.KNN(embedding, s.maxResults, candidatePoolSize)
	}

	lexicalQuery := builder.Lexical()
	vectorQuery := builder.Vector()

	// Fan out to both indexes. A failed index degrades to an empty ranking
	// rather than failing the whole search.
	var wg sync.WaitGroup
	var lexicalHits, vectorHits []*core.Hit

	wg.Add(1)
	go func() {
		defer wg.Done()
		hits, err := s.indexRepository.SearchLexical(ctx, lexicalQuery)
		if err != nil {
			s.logger.Warn("lexical search failed, continuing without it", "err", err)
			monitor.IndexDegraded("lexical", err)
			return
		}
		lexicalHits = hits
	}()

	if vectorQuery != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hits, err := s.indexRepository.SearchVector(ctx, vectorQuery)
			if err != nil {
				s.logger.Warn("vector search failed, continuing without it", "err", err)
				monitor.IndexDegraded("vector", err)
				return
			}
			vectorHits = hits
		}()
	}
	wg.Wait()

	monitor.AfterLexicalSearch(hitIDs(lexicalHits))
	monitor.AfterVectorSearch(hitIDs(vectorHits))

	candidates := fuse(lexicalHits, vectorHits)
	monitor.AfterFusion(candidates)

	if len(candidates) == 0 {
		empty := []*core.Candidate{}
		monitor.Finish(empty)
		return empty, nil
	}

	s.enrich(ctx, candidates, monitor)

	// Drop candidates with no detail from either store.
	candidates = slices.DeleteFunc(candidates, func(c *core.Candidate) bool {
		return c.Record == nil
	})

	rankCandidates(candidates)
	if len(candidates) > s.maxResults {
		candidates = candidates[:s.maxResults]
	}

	monitor.Finish(candidates)
	return candidates, nil
}

// enrich replaces index-sourced detail with authoritative records from the
// key-value store via a single batched lookup. A failed lookup degrades to
// whatever detail the indexes returned.
func (s *Searcher) enrich(ctx context.Context, candidates []*core.Candidate, monitor SearchMonitor) {
	ids := make([]core.ID, 0, len(candidates))
	for _, cand := range candidates {
		ids = append(ids, cand.Id)
	}

	records, err := s.jobRepository.GetJobs(ctx, ids...)
	if err != nil {
		s.logger.Warn("job record lookup failed, falling back to index detail", "recordCount", len(ids), "err", err)
		return
	}
	monitor.AfterRecordRetrieval(records)

	byID := make(map[core.ID]*core.JobRecord, len(records))
	for _, record := range records {
		byID[record.Id] = record
	}
	for _, cand := range candidates {
		if record, ok := byID[cand.Id]; ok {
			cand.Record = record
		}
	}
}

// rankCandidates sorts the final list: required experience ascending with
// unspecified experience last, fused score descending within equal
// experience, and fusion order for residual ties.
func rankCandidates(candidates []*core.Candidate) {
	slices.SortStableFunc(candidates, func(a, b *core.Candidate) int {
		ea := sortableExperience(a.Record.Experience)
		eb := sortableExperience(b.Record.Experience)
		if ea != eb {
			if ea < eb {
				return -1
			}
			return 1
		}
		if a.FusedScore != b.FusedScore {
			if a.FusedScore > b.FusedScore {
				return -1
			}
			return 1
		}
		return 0
	})
}

func sortableExperience(years int) int {
	if years == core.ExperienceUnspecified {
		return math.MaxInt
	}
	return years
}

func hitIDs(hits []*core.Hit) []uint64 {
	ids := make([]uint64, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, uint64(hit.Id))
	}
	return ids
}
