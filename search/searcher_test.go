package search

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/jobagent/ai/mock"
	"github.com/poiesic/jobagent/core"
	"github.com/poiesic/jobagent/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJobRepository is a function-field stub for storage.JobRepository.
type fakeJobRepository struct {
	GetJobsFunc  func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error)
	GetJobsCalls int
}

func (f *fakeJobRepository) PutJobs(ctx context.Context, records ...*core.JobRecord) ([]*core.JobRecord, error) {
	return records, nil
}

func (f *fakeJobRepository) GetJob(ctx context.Context, id core.ID) (*core.JobRecord, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJobRepository) GetJobs(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
	f.GetJobsCalls++
	if f.GetJobsFunc != nil {
		return f.GetJobsFunc(ctx, ids...)
	}
	return nil, nil
}

func (f *fakeJobRepository) DeleteJobs(ctx context.Context, ids ...core.ID) error { return nil }
func (f *fakeJobRepository) CountJobs(ctx context.Context) (int, error)           { return 0, nil }
func (f *fakeJobRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
func (f *fakeJobRepository) Close() error { return nil }

// fakeIndexRepository is a function-field stub for storage.IndexRepository.
type fakeIndexRepository struct {
	LexicalFunc  func(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error)
	VectorFunc   func(ctx context.Context, q *query.VectorQuery) ([]*core.Hit, error)
	LexicalCalls int
	VectorCalls  int
}

func (f *fakeIndexRepository) IndexJobs(ctx context.Context, records ...*core.JobRecord) error {
	return nil
}
func (f *fakeIndexRepository) RemoveJobs(ctx context.Context, ids ...core.ID) error { return nil }

func (f *fakeIndexRepository) SearchLexical(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
	f.LexicalCalls++
	if f.LexicalFunc != nil {
		return f.LexicalFunc(ctx, q)
	}
	return nil, nil
}

func (f *fakeIndexRepository) SearchVector(ctx context.Context, q *query.VectorQuery) ([]*core.Hit, error) {
	f.VectorCalls++
	if f.VectorFunc != nil {
		return f.VectorFunc(ctx, q)
	}
	return nil, nil
}

func (f *fakeIndexRepository) ScanJobs(ctx context.Context, fn func(record *core.JobRecord) error) error {
	return nil
}
func (f *fakeIndexRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
func (f *fakeIndexRepository) Close() error { return nil }

func record(jobID string, experience int) *core.JobRecord {
	return &core.JobRecord{
		Id:         core.IDFromContent(jobID),
		JobId:      jobID,
		Title:      "Job " + jobID,
		Experience: experience,
	}
}

func TestNewSearcher(t *testing.T) {
	jobs := &fakeJobRepository{}
	index := &fakeIndexRepository{}
	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(jobs, index, provider)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil job repository", func(t *testing.T) {
		_, err := NewSearcher(nil, index, provider)
		assert.Equal(t, ErrJobRepositoryRequired, err)
	})

	t.Run("nil index repository", func(t *testing.T) {
		_, err := NewSearcher(jobs, nil, provider)
		assert.Equal(t, ErrIndexRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewSearcher(jobs, index, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	jobs := &fakeJobRepository{}
	index := &fakeIndexRepository{}
	embedder := mock.NewMockEmbedder()
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockPlanner(), mock.NewMockQueryRewriter(), mock.NewMockReranker())

	searcher, err := NewSearcher(jobs, index, provider)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchQuery{})
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.Equal(t, 0, embedder.CallCount())
	assert.Equal(t, 0, index.LexicalCalls)
	assert.Equal(t, 0, index.VectorCalls)
	assert.Equal(t, 0, jobs.GetJobsCalls)
}

func TestSearchNilQuery(t *testing.T) {
	searcher, err := NewSearcher(&fakeJobRepository{}, &fakeIndexRepository{}, mock.NewMockProvider())
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), nil)
	assert.Equal(t, ErrNilQuery, err)
}

func TestSearchFusesBothIndexes(t *testing.T) {
	recA := record("job-a", 3)
	recB := record("job-b", 3)
	recC := record("job-c", 3)

	index := &fakeIndexRepository{
		LexicalFunc: func(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
			return []*core.Hit{
				{Id: recA.Id, Score: 9.1, Source: recA},
				{Id: recB.Id, Score: 4.2, Source: recB},
			}, nil
		},
		VectorFunc: func(ctx context.Context, q *query.VectorQuery) ([]*core.Hit, error) {
			return []*core.Hit{
				{Id: recC.Id, Score: 0.95, Source: recC},
				{Id: recA.Id, Score: 0.90, Source: recA},
			}, nil
		},
	}
	jobs := &fakeJobRepository{
		GetJobsFunc: func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
			return []*core.JobRecord{recA, recB, recC}, nil
		},
	}

	searcher, err := NewSearcher(jobs, index, mock.NewMockProvider())
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchQuery{Keywords: "golang"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// job-a appears in both lists: rank 1 lexical, rank 2 vector.
	assert.Equal(t, recA.Id, results[0].Id)
	assert.InDelta(t, 1.0/61+1.0/62, results[0].FusedScore, 1e-12)
	assert.Equal(t, 9.1, results[0].LexicalScore)
	assert.Equal(t, 0.90, results[0].VectorScore)

	// job-c: rank 1 vector only.
	assert.Equal(t, recC.Id, results[1].Id)
	assert.InDelta(t, 1.0/61, results[1].FusedScore, 1e-12)

	// job-b: rank 2 lexical only.
	assert.Equal(t, recB.Id, results[2].Id)
	assert.InDelta(t, 1.0/62, results[2].FusedScore, 1e-12)

	// Detail came from the single batched lookup.
	assert.Equal(t, 1, jobs.GetJobsCalls)
}

func TestSearchEmbeddingFailureAborts(t *testing.T) {
	index := &fakeIndexRepository{}
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockPlanner(), mock.NewMockQueryRewriter(), mock.NewMockReranker())

	searcher, err := NewSearcher(&fakeJobRepository{}, index, provider)
	require.NoError(t, err)

	_, err = searcher.Search(context.Background(), &core.SearchQuery{Keywords: "golang"})
	require.Error(t, err)
	assert.Equal(t, 0, index.LexicalCalls)
	assert.Equal(t, 0, index.VectorCalls)
}

func TestSearchIndexFailureDegrades(t *testing.T) {
	recA := record("job-a", 2)

	index := &fakeIndexRepository{
		LexicalFunc: func(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
			return nil, errors.New("lexical index unavailable")
		},
		VectorFunc: func(ctx context.Context, q *query.VectorQuery) ([]*core.Hit, error) {
			return []*core.Hit{{Id: recA.Id, Score: 0.9, Source: recA}}, nil
		},
	}
	jobs := &fakeJobRepository{
		GetJobsFunc: func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
			return []*core.JobRecord{recA}, nil
		},
	}

	searcher, err := NewSearcher(jobs, index, mock.NewMockProvider())
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchQuery{Keywords: "golang"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, recA.Id, results[0].Id)
}

func TestSearchKeywordlessQuerySkipsEmbedding(t *testing.T) {
	recA := record("job-a", 2)

	index := &fakeIndexRepository{
		LexicalFunc: func(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
			assert.Empty(t, q.Text)
			require.Len(t, q.Filters, 1)
			assert.Equal(t, "pune", q.Filters[0].Value)
			return []*core.Hit{{Id: recA.Id, Score: 0, Source: recA}}, nil
		},
	}
	jobs := &fakeJobRepository{
		GetJobsFunc: func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
			return []*core.JobRecord{recA}, nil
		},
	}
	embedder := mock.NewMockEmbedder()
	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockPlanner(), mock.NewMockQueryRewriter(), mock.NewMockReranker())

	searcher, err := NewSearcher(jobs, index, provider)
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchQuery{Location: "pune"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 0, embedder.CallCount())
	assert.Equal(t, 0, index.VectorCalls)
}

func TestSearchDetailFallback(t *testing.T) {
	recA := record("job-a", 2)

	index := &fakeIndexRepository{
		LexicalFunc: func(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
			return []*core.Hit{
				{Id: recA.Id, Score: 5.0, Source: recA},
				{Id: core.IDFromContent("job-ghost"), Score: 4.0, Source: nil},
			}, nil
		},
	}

	t.Run("batched lookup failure falls back to index detail", func(t *testing.T) {
		jobs := &fakeJobRepository{
			GetJobsFunc: func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
				return nil, errors.New("store unavailable")
			},
		}
		searcher, err := NewSearcher(jobs, index, mock.NewMockProvider())
		require.NoError(t, err)

		results, err := searcher.Search(context.Background(), &core.SearchQuery{Keywords: "golang"})
		require.NoError(t, err)

		// job-ghost has no detail anywhere and is dropped.
		require.Len(t, results, 1)
		assert.Equal(t, recA.Id, results[0].Id)
		assert.Equal(t, recA, results[0].Record)
	})

	t.Run("authoritative record wins over index detail", func(t *testing.T) {
		authoritative := record("job-a", 2)
		authoritative.Description = "full description only the store holds"
		jobs := &fakeJobRepository{
			GetJobsFunc: func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
				return []*core.JobRecord{authoritative}, nil
			},
		}
		searcher, err := NewSearcher(jobs, index, mock.NewMockProvider())
		require.NoError(t, err)

		results, err := searcher.Search(context.Background(), &core.SearchQuery{Keywords: "golang"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, authoritative, results[0].Record)
	})
}

func TestSearchRanking(t *testing.T) {
	junior := record("job-junior", 1)
	mid := record("job-mid", 4)
	senior := record("job-senior", 9)
	unknown := record("job-unknown", core.ExperienceUnspecified)

	index := &fakeIndexRepository{
		LexicalFunc: func(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
			// Fusion order deliberately scrambled relative to experience.
			return []*core.Hit{
				{Id: senior.Id, Score: 9, Source: senior},
				{Id: unknown.Id, Score: 8, Source: unknown},
				{Id: mid.Id, Score: 7, Source: mid},
				{Id: junior.Id, Score: 6, Source: junior},
			}, nil
		},
	}
	jobs := &fakeJobRepository{
		GetJobsFunc: func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
			return []*core.JobRecord{junior, mid, senior, unknown}, nil
		},
	}

	searcher, err := NewSearcher(jobs, index, mock.NewMockProvider())
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchQuery{Keywords: "golang"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, junior.Id, results[0].Id)
	assert.Equal(t, mid.Id, results[1].Id)
	assert.Equal(t, senior.Id, results[2].Id)
	assert.Equal(t, unknown.Id, results[3].Id)
}

func TestSearchResultCap(t *testing.T) {
	var hits []*core.Hit
	var records []*core.JobRecord
	for i := 0; i < 30; i++ {
		rec := record(string(rune('a'+i%26))+"-job", 3)
		rec.Id = core.ID(i + 1)
		hits = append(hits, &core.Hit{Id: rec.Id, Score: float64(30 - i), Source: rec})
		records = append(records, rec)
	}

	index := &fakeIndexRepository{
		LexicalFunc: func(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
			return hits, nil
		},
	}
	jobs := &fakeJobRepository{
		GetJobsFunc: func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
			return records, nil
		},
	}

	searcher, err := NewSearcher(jobs, index, mock.NewMockProvider())
	require.NoError(t, err)

	results, err := searcher.Search(context.Background(), &core.SearchQuery{Keywords: "golang"})
	require.NoError(t, err)
	assert.Len(t, results, DefaultMaxResults)
}

// recordingMonitor captures the order of monitor callbacks.
type recordingMonitor struct {
	events     []string
	lexicalIDs []uint64
	degraded   []string
	final      []*core.Candidate
}

func (m *recordingMonitor) Start(_ *core.SearchQuery) { m.events = append(m.events, "start") }
func (m *recordingMonitor) AfterLexicalSearch(ids []uint64) {
	m.events = append(m.events, "lexical")
	m.lexicalIDs = ids
}
func (m *recordingMonitor) AfterVectorSearch(_ []uint64) { m.events = append(m.events, "vector") }
func (m *recordingMonitor) IndexDegraded(index string, _ error) {
	m.degraded = append(m.degraded, index)
}
func (m *recordingMonitor) AfterFusion(_ []*core.Candidate) { m.events = append(m.events, "fusion") }
func (m *recordingMonitor) AfterRecordRetrieval(_ []*core.JobRecord) {
	m.events = append(m.events, "retrieval")
}
func (m *recordingMonitor) Finish(candidates []*core.Candidate) {
	m.events = append(m.events, "finish")
	m.final = candidates
}

func TestSearchWithMonitor(t *testing.T) {
	recA := record("job-a", 2)

	index := &fakeIndexRepository{
		LexicalFunc: func(ctx context.Context, q *query.LexicalQuery) ([]*core.Hit, error) {
			return []*core.Hit{{Id: recA.Id, Score: 5.0, Source: recA}}, nil
		},
		VectorFunc: func(ctx context.Context, q *query.VectorQuery) ([]*core.Hit, error) {
			return nil, errors.New("vector index unavailable")
		},
	}
	jobs := &fakeJobRepository{
		GetJobsFunc: func(ctx context.Context, ids ...core.ID) ([]*core.JobRecord, error) {
			return []*core.JobRecord{recA}, nil
		},
	}

	searcher, err := NewSearcher(jobs, index, mock.NewMockProvider())
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	results, err := searcher.SearchWithMonitor(context.Background(), &core.SearchQuery{Keywords: "golang"}, monitor)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, []string{"start", "lexical", "vector", "fusion", "retrieval", "finish"}, monitor.events)
	assert.Equal(t, []uint64{uint64(recA.Id)}, monitor.lexicalIDs)
	assert.Equal(t, []string{"vector"}, monitor.degraded)
	assert.Equal(t, results, monitor.final)
}
