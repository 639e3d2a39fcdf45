package search

import (
	"testing"

	"github.com/poiesic/jobagent/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuse(t *testing.T) {
	t.Run("accumulates contributions from both lists", func(t *testing.T) {
		lexical := []*core.Hit{
			{Id: 1, Score: 9.0},
			{Id: 2, Score: 5.0},
		}
		vector := []*core.Hit{
			{Id: 2, Score: 0.9},
			{Id: 3, Score: 0.8},
		}

		candidates := fuse(lexical, vector)
		require.Len(t, candidates, 3)

		// First-appearance order: lexical hits first, then new vector hits.
		assert.Equal(t, core.ID(1), candidates[0].Id)
		assert.Equal(t, core.ID(2), candidates[1].Id)
		assert.Equal(t, core.ID(3), candidates[2].Id)

		assert.InDelta(t, 1.0/61, candidates[0].FusedScore, 1e-12)
		assert.InDelta(t, 1.0/62+1.0/61, candidates[1].FusedScore, 1e-12)
		assert.InDelta(t, 1.0/62, candidates[2].FusedScore, 1e-12)

		assert.Equal(t, 5.0, candidates[1].LexicalScore)
		assert.Equal(t, 0.9, candidates[1].VectorScore)
	})

	t.Run("empty lists", func(t *testing.T) {
		assert.Empty(t, fuse(nil, nil))
	})

	t.Run("keeps first available source", func(t *testing.T) {
		rec := &core.JobRecord{Id: 1, Title: "Engineer"}
		candidates := fuse([]*core.Hit{{Id: 1}}, []*core.Hit{{Id: 1, Source: rec}})
		require.Len(t, candidates, 1)
		assert.Equal(t, rec, candidates[0].Record)
	})
}

func TestMergeOrder(t *testing.T) {
	a := &core.Candidate{Id: 1}
	b := &core.Candidate{Id: 2}
	c := &core.Candidate{Id: 3}
	candidates := []*core.Candidate{a, b, c}

	t.Run("preferred order first, remainder in original order", func(t *testing.T) {
		merged := MergeOrder(candidates, []core.ID{3, 1})
		require.Len(t, merged, 3)
		assert.Equal(t, c, merged[0])
		assert.Equal(t, a, merged[1])
		assert.Equal(t, b, merged[2])
	})

	t.Run("unknown and duplicate ids are ignored", func(t *testing.T) {
		merged := MergeOrder(candidates, []core.ID{99, 2, 2})
		require.Len(t, merged, 3)
		assert.Equal(t, b, merged[0])
		assert.Equal(t, a, merged[1])
		assert.Equal(t, c, merged[2])
	})

	t.Run("empty preferred keeps original order", func(t *testing.T) {
		merged := MergeOrder(candidates, nil)
		assert.Equal(t, candidates, merged)
	})
}
