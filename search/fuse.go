package search

import (
	"github.com/poiesic/jobagent/core"
)

// rrfK is the reciprocal rank fusion constant. A rank-r hit contributes
// 1/(rrfK+r) to its document's fused score, with ranks starting at 1.
const rrfK = 60

// fuse combines the lexical and vector hit lists by reciprocal rank fusion.
// A document appearing in both lists accumulates both contributions.
// Candidates come out in first-appearance order: all lexical hits by rank,
// then vector-only hits by rank. Raw per-source scores are carried along
// for inspection but never drive ranking.
func fuse(lexical, vector []*core.Hit) []*core.Candidate {
	byID := make(map[core.ID]*core.Candidate, len(lexical)+len(vector))
	var ordered []*core.Candidate

	add := func(hit *core.Hit, rank int, isLexical bool) {
		cand, ok := byID[hit.Id]
		if !ok {
			cand = &core.Candidate{Id: hit.Id}
			byID[hit.Id] = cand
			ordered = append(ordered, cand)
		}
		cand.FusedScore += 1.0 / float64(rrfK+rank)
		if isLexical {
			cand.LexicalScore = hit.Score
		} else {
			cand.VectorScore = hit.Score
		}
		if cand.Record == nil && hit.Source != nil {
			cand.Record = hit.Source
		}
	}

	for i, hit := range lexical {
		add(hit, i+1, true)
	}
	for i, hit := range vector {
		add(hit, i+1, false)
	}

	return ordered
}
