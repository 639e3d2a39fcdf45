package search

import (
	"github.com/poiesic/jobagent/core"
)

// MergeOrder reorders candidates by a preferred ID ordering while preserving
// the full union. Candidates named in preferred come first, in preferred
// order; candidates the preferred list omits follow in their original order.
// Preferred IDs with no matching candidate are ignored, as are duplicates.
func MergeOrder(candidates []*core.Candidate, preferred []core.ID) []*core.Candidate {
	if len(preferred) == 0 {
		return candidates
	}

	byID := make(map[core.ID]*core.Candidate, len(candidates))
	for _, cand := range candidates {
		byID[cand.Id] = cand
	}

	merged := make([]*core.Candidate, 0, len(candidates))
	taken := make(map[core.ID]bool, len(preferred))
	for _, id := range preferred {
		cand, ok := byID[id]
		if !ok || taken[id] {
			continue
		}
		merged = append(merged, cand)
		taken[id] = true
	}
	for _, cand := range candidates {
		if !taken[cand.Id] {
			merged = append(merged, cand)
		}
	}
	return merged
}
