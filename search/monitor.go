package search

import (
	"github.com/poiesic/jobagent/core"
)

// SearchMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query *core.SearchQuery)
	AfterLexicalSearch(ids []uint64)
	AfterVectorSearch(ids []uint64)
	IndexDegraded(index string, err error)
	AfterFusion(candidates []*core.Candidate)
	AfterRecordRetrieval(records []*core.JobRecord)
	Finish(candidates []*core.Candidate)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.SearchQuery)                 {}
func (n *noopMonitor) AfterLexicalSearch(_ []uint64)             {}
func (n *noopMonitor) AfterVectorSearch(_ []uint64)              {}
func (n *noopMonitor) IndexDegraded(_ string, _ error)           {}
func (n *noopMonitor) AfterFusion(_ []*core.Candidate)           {}
func (n *noopMonitor) AfterRecordRetrieval(_ []*core.JobRecord)  {}
func (n *noopMonitor) Finish(_ []*core.Candidate)                {}
