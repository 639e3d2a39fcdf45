package workflow

import (
	"github.com/poiesic/jobagent/core"
)

// InputKind tags which variant of Input is populated.
type InputKind int

const (
	// InputText carries free-form text, either planner-provided or the
	// original user request.
	InputText InputKind = iota

	// InputQuery carries a structured search query piped from a rewrite step.
	InputQuery

	// InputCandidates carries retrieval results piped from a search step.
	InputCandidates
)

func (k InputKind) String() string {
	switch k {
	case InputText:
		return "text"
	case InputQuery:
		return "query"
	case InputCandidates:
		return "candidates"
	default:
		return "unknown"
	}
}

// Input is the resolved input for one step. Exactly the field matching
// Kind is populated.
type Input struct {
	Kind       InputKind
	Text       string
	Query      *core.SearchQuery
	Candidates []*core.Candidate
}

// TextInput builds a text-variant input.
func TextInput(text string) Input {
	return Input{Kind: InputText, Text: text}
}

// QueryInput builds a query-variant input.
func QueryInput(q *core.SearchQuery) Input {
	return Input{Kind: InputQuery, Query: q}
}

// CandidatesInput builds a candidates-variant input.
func CandidatesInput(candidates []*core.Candidate) Input {
	return Input{Kind: InputCandidates, Candidates: candidates}
}
