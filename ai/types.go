package ai

import "github.com/poiesic/jobagent/core"

// PlanStep is one raw planner-produced tool invocation.
// The input is always a literal string at this stage; structured inputs are
// substituted later by the executor's piping rules.
type PlanStep struct {
	Tool  string `json:"tool"`
	Input string `json:"input"`
}

// ToolPlan is the raw ordered tool plan for one request, exactly as the
// planner emitted it. It is untrusted until validated by the executor layer.
type ToolPlan struct {
	Steps []PlanStep `json:"steps"`
}

// RewrittenQuery is the structured product of query rewriting.
// Experience is deliberately loose: the rewriter may omit it, return a
// number, or return a textual range. It is normalized by query.ParseExperience.
type RewrittenQuery struct {
	Keywords   string
	Location   string
	Experience any
}

// CandidateSummary is the token-efficient candidate view sent to the reranker:
// identifier plus the fields a recruiter would rank on, with the description
// truncated.
// The identifier is serialized as a string so it survives a round trip
// through the model without float precision loss.
type CandidateSummary struct {
	Id          core.ID `json:"id,string"`
	Title       string  `json:"title"`
	Skills      string  `json:"skills"`
	Experience  int     `json:"experience"`
	Description string  `json:"description"`
}

// SummaryDescriptionLimit caps the description length in candidate summaries.
const SummaryDescriptionLimit = 300

// SummarizeCandidate builds the reranker view of a candidate.
func SummarizeCandidate(c *core.Candidate) CandidateSummary {
	s := CandidateSummary{Id: c.Id}
	if c.Record == nil {
		return s
	}
	s.Title = c.Record.Title
	s.Skills = c.Record.Skills
	s.Experience = c.Record.Experience
	s.Description = truncateRunes(c.Record.Description, SummaryDescriptionLimit)
	return s
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
