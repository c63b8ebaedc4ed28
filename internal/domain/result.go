package domain

import "encoding/json"

// StepType enumerates the kinds of progress notifications a run emits.
type StepType string

const (
	StepStageStart    StepType = "stage_start"
	StepStageProgress StepType = "stage_progress"
	StepStageComplete StepType = "stage_complete"
	StepError         StepType = "error"
)

// Stage names used in step events.
const (
	StageDiscovery  = "discovery"
	StageCollection = "collection"
	StageScoring    = "scoring"
	StageRanking    = "ranking"
)

// StepEvent is a transient progress notification. Never persisted.
type StepEvent struct {
	Type    StepType        `json:"type"`
	Stage   string          `json:"stage"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ScoredPosting pairs a posting with its match verdict.
type ScoredPosting struct {
	Posting JobPosting  `json:"posting"`
	Match   MatchResult `json:"match"`
}

// AgentResult is the terminal output of one run. Owned solely by the
// caller after emission.
type AgentResult struct {
	JobTitle          string          `json:"jobTitle"`
	TotalH1BSponsors  int             `json:"totalH1bSponsors"`
	CompaniesSearched int             `json:"companiesSearched"`
	JobsAnalyzed      int             `json:"jobsAnalyzed"`
	Results           []ScoredPosting `json:"results"`
	Error             string          `json:"error,omitempty"`
}
