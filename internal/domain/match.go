package domain

// RequirementMatch holds the similarity score for one posting requirement,
// in the same order as the posting's requirement list.
type RequirementMatch struct {
	Requirement string  `json:"requirement"`
	Score       float64 `json:"score"`
}

// MatchResult is the scorer's verdict for one posting against the resume.
type MatchResult struct {
	JobID              string             `json:"jobId"`
	OverallScore       int                `json:"overallScore"`
	RequirementMatches []RequirementMatch `json:"requirementMatches"`
	Gaps               []string           `json:"gaps"`
	Strengths          []string           `json:"strengths"`
	Suggestions        []string           `json:"suggestions"`
}
