package match

import (
	"math"
	"strings"

	"sponsorscout-engine/internal/domain"
)

// Classification cut points. Fixed, not configurable per run.
const (
	gapCutoff      = 0.5
	strengthCutoff = 0.75
)

// Scorer computes deterministic lexical similarity between posting
// requirements and resume blocks. Identical inputs always yield identical
// scores, and scores do not depend on resume block order (each requirement
// takes the maximum over all blocks).
type Scorer struct{}

func NewScorer() *Scorer { return &Scorer{} }

// Score evaluates one posting against the projected resume. An empty
// requirement list is scored as a single synthetic requirement built from
// the description (or the title when the description is empty too).
func (s *Scorer) Score(posting domain.JobPosting, comps Components) domain.MatchResult {
	reqs := posting.Requirements
	if len(reqs) == 0 {
		synthetic := strings.TrimSpace(posting.Description)
		if synthetic == "" {
			synthetic = posting.Title
		}
		reqs = []string{synthetic}
	}

	blockTokens := make([]map[string]bool, len(comps.Blocks))
	for i, b := range comps.Blocks {
		blockTokens[i] = tokenize(b)
	}

	matches := make([]domain.RequirementMatch, 0, len(reqs))
	var gaps, strengths []string
	total := 0.0

	for _, req := range reqs {
		reqTokens := tokenize(req)
		best := 0.0
		for _, bt := range blockTokens {
			if c := coverage(reqTokens, bt); c > best {
				best = c
			}
		}

		matches = append(matches, domain.RequirementMatch{Requirement: req, Score: best})
		total += best

		switch {
		case best < gapCutoff:
			gaps = append(gaps, req)
		case best >= strengthCutoff:
			strengths = append(strengths, req)
		}
	}

	overall := int(math.Round(100 * total / float64(len(matches))))

	suggestions := make([]string, 0, len(gaps))
	for _, g := range gaps {
		suggestions = append(suggestions, suggestionFor(g))
	}

	return domain.MatchResult{
		JobID:              posting.ID,
		OverallScore:       overall,
		RequirementMatches: matches,
		Gaps:               gaps,
		Strengths:          strengths,
		Suggestions:        suggestions,
	}
}
