package rank

import (
	"sort"
	"strings"

	"sponsorscout-engine/internal/domain"
)

// Rank filters scored postings below threshold, orders the survivors
// deterministically and truncates to maxJobs. Pure: inputs are never
// mutated, no I/O.
//
// Order: overallScore descending; ties broken by company name ascending
// (case-insensitive), then posting id ascending.
func Rank(scored []domain.ScoredPosting, threshold, maxJobs int) []domain.ScoredPosting {
	out := make([]domain.ScoredPosting, 0, len(scored))
	for _, sp := range scored {
		if sp.Match.OverallScore >= threshold {
			out = append(out, sp)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Match.OverallScore != b.Match.OverallScore {
			return a.Match.OverallScore > b.Match.OverallScore
		}
		ca := strings.ToLower(a.Posting.Company)
		cb := strings.ToLower(b.Posting.Company)
		if ca != cb {
			return ca < cb
		}
		return a.Posting.ID < b.Posting.ID
	})

	if maxJobs > 0 && len(out) > maxJobs {
		out = out[:maxJobs]
	}
	return out
}
