package careers

import (
	"context"

	"sponsorscout-engine/internal/domain"
)

// Searcher is the career-site search boundary. Each call fails
// independently; the collector decides what a failure means for the run.
type Searcher interface {
	Search(ctx context.Context, company, query, location string) ([]domain.JobPosting, error)
	// SearchMultiple fans Search out over up to ten companies and reports
	// per-company results; one company's failure never hides another's.
	SearchMultiple(ctx context.Context, companies []string, query, location string) (map[string]CompanyResult, error)
}

// CompanyResult is one company's slice of a SearchMultiple call.
type CompanyResult struct {
	Postings []domain.JobPosting
	Err      error
}
