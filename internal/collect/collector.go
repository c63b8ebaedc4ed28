package collect

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sponsorscout-engine/internal/careers"
	"sponsorscout-engine/internal/domain"
)

const (
	DefaultWidth           = 4
	DefaultPerFetchTimeout = 15 * time.Second
)

// Params are the search terms applied to every candidate employer.
type Params struct {
	Query    string
	Location string
}

// Notice reports one candidate's outcome, delivered in completion order.
// Fetches still in flight when the run deadline hits are discarded and
// emit no Notice.
type Notice struct {
	Company  string
	Postings int
	Err      error
}

// Collector fetches current postings for candidate employers with bounded
// concurrency. Each fetch has its own timeout, independent of the run
// deadline; a candidate that fails contributes zero postings without
// reducing anyone else's budget.
type Collector struct {
	Search   careers.Searcher
	Width    int
	PerFetch time.Duration
	Log      *zap.Logger
}

func New(search careers.Searcher, width int, perFetch time.Duration, log *zap.Logger) *Collector {
	if width <= 0 {
		width = DefaultWidth
	}
	if perFetch <= 0 {
		perFetch = DefaultPerFetchTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{Search: search, Width: width, PerFetch: perFetch, Log: log}
}

// Collect gathers up to maxJobs postings across candidates,
// first-accumulated-first-kept. It returns the postings plus the number of
// candidates actually attempted. Cancellation is cooperative: no new work
// starts after ctx ends, and results of fetches still in flight at that
// point are discarded.
func (c *Collector) Collect(ctx context.Context, candidates []domain.SponsorCandidate, params Params, maxJobs int, notify func(Notice)) ([]domain.JobPosting, int) {
	var (
		mu        sync.Mutex
		collected []domain.JobPosting
		attempted int
		enough    bool
	)

	emit := func(n Notice) {
		if notify != nil {
			notify(n)
		}
	}

	g := errgroup.Group{}
	g.SetLimit(c.Width)

	for _, cand := range candidates {
		mu.Lock()
		stop := enough
		mu.Unlock()
		if stop || ctx.Err() != nil {
			break
		}

		mu.Lock()
		attempted++
		mu.Unlock()

		cand := cand
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, c.PerFetch)
			defer cancel()

			postings, err := c.Search.Search(fctx, cand.CompanyName, params.Query, params.Location)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				c.Log.Warn("candidate search failed",
					zap.String("company", cand.CompanyName),
					zap.Error(err),
				)
				emit(Notice{Company: cand.CompanyName, Err: err})
				return nil // one bad candidate never aborts the run
			}

			// Run deadline hit while we were in flight: discard.
			if ctx.Err() != nil {
				return nil
			}

			kept := 0
			for _, p := range postings {
				if len(collected) >= maxJobs {
					enough = true
					break
				}
				collected = append(collected, p)
				kept++
			}
			if len(collected) >= maxJobs {
				enough = true
			}
			emit(Notice{Company: cand.CompanyName, Postings: kept})
			return nil
		})
	}

	_ = g.Wait()

	mu.Lock()
	defer mu.Unlock()
	return collected, attempted
}
