package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sponsorscout-engine/internal/collect"
	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/events"
	"sponsorscout-engine/internal/match"
	"sponsorscout-engine/internal/rank"
	"sponsorscout-engine/internal/sponsors"
)

// DefaultBudget is the soft wall clock bounding collection and scoring.
const DefaultBudget = 120 * time.Second

// ResumeStore is the resume collaborator boundary, loaded once per run
// before scoring.
type ResumeStore interface {
	LoadCurrentResume(ctx context.Context) (domain.Resume, error)
}

// Collector is the job-collection stage boundary.
type Collector interface {
	Collect(ctx context.Context, candidates []domain.SponsorCandidate, params collect.Params, maxJobs int, notify func(collect.Notice)) ([]domain.JobPosting, int)
}

// Agent sequences discovery, collection, scoring and ranking for one run.
// One Agent value serves many runs; runs share no mutable state.
type Agent struct {
	Sponsors  sponsors.Directory
	Collector Collector
	Resumes   ResumeStore
	Scorer    *match.Scorer
	Budget    time.Duration
	Log       *zap.Logger
}

func New(dir sponsors.Directory, col Collector, resumes ResumeStore, log *zap.Logger) *Agent {
	if log == nil {
		log = zap.NewNop()
	}
	return &Agent{
		Sponsors:  dir,
		Collector: col,
		Resumes:   resumes,
		Scorer:    match.NewScorer(),
		Budget:    DefaultBudget,
		Log:       log,
	}
}

// Run executes one pipeline run and always returns a result: every failure
// is captured into the result's error field and/or step events, and the
// stream always receives exactly one terminal result frame before closing,
// whatever happens in between.
func (a *Agent) Run(ctx context.Context, req domain.SearchRequest, stream *events.Stream) (res domain.AgentResult) {
	runID := uuid.NewString()
	log := a.Log.With(zap.String("run_id", runID), zap.String("job_title", req.JobTitle))

	res = domain.AgentResult{JobTitle: req.JobTitle}

	defer func() {
		if r := recover(); r != nil {
			log.Error("run panicked", zap.Any("panic", r))
			res = domain.AgentResult{
				JobTitle: req.JobTitle,
				Error:    fmt.Sprintf("unexpected failure: %v", r),
			}
			stream.Step(domain.StepEvent{
				Type:    domain.StepError,
				Stage:   "run",
				Message: res.Error,
			})
		}
		stream.Result(res)
	}()

	budget := a.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}

	// Stage 1: discovery. The only unrecoverable stage; nothing downstream
	// has data without sponsor candidates.
	stageStart(stream, domain.StageDiscovery, "looking up visa sponsors for "+req.JobTitle)

	cands, err := a.Sponsors.Discover(ctx, req.JobTitle)
	if err != nil {
		log.Warn("sponsor discovery failed", zap.Error(err))
		res.Error = fmt.Sprintf("sponsor discovery failed: %v", err)
		stepError(stream, domain.StageDiscovery, res.Error)
		return res
	}
	res.TotalH1BSponsors = len(cands)
	stageComplete(stream, domain.StageDiscovery,
		fmt.Sprintf("found %d sponsoring employers", len(cands)),
		map[string]any{"sponsors": len(cands)})

	// Stages 2 and 3 share the run's time budget.
	budgetCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	// Stage 2: collection. Per-candidate failures are reported and skipped.
	stageStart(stream, domain.StageCollection, "fetching live postings from sponsors")

	params := collect.Params{Query: req.JobTitle, Location: req.Location}
	postings, attempted := a.Collector.Collect(budgetCtx, cands, params, req.MaxJobs, func(n collect.Notice) {
		if n.Err != nil {
			stepError(stream, domain.StageCollection,
				fmt.Sprintf("search failed for %s: %v", n.Company, n.Err))
			return
		}
		stageProgress(stream, domain.StageCollection,
			fmt.Sprintf("collected %d postings from %s", n.Postings, n.Company),
			map[string]any{"company": n.Company, "postings": n.Postings})
	})
	// Attempted candidates, not successfully-returning ones.
	res.CompaniesSearched = attempted

	if budgetCtx.Err() != nil && ctx.Err() == nil {
		stageProgress(stream, domain.StageCollection,
			"time budget exceeded; continuing with partial data", nil)
	}
	stageComplete(stream, domain.StageCollection,
		fmt.Sprintf("collected %d postings", len(postings)),
		map[string]any{"jobs": len(postings)})

	// Stage 3: scoring.
	stageStart(stream, domain.StageScoring, "scoring postings against resume")

	resume, err := a.Resumes.LoadCurrentResume(ctx)
	if err != nil {
		log.Warn("resume load failed", zap.Error(err))
		res.Error = fmt.Sprintf("resume unavailable: %v", err)
		stepError(stream, domain.StageScoring, res.Error)
		return res
	}
	comps := match.ComponentsFromResume(resume)

	scored := make([]domain.ScoredPosting, 0, len(postings))
	for _, p := range postings {
		if budgetCtx.Err() != nil {
			stageProgress(stream, domain.StageScoring,
				"time budget exceeded; scoring stopped early", nil)
			break
		}
		m := a.Scorer.Score(p, comps)
		scored = append(scored, domain.ScoredPosting{Posting: p, Match: m})
		res.JobsAnalyzed++
		stageProgress(stream, domain.StageScoring,
			fmt.Sprintf("scored %s at %s", p.Title, p.Company),
			map[string]any{"jobId": p.ID, "score": m.OverallScore})
	}

	stageComplete(stream, domain.StageScoring,
		fmt.Sprintf("scored %d postings", res.JobsAnalyzed),
		map[string]any{"jobs": res.JobsAnalyzed})

	// Stage 4: ranking.
	stageStart(stream, domain.StageRanking, "ranking matches")
	res.Results = rank.Rank(scored, req.MatchThreshold, req.MaxJobs)
	stageComplete(stream, domain.StageRanking,
		fmt.Sprintf("%d postings at or above threshold %d", len(res.Results), req.MatchThreshold),
		map[string]any{"results": len(res.Results)})

	log.Info("run complete",
		zap.Int("sponsors", res.TotalH1BSponsors),
		zap.Int("companies_searched", res.CompaniesSearched),
		zap.Int("jobs_analyzed", res.JobsAnalyzed),
		zap.Int("results", len(res.Results)),
	)
	return res
}
