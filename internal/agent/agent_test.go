package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorscout-engine/internal/collect"
	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/events"
)

type fakeDirectory struct {
	cands []domain.SponsorCandidate
	err   error
}

func (f *fakeDirectory) Discover(ctx context.Context, roleKeyword string) ([]domain.SponsorCandidate, error) {
	return f.cands, f.err
}

type fakeCollector struct {
	postings []domain.JobPosting
	notices  []collect.Notice
	delay    time.Duration
	panics   bool
}

func (f *fakeCollector) Collect(ctx context.Context, candidates []domain.SponsorCandidate, params collect.Params, maxJobs int, notify func(collect.Notice)) ([]domain.JobPosting, int) {
	if f.panics {
		panic("collector exploded")
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	for _, n := range f.notices {
		if notify != nil {
			notify(n)
		}
	}
	return f.postings, len(candidates)
}

type fakeResumes struct {
	resume domain.Resume
	err    error
}

func (f *fakeResumes) LoadCurrentResume(ctx context.Context) (domain.Resume, error) {
	return f.resume, f.err
}

func testResume() domain.Resume {
	return domain.Resume{Skills: []string{"golang", "postgresql", "kubernetes", "docker"}}
}

// drain collects all frames after a synchronous Run; the stream buffer is
// large enough that Run never blocks on it in these tests.
func drain(t *testing.T, s *events.Stream) []events.Frame {
	t.Helper()
	var frames []events.Frame
	timeout := time.After(2 * time.Second)
	for {
		select {
		case f, ok := <-s.Frames():
			if !ok {
				return frames
			}
			frames = append(frames, f)
		case <-timeout:
			t.Fatal("stream never closed")
		}
	}
}

func stepEvents(t *testing.T, frames []events.Frame) []domain.StepEvent {
	t.Helper()
	var steps []domain.StepEvent
	for _, f := range frames {
		if f.Event != events.FrameStep {
			continue
		}
		var ev domain.StepEvent
		require.NoError(t, json.Unmarshal(f.Data, &ev))
		steps = append(steps, ev)
	}
	return steps
}

func req() domain.SearchRequest {
	return domain.SearchRequest{JobTitle: "software engineer", MaxJobs: 5, MatchThreshold: 60}
}

func TestRunHappyPathWithPartialFailure(t *testing.T) {
	dir := &fakeDirectory{cands: []domain.SponsorCandidate{
		{CompanyName: "alpha"}, {CompanyName: "beta"}, {CompanyName: "gamma"},
	}}
	col := &fakeCollector{
		postings: []domain.JobPosting{
			{ID: "a1", Company: "alpha", Title: "Engineer", Requirements: []string{"golang postgresql haskell"}},
			{ID: "a2", Company: "alpha", Title: "Engineer", Requirements: []string{"haskell erlang prolog"}},
			{ID: "c1", Company: "gamma", Title: "Engineer", Requirements: []string{"golang postgresql kubernetes"}},
		},
		notices: []collect.Notice{
			{Company: "alpha", Postings: 2},
			{Company: "beta", Err: errors.New("career site down")},
			{Company: "gamma", Postings: 1},
		},
	}
	a := New(dir, col, &fakeResumes{resume: testResume()}, nil)

	stream := events.NewStream(128)
	res := a.Run(context.Background(), req(), stream)
	frames := drain(t, stream)

	assert.Empty(t, res.Error)
	assert.Equal(t, 3, res.TotalH1BSponsors)
	assert.Equal(t, 3, res.CompaniesSearched)
	assert.Equal(t, 3, res.JobsAnalyzed)

	// c1 scores full coverage, a1 partial, a2 falls below threshold.
	require.Len(t, res.Results, 2)
	assert.Equal(t, "c1", res.Results[0].Posting.ID)
	assert.Equal(t, "a1", res.Results[1].Posting.ID)
	assert.Greater(t, res.Results[0].Match.OverallScore, res.Results[1].Match.OverallScore)

	// Exactly one result frame, and it is the last one.
	var resultCount int
	for _, f := range frames {
		if f.Event == events.FrameResult {
			resultCount++
		}
	}
	assert.Equal(t, 1, resultCount)
	assert.Equal(t, events.FrameResult, frames[len(frames)-1].Event)

	// The failed company surfaced as an error step, not a run error.
	steps := stepEvents(t, frames)
	var errSteps []domain.StepEvent
	for _, s := range steps {
		if s.Type == domain.StepError {
			errSteps = append(errSteps, s)
		}
	}
	require.Len(t, errSteps, 1)
	assert.Equal(t, domain.StageCollection, errSteps[0].Stage)
	assert.Contains(t, errSteps[0].Message, "beta")
}

func TestRunDiscoveryFailureIsFatal(t *testing.T) {
	a := New(&fakeDirectory{err: errors.New("registry unreachable")}, &fakeCollector{}, &fakeResumes{}, nil)

	stream := events.NewStream(64)
	res := a.Run(context.Background(), req(), stream)
	frames := drain(t, stream)

	assert.Contains(t, res.Error, "sponsor discovery failed")
	assert.Empty(t, res.Results)
	assert.Equal(t, events.FrameResult, frames[len(frames)-1].Event)

	// The run never reached collection.
	for _, s := range stepEvents(t, frames) {
		assert.NotEqual(t, domain.StageCollection, s.Stage)
	}
}

func TestRunResumeLoadFailure(t *testing.T) {
	dir := &fakeDirectory{cands: []domain.SponsorCandidate{{CompanyName: "alpha"}}}
	col := &fakeCollector{
		postings: []domain.JobPosting{{ID: "a1", Company: "alpha"}},
		notices:  []collect.Notice{{Company: "alpha", Postings: 1}},
	}
	a := New(dir, col, &fakeResumes{err: errors.New("no resume stored")}, nil)

	stream := events.NewStream(64)
	res := a.Run(context.Background(), req(), stream)
	drain(t, stream)

	assert.Contains(t, res.Error, "resume unavailable")
	assert.Empty(t, res.Results)
	// Discovery and collection counters survive the scoring failure.
	assert.Equal(t, 1, res.TotalH1BSponsors)
	assert.Equal(t, 1, res.CompaniesSearched)
	assert.Equal(t, 0, res.JobsAnalyzed)
}

func TestRunPanicRecovered(t *testing.T) {
	dir := &fakeDirectory{cands: []domain.SponsorCandidate{{CompanyName: "alpha"}}}
	a := New(dir, &fakeCollector{panics: true}, &fakeResumes{resume: testResume()}, nil)

	stream := events.NewStream(64)
	res := a.Run(context.Background(), req(), stream)
	frames := drain(t, stream)

	assert.Contains(t, res.Error, "unexpected failure")
	assert.Empty(t, res.Results)

	var resultCount int
	for _, f := range frames {
		if f.Event == events.FrameResult {
			resultCount++
		}
	}
	assert.Equal(t, 1, resultCount)
	assert.Equal(t, events.FrameResult, frames[len(frames)-1].Event)
}

func TestRunBudgetExceededIsProgressNotError(t *testing.T) {
	dir := &fakeDirectory{cands: []domain.SponsorCandidate{{CompanyName: "alpha"}}}
	col := &fakeCollector{
		postings: []domain.JobPosting{{ID: "a1", Company: "alpha", Requirements: []string{"golang"}}},
		delay:    10 * time.Millisecond,
	}
	a := New(dir, col, &fakeResumes{resume: testResume()}, nil)
	a.Budget = time.Millisecond

	stream := events.NewStream(64)
	res := a.Run(context.Background(), req(), stream)
	frames := drain(t, stream)

	assert.Empty(t, res.Error, "an exceeded budget is not a run failure")
	assert.Equal(t, 0, res.JobsAnalyzed)

	var sawBudgetProgress bool
	for _, s := range stepEvents(t, frames) {
		if s.Type == domain.StepStageProgress && s.Message == "time budget exceeded; continuing with partial data" {
			sawBudgetProgress = true
		}
		assert.NotEqual(t, "run", s.Stage)
	}
	assert.True(t, sawBudgetProgress)
	assert.Equal(t, events.FrameResult, frames[len(frames)-1].Event)
}
