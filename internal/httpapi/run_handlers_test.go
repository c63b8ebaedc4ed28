package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorscout-engine/internal/agent"
	"sponsorscout-engine/internal/collect"
	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/events"
)

type stubDirectory struct{ cands []domain.SponsorCandidate }

func (s stubDirectory) Discover(ctx context.Context, roleKeyword string) ([]domain.SponsorCandidate, error) {
	return s.cands, nil
}

type stubCollector struct{ postings []domain.JobPosting }

func (s stubCollector) Collect(ctx context.Context, candidates []domain.SponsorCandidate, params collect.Params, maxJobs int, notify func(collect.Notice)) ([]domain.JobPosting, int) {
	return s.postings, len(candidates)
}

type stubResumes struct{ resume domain.Resume }

func (s stubResumes) LoadCurrentResume(ctx context.Context) (domain.Resume, error) {
	return s.resume, nil
}

func testAgent() *agent.Agent {
	return agent.New(
		stubDirectory{cands: []domain.SponsorCandidate{{CompanyName: "alpha"}}},
		stubCollector{postings: []domain.JobPosting{
			{ID: "a1", Company: "alpha", Title: "Engineer", Requirements: []string{"golang postgresql"}},
		}},
		stubResumes{resume: domain.Resume{Skills: []string{"golang", "postgresql"}}},
		nil,
	)
}

// sseFrame is one parsed "event:/data:" pair from a response body.
type sseFrame struct {
	event string
	data  string
}

func parseSSE(t *testing.T, body string) []sseFrame {
	t.Helper()
	var frames []sseFrame
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		lines := strings.SplitN(chunk, "\n", 2)
		require.Len(t, lines, 2, "frame must carry event and data lines: %q", chunk)
		frames = append(frames, sseFrame{
			event: strings.TrimPrefix(lines[0], "event: "),
			data:  strings.TrimPrefix(lines[1], "data: "),
		})
	}
	return frames
}

func TestRunRejectsInvalidJSON(t *testing.T) {
	h := RunHandler{Agent: testAgent()}
	rec := httptest.NewRecorder()
	h.Run(rec, httptest.NewRequest(http.MethodPost, "/agent/run", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestRunRejectsMissingJobTitle(t *testing.T) {
	h := RunHandler{Agent: testAgent()}
	rec := httptest.NewRecorder()
	h.Run(rec, httptest.NewRequest(http.MethodPost, "/agent/run", strings.NewReader(`{"location":"NYC"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}

func TestRunStreamsFramesInOrder(t *testing.T) {
	hub := events.NewHub()
	sub := hub.Subscribe()
	h := RunHandler{Agent: testAgent(), Hub: hub}

	rec := httptest.NewRecorder()
	h.Run(rec, httptest.NewRequest(http.MethodPost, "/agent/run",
		strings.NewReader(`{"jobTitle":"software engineer"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	frames := parseSSE(t, rec.Body.String())
	require.NotEmpty(t, frames)

	var resultCount int
	for _, f := range frames {
		if f.event == "result" {
			resultCount++
		}
	}
	assert.Equal(t, 1, resultCount)
	assert.Equal(t, "result", frames[len(frames)-1].event)

	var res domain.AgentResult
	require.NoError(t, json.Unmarshal([]byte(frames[len(frames)-1].data), &res))
	assert.Equal(t, "software engineer", res.JobTitle)
	assert.Equal(t, 1, res.JobsAnalyzed)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "a1", res.Results[0].Posting.ID)

	// Every frame is also teed onto the firehose.
	assert.Len(t, sub, len(frames))
}

func TestRunNormalizeDefaultsAndClamp(t *testing.T) {
	in := runRequest{JobTitle: "x"}
	req := in.normalize()
	assert.Equal(t, domain.DefaultMaxJobs, req.MaxJobs)
	assert.Equal(t, domain.DefaultMatchThreshold, req.MatchThreshold)

	big := 100
	in.MaxJobs = &big
	assert.Equal(t, domain.MaxJobsCeiling, in.normalize().MaxJobs)

	zero := 0
	in.MaxJobs = &zero
	assert.Error(t, in.normalize().Validate(), "explicit zero is rejected, not defaulted")
}
