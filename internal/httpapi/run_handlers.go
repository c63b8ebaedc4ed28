package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"sponsorscout-engine/internal/agent"
	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/events"
)

// RunHandler starts agent runs and streams them back over SSE.
type RunHandler struct {
	Agent *agent.Agent
	Hub   *events.Hub
}

// runRequest is the inbound shape; pointer fields distinguish "absent"
// from zero so defaults apply only to absent fields.
type runRequest struct {
	JobTitle       string `json:"jobTitle"`
	Location       string `json:"location"`
	MaxJobs        *int   `json:"maxJobs"`
	MatchThreshold *int   `json:"matchThreshold"`
}

func (in runRequest) normalize() domain.SearchRequest {
	req := domain.SearchRequest{
		JobTitle:       in.JobTitle,
		Location:       in.Location,
		MaxJobs:        domain.DefaultMaxJobs,
		MatchThreshold: domain.DefaultMatchThreshold,
	}
	if in.MaxJobs != nil {
		req.MaxJobs = *in.MaxJobs
	}
	if req.MaxJobs > domain.MaxJobsCeiling {
		req.MaxJobs = domain.MaxJobsCeiling
	}
	if in.MatchThreshold != nil {
		req.MatchThreshold = *in.MatchThreshold
	}
	return req
}

// Run validates the request, then streams step frames and the single
// terminal result frame. The full frame sequence is also teed onto the
// firehose hub so observing UIs see runs they did not start.
func (h RunHandler) Run(w http.ResponseWriter, r *http.Request) {
	var in runRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}
	req := in.normalize()
	if err := req.Validate(); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, "stream_unsupported", "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	stream := events.NewStream(64)
	go h.Agent.Run(r.Context(), req, stream)

	reqID := RequestIDFrom(r.Context())
	clientGone := false

	// Drain until the stream closes even if the client went away: the
	// orchestrator owns the terminal-frame guarantee, we own not wedging
	// its channel.
	for f := range stream.Frames() {
		if h.Hub != nil {
			h.Hub.Publish(events.MakeEvent(reqID, f.Event, 1, f.Data))
		}
		if clientGone {
			continue
		}
		data := f.Data
		if len(data) == 0 {
			data = []byte("{}")
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", f.Event, data); err != nil {
			clientGone = true
			continue
		}
		flusher.Flush()
	}
}
