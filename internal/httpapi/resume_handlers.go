package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"sponsorscout-engine/internal/domain"
	"sponsorscout-engine/internal/events"
	"sponsorscout-engine/internal/resume"
)

type ResumeHandler struct {
	Store *resume.Store
	Hub   *events.Hub
}

func (h ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.Store.LoadCurrentResume(r.Context())
	if errors.Is(err, resume.ErrNoResume) {
		WriteError(w, r, http.StatusNotFound, "no_resume", "no resume stored yet")
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "resume_load_failed", err.Error())
		return
	}
	writeJSON(w, res)
}

func (h ResumeHandler) Put(w http.ResponseWriter, r *http.Request) {
	var in domain.Resume
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "resume body is not valid JSON")
		return
	}
	if in.IsEmpty() {
		WriteError(w, r, http.StatusBadRequest, "empty_resume", "resume has no scoreable content")
		return
	}
	if err := h.Store.Save(r.Context(), in); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "resume_save_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}

// Reindex rebuilds the component projection, emitting progress frames on
// the firehose as blocks are indexed.
func (h ResumeHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFrom(r.Context())

	blocks, err := h.Store.Reindex(r.Context(), func(done, total int) {
		if h.Hub != nil {
			h.Hub.Publish(events.MakeEvent(reqID, events.FrameProgress, 1,
				map[string]int{"indexed": done, "total": total}))
		}
	})
	if errors.Is(err, resume.ErrNoResume) {
		WriteError(w, r, http.StatusNotFound, "no_resume", "no resume stored yet")
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reindex_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "blocks": len(blocks)})
}
