package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"sponsorscout-engine/internal/collab"
)

// CollabHandler proxies the out-of-core collaborators sharing the agent's
// request boundary: memory sync and resume optimization.
type CollabHandler struct {
	Sync      collab.SyncEngine
	Optimizer collab.Optimizer
}

// RunSync triggers a full memory sync. Partial failure is a 207, not an
// error: the report says what completed and what did not.
func (h CollabHandler) RunSync(w http.ResponseWriter, r *http.Request) {
	if h.Sync == nil {
		WriteError(w, r, http.StatusNotImplemented, "sync_unconfigured", "sync engine is not configured")
		return
	}

	var in struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.UserID) == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_request", "userId is required")
		return
	}

	report, err := h.Sync.SyncAll(r.Context(), in.UserID)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "sync_failed", err.Error())
		return
	}
	status := http.StatusOK
	if report.OperationsFailed > 0 {
		status = http.StatusMultiStatus
	}
	WriteJSON(w, status, report)
}

func (h CollabHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if h.Optimizer == nil {
		WriteError(w, r, http.StatusNotImplemented, "optimizer_unconfigured", "optimizer is not configured")
		return
	}

	var in collab.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "body is not valid JSON")
		return
	}
	if strings.TrimSpace(in.Latex) == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_request", "latex is required")
		return
	}

	resp, err := h.Optimizer.OptimizeResume(r.Context(), in)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "optimize_failed", err.Error())
		return
	}
	writeJSON(w, resp)
}
