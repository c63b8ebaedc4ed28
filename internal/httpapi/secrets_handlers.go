package httpapi

import (
	"encoding/json"
	"net/http"

	"sponsorscout-engine/internal/secrets"
)

type SecretsHandler struct{}

// SetCareersToken stores the career-search API token in the OS keyring.
// The token never touches the config file or the database.
func (h SecretsHandler) SetCareersToken(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "body is not valid JSON")
		return
	}
	if err := secrets.SetCareersToken(in.Token); err != nil {
		WriteError(w, r, http.StatusBadRequest, "secret_rejected", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}
