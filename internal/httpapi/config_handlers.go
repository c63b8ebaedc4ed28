package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"sponsorscout-engine/internal/config"
)

type ConfigHandler struct {
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)
	writeJSON(w, cfg)
}

func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "config body is not valid JSON")
		return
	}
	config.Normalize(&cfg)
	if err := config.Validate(cfg); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_config", err.Error())
		return
	}
	if err := config.Save(h.UserCfgPath, cfg); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "config_save_failed", err.Error())
		return
	}
	h.CfgVal.Store(cfg)
	writeJSON(w, map[string]any{"ok": true})
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"path": h.UserCfgPath})
}
