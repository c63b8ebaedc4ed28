package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs
// srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Agent runs (rate limited before any pipeline work).
	rh := RunHandler{Agent: d.Agent, Hub: d.Hub}
	runHandler := http.Handler(methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))
	if d.RateStore != nil && d.RateLimit > 0 {
		runHandler = RateLimit(d.RateStore, d.RateLimit, d.RateWindow)(runHandler)
	}
	mux.Handle("/agent/run", runHandler)

	// Resume
	resh := ResumeHandler{Store: d.Resumes, Hub: d.Hub}
	mux.HandleFunc("/resume", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: resh.Get,
		http.MethodPut: resh.Put,
	}))
	mux.HandleFunc("/resume/reindex", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: resh.Reindex,
	}))

	// Config
	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets
	sh := SecretsHandler{}
	mux.HandleFunc("/api/secrets/careers", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetCareersToken,
	}))

	// Collaborators
	colh := CollabHandler{Sync: d.Sync, Optimizer: d.Optimizer}
	mux.HandleFunc("/sync", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: colh.RunSync,
	}))
	mux.HandleFunc("/optimize", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: colh.Optimize,
	}))

	// SSE firehose
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	return mux
}
