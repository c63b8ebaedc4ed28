package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"sponsorscout-engine/internal/agent"
	"sponsorscout-engine/internal/careers"
	"sponsorscout-engine/internal/collab"
	"sponsorscout-engine/internal/collect"
	"sponsorscout-engine/internal/config"
	"sponsorscout-engine/internal/events"
	"sponsorscout-engine/internal/httpapi"
	"sponsorscout-engine/internal/logger"
	"sponsorscout-engine/internal/resume"
	"sponsorscout-engine/internal/secrets"
	"sponsorscout-engine/internal/sponsors"
	"sponsorscout-engine/internal/webutil"
)

func main() {
	// Engine data dir: use env if provided (the desktop shell can pass
	// one), else local folder.
	dataDir := os.Getenv("SPONSORSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// One engine per data dir.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil || !locked {
		fmt.Fprintln(os.Stderr, "another engine instance already owns this data dir")
		os.Exit(1)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed (%s): %v\n", userCfgPath, err)
		os.Exit(1)
	}
	config.Normalize(&cfg)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config invalid (%s): %v\n", userCfgPath, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.JSON, cfg.Logging.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	dbPath := filepath.Join(dataDir, "sponsorscout.db")
	db, err := resume.OpenDB(dbPath)
	if err != nil {
		log.Fatal("open db", zap.Error(err))
	}
	defer db.Close()
	if err := resume.Migrate(db); err != nil {
		log.Fatal("migrate db", zap.Error(err))
	}
	resumes := resume.NewStore(db)

	// Outbound clients share one per-host limiter.
	limiter := webutil.NewHostLimiter(1.0, 2)

	directory := sponsors.NewRegistry(sponsors.Config{
		BaseURL:       cfg.Sponsors.BaseURL,
		MaxCandidates: cfg.Sponsors.MaxCandidates,
	}, limiter, log.Named("sponsors"))

	token, _ := secrets.GetCareersToken() // absent token is fine for public APIs
	search := careers.New(careers.Config{
		BaseURL: cfg.Careers.BaseURL,
		Token:   token,
	}, limiter, log.Named("careers"))

	collector := collect.New(search,
		cfg.Agent.WorkerWidth,
		time.Duration(cfg.Agent.PerFetchTimeoutSeconds)*time.Second,
		log.Named("collect"),
	)

	ag := agent.New(directory, collector, resumes, log.Named("agent"))
	ag.Budget = time.Duration(cfg.Agent.RunBudgetSeconds) * time.Second

	hub := events.NewHub()

	var syncEngine collab.SyncEngine
	if cfg.Collaborators.SyncBaseURL != "" {
		syncEngine = collab.NewHTTPSyncEngine(cfg.Collaborators.SyncBaseURL)
	}
	var optimizer collab.Optimizer
	if cfg.Collaborators.OptimizeBaseURL != "" {
		optimizer = collab.NewHTTPOptimizer(cfg.Collaborators.OptimizeBaseURL)
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Agent:       ag,
		Hub:         hub,
		Resumes:     resumes,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		Sync:        syncEngine,
		Optimizer:   optimizer,
		RateStore:   httpapi.NewSlidingWindow(),
		RateLimit:   cfg.RateLimit.Requests,
		RateWindow:  time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}

	srv := &http.Server{
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownTok, err := randomToken(16)
	if err != nil {
		log.Fatal("shutdown token", zap.Error(err))
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&shutdownTok, srv))

	srv.Handler = httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover(log),
		httpapi.AccessLog(log.Named("http")),
		httpapi.Cors,
	)

	log.Info("engine listening",
		zap.String("addr", "http://"+addr),
		zap.String("db", dbPath),
		zap.String("shutdown_token", shutdownTok),
	)
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal("serve", zap.Error(err))
	}
}
