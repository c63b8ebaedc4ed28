package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize fills defaults for optional knobs. Called after Load and after
// every PUT /config so the rest of the engine never sees zero values.
func Normalize(cfg *Config) {
	if cfg.App.Port <= 0 {
		cfg.App.Port = 38471
	}
	if cfg.Agent.RunBudgetSeconds <= 0 {
		cfg.Agent.RunBudgetSeconds = 120
	}
	if cfg.Agent.WorkerWidth <= 0 {
		cfg.Agent.WorkerWidth = 4
	}
	if cfg.Agent.PerFetchTimeoutSeconds <= 0 {
		cfg.Agent.PerFetchTimeoutSeconds = 15
	}
	if cfg.Sponsors.MaxCandidates <= 0 || cfg.Sponsors.MaxCandidates > 20 {
		cfg.Sponsors.MaxCandidates = 20
	}
	if cfg.Careers.BatchLimit <= 0 || cfg.Careers.BatchLimit > 10 {
		cfg.Careers.BatchLimit = 10
	}
	if cfg.RateLimit.Requests <= 0 {
		cfg.RateLimit.Requests = 10
	}
	if cfg.RateLimit.WindowSeconds <= 0 {
		cfg.RateLimit.WindowSeconds = 60
	}
}

// Validate rejects configs the engine cannot run with.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Sponsors.BaseURL) == "" {
		return fmt.Errorf("sponsors.base_url is required")
	}
	if strings.TrimSpace(cfg.Careers.BaseURL) == "" {
		return fmt.Errorf("careers.base_url is required")
	}
	for name, raw := range map[string]string{
		"sponsors.base_url": cfg.Sponsors.BaseURL,
		"careers.base_url":  cfg.Careers.BaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s is not a valid URL: %q", name, raw)
		}
	}
	if cfg.Agent.WorkerWidth > 16 {
		return fmt.Errorf("agent.worker_width %d is unreasonable (max 16)", cfg.Agent.WorkerWidth)
	}
	return nil
}
