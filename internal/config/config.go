package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Logging struct {
		JSON  bool `yaml:"json"`
		Debug bool `yaml:"debug"`
	} `yaml:"logging"`

	Agent struct {
		RunBudgetSeconds       int `yaml:"run_budget_seconds"`
		WorkerWidth            int `yaml:"worker_width"`
		PerFetchTimeoutSeconds int `yaml:"per_fetch_timeout_seconds"`
	} `yaml:"agent"`

	Sponsors struct {
		BaseURL       string `yaml:"base_url"`
		MaxCandidates int    `yaml:"max_candidates"`
	} `yaml:"sponsors"`

	Careers struct {
		BaseURL    string `yaml:"base_url"`
		BatchLimit int    `yaml:"batch_limit"`
	} `yaml:"careers"`

	RateLimit struct {
		Requests      int `yaml:"requests"`
		WindowSeconds int `yaml:"window_seconds"`
	} `yaml:"rate_limit"`

	Collaborators struct {
		SyncBaseURL     string `yaml:"sync_base_url"`
		OptimizeBaseURL string `yaml:"optimize_base_url"`
	} `yaml:"collaborators"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
