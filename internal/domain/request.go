package domain

import (
	"errors"
	"fmt"
)

const (
	DefaultMaxJobs        = 5
	MaxJobsCeiling        = 20
	DefaultMatchThreshold = 60
)

// SearchRequest describes one agent run. It is immutable for the run's
// lifetime; handlers validate and normalize it before the pipeline starts.
type SearchRequest struct {
	JobTitle       string `json:"jobTitle"`
	Location       string `json:"location,omitempty"`
	MaxJobs        int    `json:"maxJobs"`
	MatchThreshold int    `json:"matchThreshold"`
}

var ErrMissingJobTitle = errors.New("jobTitle is required")

func (r SearchRequest) Validate() error {
	if r.JobTitle == "" {
		return ErrMissingJobTitle
	}
	if r.MaxJobs <= 0 {
		return fmt.Errorf("maxJobs must be > 0, got %d", r.MaxJobs)
	}
	if r.MatchThreshold < 0 || r.MatchThreshold > 100 {
		return fmt.Errorf("matchThreshold must be within 0..100, got %d", r.MatchThreshold)
	}
	return nil
}
