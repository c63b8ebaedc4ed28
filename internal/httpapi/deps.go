package httpapi

import (
	"sync/atomic"
	"time"

	"sponsorscout-engine/internal/agent"
	"sponsorscout-engine/internal/collab"
	"sponsorscout-engine/internal/events"
	"sponsorscout-engine/internal/resume"
)

type Deps struct {
	Agent *agent.Agent
	Hub   *events.Hub

	Resumes *resume.Store

	// Atomic config snapshot plus persistence location.
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string

	Sync      collab.SyncEngine
	Optimizer collab.Optimizer

	// Rate limiting for run starts.
	RateStore  CounterStore
	RateLimit  int
	RateWindow time.Duration
}
