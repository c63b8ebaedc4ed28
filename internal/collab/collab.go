// Package collab holds the collaborator boundaries that share the agent's
// request surface without being part of the pipeline core: the long-term
// memory sync engine and the resume optimizer.
package collab

import "context"

// SyncError is one failed operation inside a sync pass.
type SyncError struct {
	Error string `json:"error"`
}

// SyncReport summarizes one syncAll pass. Partial failure is a report
// state, not a transport error.
type SyncReport struct {
	Success             bool        `json:"success"`
	OperationsCompleted int         `json:"operationsCompleted"`
	OperationsFailed    int         `json:"operationsFailed"`
	DurationMillis      int64       `json:"duration"`
	Errors              []SyncError `json:"errors,omitempty"`
}

// SyncEngine pushes local memory state to the remote store.
type SyncEngine interface {
	SyncAll(ctx context.Context, userID string) (SyncReport, error)
}

// OptimizeRequest asks the optimizer to tailor a LaTeX resume to one
// posting, guided by the scorer's gaps.
type OptimizeRequest struct {
	Latex        string   `json:"latex"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Requirements []string `json:"requirements"`
	Gaps         []string `json:"gaps"`
	ContextHint  string   `json:"contextHint,omitempty"`
}

type OptimizeResponse struct {
	TailoredLatex   string   `json:"tailoredLatex"`
	Changes         []string `json:"changes"`
	ConfidenceScore float64  `json:"confidenceScore"`
	Summary         string   `json:"summary"`
}

// Optimizer rewrites resume text. Out of core scope; the engine only
// proxies to it.
type Optimizer interface {
	OptimizeResume(ctx context.Context, req OptimizeRequest) (OptimizeResponse, error)
}
