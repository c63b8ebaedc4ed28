package sponsors

import (
	"context"

	"sponsorscout-engine/internal/domain"
)

// Directory is the visa-sponsor registry boundary consumed by the agent.
// Treated as slow and unreliable; a failed Discover is fatal only to the
// discovery stage of a run.
type Directory interface {
	Discover(ctx context.Context, roleKeyword string) ([]domain.SponsorCandidate, error)
}
