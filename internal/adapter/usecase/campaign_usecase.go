package usecase

import (
	"log/slog"
	"time"

	"near-crowdfund/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase. It sequences the
// crowdfunding operations against the ledger session and the content pinner,
// both received as explicit dependencies. It holds no shared mutable state
// across operations: each invocation carries its own pending submission and
// nothing is cached between runs, so a listing issued after a successful
// pledge always observes that pledge's effect.
type CampaignUseCase struct {
	ledger  port.LedgerSession
	pinner  port.ContentPinner
	logger  *slog.Logger
	loc     *time.Location
	refresh *Refresh

	// now is sampled once per listing so every campaign in one snapshot is
	// judged against the same instant. Overridable in tests.
	now func() time.Time
}

// NewCampaignUseCase creates a use case with the provided collaborators.
// Deadlines entered by users are interpreted in loc.
func NewCampaignUseCase(ledger port.LedgerSession, pinner port.ContentPinner, logger *slog.Logger, loc *time.Location) *CampaignUseCase {
	return &CampaignUseCase{
		ledger:  ledger,
		pinner:  pinner,
		logger:  logger,
		loc:     loc,
		refresh: NewRefresh(),
		now:     time.Now,
	}
}

// Refresh exposes the signal that fires after every successful create or
// pledge, telling listeners to re-fetch the campaign listing.
func (u *CampaignUseCase) Refresh() *Refresh {
	return u.refresh
}
