package port

import (
	"context"

	"near-crowdfund/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the gateway.
// This interface is the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// CreateCampaign runs the full campaign-creation sequence: validate the
	// form, pin the image to the content network, then submit one signed
	// creation transaction carrying the content address and the converted
	// target and deadline. The steps are strictly ordered pin-before-submit
	// and the outcome is all-or-nothing from the user's point of view.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) error

	// Pledge submits one signed funding transaction against an existing
	// campaign, attaching the converted amount as the transferred value.
	// The ledger is authoritative about whether the campaign still accepts
	// pledges; no client-side openness check is made.
	Pledge(ctx context.Context, campaignID uint64, humanAmount string) error

	// ListCampaigns fetches the full campaign set from the ledger and maps
	// every record into a display-ready view. All statuses in one listing
	// are derived against a single sampled instant.
	ListCampaigns(ctx context.Context) ([]domain.CampaignView, error)

	// ListDonations returns the per-donor contributions of one campaign in
	// human units.
	ListDonations(ctx context.Context, campaignID uint64) ([]domain.Donation, error)
}

// CreateCampaignReq carries the user's campaign-creation form. Image holds
// the raw binary payload to pin; Target and Deadline are the human-entered
// decimal amount and local date/time, converted by the use case.
type CreateCampaignReq struct {
	Image       []byte
	ImageName   string
	Title       string
	Description string
	Target      string
	Deadline    string
}
