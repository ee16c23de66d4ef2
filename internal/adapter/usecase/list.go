package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"near-crowdfund/internal/core/domain"
	"near-crowdfund/internal/core/port"
	"near-crowdfund/internal/metrics"
)

// ListCampaigns fetches the full campaign set in one view call and maps
// every record into a display-ready projection. The current instant is
// sampled once, so all statuses in one listing agree on "now". Each call is
// a fresh full snapshot; nothing is cached between calls.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) (views []domain.CampaignView, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failure"
		}
		metrics.ObserveOperation("list_campaigns", status, time.Since(start))
	}()

	raw, err := u.ledger.QueryCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrQueryFailed, err)
	}

	now := u.now()
	views = make([]domain.CampaignView, 0, len(raw))
	for _, rc := range raw {
		target, err := parseLedgerInt(rc.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: campaign %d: %w", port.ErrQueryFailed, rc.ID, err)
		}
		collected, err := parseLedgerInt(rc.Collected)
		if err != nil {
			return nil, fmt.Errorf("%w: campaign %d: %w", port.ErrQueryFailed, rc.ID, err)
		}
		views = append(views, domain.CampaignView{
			ID:             rc.ID,
			Creator:        rc.Creator,
			Title:          rc.Title,
			Description:    rc.Description,
			ImageReference: rc.Image,
			TargetAmount:   domain.ToHumanUnits(target),
			Collected:      domain.ToHumanUnits(collected),
			Deadline:       rc.Deadline,
			Status:         domain.DeriveStatus(collected, target, rc.Deadline, now),
		})
	}
	return views, nil
}

// ListDonations returns the per-donor contributions of one campaign with
// amounts rendered into human units.
func (u *CampaignUseCase) ListDonations(ctx context.Context, campaignID uint64) (donations []domain.Donation, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failure"
		}
		metrics.ObserveOperation("list_donations", status, time.Since(start))
	}()

	raw, err := u.ledger.QueryDonations(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrQueryFailed, err)
	}

	donations = make([]domain.Donation, 0, len(raw))
	for _, rd := range raw {
		amount, err := parseLedgerInt(rd.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: campaign %d: %w", port.ErrQueryFailed, campaignID, err)
		}
		donations = append(donations, domain.Donation{
			Donor:  rd.Donor,
			Amount: domain.ToHumanUnits(amount),
		})
	}
	return donations, nil
}

func parseLedgerInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("malformed ledger amount %q", s)
	}
	return n, nil
}
