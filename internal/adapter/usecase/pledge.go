package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"near-crowdfund/internal/core/domain"
	"near-crowdfund/internal/core/port"
	"near-crowdfund/internal/metrics"
)

// Pledge converts the human amount and issues exactly one signed funding
// call with it attached as the transferred value. The amount must be
// strictly positive; validation happens before any network call. Whether the
// campaign still accepts pledges is the ledger's decision alone, so no
// client-side openness check is made here.
func (u *CampaignUseCase) Pledge(ctx context.Context, campaignID uint64, humanAmount string) (err error) {
	start := time.Now()
	attempt := uuid.NewString()
	defer func() {
		status := "success"
		if err != nil {
			status = "failure"
		}
		metrics.ObserveOperation("pledge", status, time.Since(start))
	}()

	amount, err := domain.ToLedgerUnits(humanAmount)
	if err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: must be positive", domain.ErrInvalidAmount)
	}

	if err = u.ledger.FundCampaign(ctx, campaignID, amount); err != nil {
		u.logger.Warn("pledge failed",
			slog.String("attempt", attempt),
			slog.Uint64("campaign", campaignID),
			slog.Any("error", err))
		return fmt.Errorf("%w: %w", port.ErrTransactionFailed, err)
	}

	u.logger.Info("pledge submitted",
		slog.String("attempt", attempt),
		slog.Uint64("campaign", campaignID))
	u.refresh.Notify()
	return nil
}
