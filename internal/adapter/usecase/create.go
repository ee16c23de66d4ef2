package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"near-crowdfund/internal/core/domain"
	"near-crowdfund/internal/core/port"
	"near-crowdfund/internal/metrics"
)

// createState enumerates the one-way states of a campaign-creation attempt.
// The transitions are Idle -> Validating -> Pinning -> Submitting ->
// Succeeded, with Failed reachable from any of the middle three. Making the
// machine explicit keeps every failure point and its blast radius
// enumerable: a failure in Pinning guarantees no ledger call was made, and a
// failure in Submitting guarantees at most one pinned-but-unreferenced
// image.
type createState int

const (
	stateIdle createState = iota
	stateValidating
	statePinning
	stateSubmitting
	stateSucceeded
	stateFailed
)

func (s createState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateValidating:
		return "validating"
	case statePinning:
		return "pinning"
	case stateSubmitting:
		return "submitting"
	case stateSucceeded:
		return "succeeded"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// pendingSubmission is the transient, attempt-local record of one create
// operation. It is never shared across attempts and is discarded when the
// attempt ends.
type pendingSubmission struct {
	attempt string
	state   createState

	target   *big.Int
	deadline int64
	address  string
}

func (p *pendingSubmission) to(next createState, logger *slog.Logger) {
	logger.Debug("create transition",
		slog.String("attempt", p.attempt),
		slog.String("from", p.state.String()),
		slog.String("to", next.String()))
	p.state = next
}

// CreateCampaign runs one campaign-creation attempt end to end. Validation
// and both codec conversions happen before any network call; pinning
// strictly precedes the signed submission and the two never overlap. There
// is no automatic retry: a failed attempt must be re-invoked by the user,
// which re-validates and re-pins from scratch.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (err error) {
	start := time.Now()
	p := &pendingSubmission{attempt: uuid.NewString(), state: stateIdle}
	defer func() {
		status := "success"
		if err != nil {
			status = "failure"
		}
		metrics.ObserveOperation("create_campaign", status, time.Since(start))
	}()

	p.to(stateValidating, u.logger)
	if len(req.Image) == 0 || req.Title == "" || req.Description == "" || req.Target == "" || req.Deadline == "" {
		return u.fail(p, port.ErrIncompleteForm)
	}
	p.target, err = domain.ToLedgerUnits(req.Target)
	if err != nil {
		return u.fail(p, err)
	}
	p.deadline, err = domain.ParseDeadline(req.Deadline, u.loc)
	if err != nil {
		return u.fail(p, fmt.Errorf("%w: %w", port.ErrIncompleteForm, err))
	}
	if err = domain.ValidateFuture(p.deadline, u.now()); err != nil {
		return u.fail(p, err)
	}

	p.to(statePinning, u.logger)
	p.address, err = u.pinner.PinFile(ctx, req.ImageName, req.Image)
	if err != nil {
		return u.fail(p, fmt.Errorf("%w: %w", port.ErrPinningFailed, err))
	}
	metrics.PinnedBytes.Add(float64(len(req.Image)))

	p.to(stateSubmitting, u.logger)
	tx := port.CreateTx{
		Image:       p.address,
		Title:       req.Title,
		Description: req.Description,
		Target:      p.target,
		Deadline:    p.deadline,
		Fee:         domain.CreationFee(),
	}
	if err = u.ledger.CreateCampaign(ctx, tx); err != nil {
		return u.fail(p, fmt.Errorf("%w: %w", port.ErrTransactionFailed, err))
	}

	p.to(stateSucceeded, u.logger)
	u.logger.Info("campaign created",
		slog.String("attempt", p.attempt),
		slog.String("image", p.address))
	u.refresh.Notify()
	return nil
}

func (u *CampaignUseCase) fail(p *pendingSubmission, cause error) error {
	u.logger.Warn("create failed",
		slog.String("attempt", p.attempt),
		slog.String("state", p.state.String()),
		slog.Any("error", cause))
	p.to(stateFailed, u.logger)
	return cause
}
