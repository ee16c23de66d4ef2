package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"near-crowdfund/internal/core/domain"
	"near-crowdfund/internal/core/port"
	"near-crowdfund/internal/core/port/mocks"
)

func newTestUseCase(t *testing.T) (*CampaignUseCase, *mocks.MockLedgerSession, *mocks.MockContentPinner) {
	ledger := mocks.NewMockLedgerSession(t)
	pinner := mocks.NewMockContentPinner(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewCampaignUseCase(ledger, pinner, logger, time.UTC)
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, ledger, pinner
}

func validCreateReq() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Image:       []byte("fake image bytes"),
		ImageName:   "cover.png",
		Title:       "Community Well",
		Description: "Dig a well",
		Target:      "2.5",
		Deadline:    "2027-01-02T15:04",
	}
}

// A missing field must fail with IncompleteForm before any collaborator is
// touched. The mocks have no expectations, so any call would fail the test.
func TestCreateIncompleteForm(t *testing.T) {
	svc, _, _ := newTestUseCase(t)

	for _, mutate := range []func(*port.CreateCampaignReq){
		func(r *port.CreateCampaignReq) { r.Image = nil },
		func(r *port.CreateCampaignReq) { r.Title = "" },
		func(r *port.CreateCampaignReq) { r.Description = "" },
		func(r *port.CreateCampaignReq) { r.Target = "" },
		func(r *port.CreateCampaignReq) { r.Deadline = "" },
	} {
		req := validCreateReq()
		mutate(&req)
		err := svc.CreateCampaign(context.Background(), req)
		if !errors.Is(err, port.ErrIncompleteForm) {
			t.Fatalf("want ErrIncompleteForm, got %v", err)
		}
	}
}

// A deadline of "yesterday" must fail before any I/O.
func TestCreatePastDeadline(t *testing.T) {
	svc, _, _ := newTestUseCase(t)

	req := validCreateReq()
	req.Deadline = "2026-05-31T12:00"
	err := svc.CreateCampaign(context.Background(), req)
	if !errors.Is(err, domain.ErrPastDeadline) {
		t.Fatalf("want ErrPastDeadline, got %v", err)
	}
}

func TestCreateInvalidTarget(t *testing.T) {
	svc, _, _ := newTestUseCase(t)

	req := validCreateReq()
	req.Target = "lots"
	err := svc.CreateCampaign(context.Background(), req)
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
}

// A pinning failure must end the attempt without any ledger write: only the
// pinner mock carries an expectation.
func TestCreatePinningFailed(t *testing.T) {
	svc, _, pinner := newTestUseCase(t)

	pinner.EXPECT().
		PinFile(mock.Anything, "cover.png", mock.Anything).
		Return("", errors.New("gateway timeout"))

	err := svc.CreateCampaign(context.Background(), validCreateReq())
	if !errors.Is(err, port.ErrPinningFailed) {
		t.Fatalf("want ErrPinningFailed, got %v", err)
	}
}

func TestCreateSubmitFailed(t *testing.T) {
	svc, ledger, pinner := newTestUseCase(t)

	pinner.EXPECT().
		PinFile(mock.Anything, "cover.png", mock.Anything).
		Return("https://gw/ipfs/QmFake", nil)
	ledger.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("port.CreateTx")).
		Return(errors.New("rejected"))

	err := svc.CreateCampaign(context.Background(), validCreateReq())
	if !errors.Is(err, port.ErrTransactionFailed) {
		t.Fatalf("want ErrTransactionFailed, got %v", err)
	}
}

// The happy path pins first, then submits once with the converted target,
// the nano-epoch deadline, the pinned address and the fixed creation fee,
// and fires the refresh signal.
func TestCreateSuccess(t *testing.T) {
	svc, ledger, pinner := newTestUseCase(t)

	var submitted port.CreateTx
	pinner.EXPECT().
		PinFile(mock.Anything, "cover.png", []byte("fake image bytes")).
		Return("https://gw/ipfs/QmFake", nil)
	ledger.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("port.CreateTx")).
		Run(func(ctx context.Context, tx port.CreateTx) {
			submitted = tx
		}).
		Return(nil)

	refreshed, cancel := svc.Refresh().Subscribe()
	defer cancel()

	require.NoError(t, svc.CreateCampaign(context.Background(), validCreateReq()))

	require.Equal(t, "https://gw/ipfs/QmFake", submitted.Image)
	require.Equal(t, "Community Well", submitted.Title)
	require.Equal(t, "2500000000000000000000000", submitted.Target.String())
	require.Equal(t, "10000000000000000000000", submitted.Fee.String())
	wantDeadline := time.Date(2027, 1, 2, 15, 4, 0, 0, time.UTC).Unix() * int64(time.Second)
	require.Equal(t, wantDeadline, submitted.Deadline)

	select {
	case <-refreshed:
	default:
		t.Fatal("expected refresh signal after successful create")
	}
}
