package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"near-crowdfund/internal/core/domain"
	"near-crowdfund/internal/core/port"
)

// Non-positive and malformed amounts fail before any network call: the
// ledger mock carries no expectation.
func TestPledgeInvalidAmount(t *testing.T) {
	svc, _, _ := newTestUseCase(t)

	for _, amount := range []string{"0", "0.0", "-1", "", "lots"} {
		err := svc.Pledge(context.Background(), 7, amount)
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("Pledge(%q): want ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestPledgeSuccess(t *testing.T) {
	svc, ledger, _ := newTestUseCase(t)

	var deposited *big.Int
	ledger.EXPECT().
		FundCampaign(mock.Anything, uint64(7), mock.AnythingOfType("*big.Int")).
		Run(func(ctx context.Context, campaignID uint64, deposit *big.Int) {
			deposited = deposit
		}).
		Return(nil)

	refreshed, cancel := svc.Refresh().Subscribe()
	defer cancel()

	require.NoError(t, svc.Pledge(context.Background(), 7, "1.5"))
	require.Equal(t, "1500000000000000000000000", deposited.String())

	select {
	case <-refreshed:
	default:
		t.Fatal("expected refresh signal after successful pledge")
	}
}

func TestPledgeTransactionFailed(t *testing.T) {
	svc, ledger, _ := newTestUseCase(t)

	ledger.EXPECT().
		FundCampaign(mock.Anything, uint64(7), mock.AnythingOfType("*big.Int")).
		Return(errors.New("campaign has ended"))

	err := svc.Pledge(context.Background(), 7, "1")
	if !errors.Is(err, port.ErrTransactionFailed) {
		t.Fatalf("want ErrTransactionFailed, got %v", err)
	}
}
