package port

import (
	"context"
	"math/big"
)

// LedgerSession is the outbound port to the blockchain hosting the
// crowdfunding contract. Reads are free view calls; writes are signed
// transactions. Implementations own their transport, timeouts and key
// custody; orchestrators receive a session as an explicit dependency and
// never reach into ambient wallet state.
type LedgerSession interface {
	// QueryCampaigns returns every campaign record keyed by id, as one
	// fresh full snapshot. There is no incremental fetch.
	QueryCampaigns(ctx context.Context) ([]RawCampaign, error)

	// QueryDonations returns the per-donor cumulative amounts of one
	// campaign, in ledger units.
	QueryDonations(ctx context.Context, campaignID uint64) ([]RawDonation, error)

	// CreateCampaign issues exactly one signed call to the contract's
	// campaign-creation entry point, attaching tx.Fee as the deposit.
	CreateCampaign(ctx context.Context, tx CreateTx) error

	// FundCampaign issues exactly one signed call to the funding entry
	// point, attaching deposit as the transferred value.
	FundCampaign(ctx context.Context, campaignID uint64, deposit *big.Int) error
}

// RawCampaign is one campaign record exactly as the contract serializes it:
// amounts are decimal integer strings (the contract renders u128 as text)
// and the deadline is a nano-epoch integer.
type RawCampaign struct {
	ID          uint64
	Creator     string
	Image       string
	Title       string
	Description string
	Target      string
	Collected   string
	Deadline    int64
}

// RawDonation is one donor's cumulative contribution in ledger units, as a
// decimal integer string.
type RawDonation struct {
	Donor  string
	Amount string
}

// CreateTx carries the fully converted arguments of one campaign-creation
// transaction.
type CreateTx struct {
	Image       string
	Title       string
	Description string
	Target      *big.Int
	Deadline    int64
	Fee         *big.Int
}
