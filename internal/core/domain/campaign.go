package domain

import "math/big"

// Campaign mirrors one crowdfunding campaign record as the ledger stores it.
// Amounts are fixed-point integers in ledger units (see amount.go) and the
// deadline is nanoseconds since the Unix epoch, the ledger's native time
// representation. All fields except Collected are immutable after creation;
// Collected only grows, and only through successful pledge transactions.
type Campaign struct {
	ID             uint64
	Creator        string
	Title          string
	Description    string
	ImageReference string
	TargetAmount   *big.Int
	Collected      *big.Int
	Deadline       int64
}

// CampaignView is the display-ready projection of a Campaign. It is derived
// fresh on every read and never persisted: Status is a pure function of the
// campaign and the instant of projection, and the amounts are rendered back
// into human decimal form.
type CampaignView struct {
	ID             uint64 `json:"id"`
	Creator        string `json:"creator"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	ImageReference string `json:"image"`
	TargetAmount   string `json:"target"`
	Collected      string `json:"collected"`
	Deadline       int64  `json:"deadline"`
	Status         Status `json:"status"`
}

// Donation is one donor's cumulative contribution to a campaign, rendered
// in human units.
type Donation struct {
	Donor  string `json:"donor"`
	Amount string `json:"amount"`
}
