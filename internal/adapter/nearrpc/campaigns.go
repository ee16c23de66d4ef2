package nearrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"near-crowdfund/internal/core/port"
)

// campaignView mirrors the contract's CampaignView serialization. Amounts
// are decimal strings because the contract renders u128 as text; the
// deadline is a nano-epoch u64.
type campaignView struct {
	Creator         string `json:"creator"`
	Image           string `json:"image"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Target          string `json:"target"`
	Deadline        int64  `json:"deadline"`
	AmountCollected string `json:"amount_collected"`
}

// campaignPair decodes the contract's (id, view) tuples, which serialize as
// two-element JSON arrays.
type campaignPair struct {
	ID   uint64
	View campaignView
}

func (p *campaignPair) UnmarshalJSON(b []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[0], &p.ID); err != nil {
		return fmt.Errorf("campaign id: %w", err)
	}
	return json.Unmarshal(tuple[1], &p.View)
}

// QueryCampaigns returns one fresh snapshot of every campaign on the
// contract.
func (s *Session) QueryCampaigns(ctx context.Context) ([]port.RawCampaign, error) {
	var pairs []campaignPair
	if err := s.viewFunction(ctx, "get_campaigns", struct{}{}, &pairs); err != nil {
		return nil, err
	}
	out := make([]port.RawCampaign, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, port.RawCampaign{
			ID:          p.ID,
			Creator:     p.View.Creator,
			Image:       p.View.Image,
			Title:       p.View.Title,
			Description: p.View.Description,
			Target:      normalizeAmount(p.View.Target),
			Collected:   normalizeAmount(p.View.AmountCollected),
			Deadline:    p.View.Deadline,
		})
	}
	return out, nil
}

// QueryDonations returns the per-donor cumulative amounts of one campaign.
func (s *Session) QueryDonations(ctx context.Context, campaignID uint64) ([]port.RawDonation, error) {
	args := struct {
		CampaignID uint64 `json:"campaign_id"`
	}{CampaignID: campaignID}

	var pairs [][2]string
	if err := s.viewFunction(ctx, "get_donations", args, &pairs); err != nil {
		return nil, err
	}
	out := make([]port.RawDonation, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, port.RawDonation{
			Donor:  p[0],
			Amount: normalizeAmount(p[1]),
		})
	}
	return out, nil
}

// CreateCampaign issues the signed create_campaign call with the creation
// fee attached. The scaled target travels as a decimal string, matching the
// contract's argument encoding.
func (s *Session) CreateCampaign(ctx context.Context, tx port.CreateTx) error {
	args := struct {
		Image       string `json:"image"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Target      string `json:"target"`
		Deadline    int64  `json:"deadline"`
	}{
		Image:       tx.Image,
		Title:       tx.Title,
		Description: tx.Description,
		Target:      tx.Target.String(),
		Deadline:    tx.Deadline,
	}
	return s.signedCall(ctx, "create_campaign", args, tx.Fee.String())
}

// FundCampaign issues the signed donate call with the pledged amount
// attached as the deposit.
func (s *Session) FundCampaign(ctx context.Context, campaignID uint64, deposit *big.Int) error {
	args := struct {
		CampaignID uint64 `json:"campaign_id"`
	}{CampaignID: campaignID}
	return s.signedCall(ctx, "donate", args, deposit.String())
}

// normalizeAmount strips a unit suffix such as "yoctoNEAR" that some
// contract builds append to rendered amounts, leaving the bare integer
// string.
func normalizeAmount(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
