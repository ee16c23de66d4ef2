package domain

import (
	"math/big"
	"time"
)

// Status is a campaign's two-valued lifecycle state. It is never stored on
// the ledger: it is always derived at the moment of projection, so two
// clients reading the same campaign at different instants may legitimately
// disagree.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// DeriveStatus computes the lifecycle status of a campaign at the instant
// now. A campaign is open iff its deadline is strictly in the future and it
// is not yet fully funded; everything else is closed, including exact
// equality on either boundary (a fully funded campaign closes before its
// deadline, and a deadline equal to now counts as already past).
//
// This function is the single source of truth for status; no other component
// computes it independently.
func DeriveStatus(collected, target *big.Int, deadline int64, now time.Time) Status {
	if deadline > now.UnixNano() && collected.Cmp(target) < 0 {
		return StatusOpen
	}
	return StatusClosed
}
