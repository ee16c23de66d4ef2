package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrPastDeadline reports a deadline that is not strictly in the future.
// The check is advisory feedback for the user; the ledger remains the final
// authority and may independently reject a stale deadline.
var ErrPastDeadline = errors.New("deadline is not in the future")

// Deadline input layouts, in the order they are tried. The first matches the
// browser datetime-local control; the second its seconds-bearing variant.
var deadlineLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
}

// ParseDeadline interprets a human-entered local date/time in loc and
// converts it to nanoseconds since the Unix epoch. The input format carries
// second-level precision at most, so the result is always a whole number of
// seconds in nanoseconds.
func ParseDeadline(local string, loc *time.Location) (int64, error) {
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, local, loc); err == nil {
			return t.Unix() * int64(time.Second), nil
		}
	}
	return 0, fmt.Errorf("invalid deadline %q", local)
}

// ValidateFuture fails with ErrPastDeadline unless the given nano-epoch
// instant is strictly after now. A deadline equal to now counts as past.
func ValidateFuture(nanoEpoch int64, now time.Time) error {
	if nanoEpoch <= now.UnixNano() {
		return ErrPastDeadline
	}
	return nil
}
