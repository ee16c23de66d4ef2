package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	nano, err := ParseDeadline("2027-01-02T15:04", time.UTC)
	require.NoError(t, err)
	want := time.Date(2027, 1, 2, 15, 4, 0, 0, time.UTC).Unix() * int64(time.Second)
	require.Equal(t, want, nano)

	// seconds variant keeps second-level precision
	nano, err = ParseDeadline("2027-01-02T15:04:30", time.UTC)
	require.NoError(t, err)
	require.Equal(t, want+30*int64(time.Second), nano)

	// the location shifts the instant
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	shifted, err := ParseDeadline("2027-01-02T15:04", berlin)
	require.NoError(t, err)
	require.NotEqual(t, nano, shifted)
}

func TestParseDeadlineInvalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2027-01-02", "15:04", "02/01/2027 15:04"} {
		if _, err := ParseDeadline(in, time.UTC); err == nil {
			t.Fatalf("ParseDeadline(%q): expected error", in)
		}
	}
}

func TestValidateFuture(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, ValidateFuture(now.Add(time.Second).UnixNano(), now))

	for _, deadline := range []int64{now.UnixNano(), now.Add(-time.Second).UnixNano()} {
		err := ValidateFuture(deadline, now)
		if !errors.Is(err, ErrPastDeadline) {
			t.Fatalf("ValidateFuture(%d): want ErrPastDeadline, got %v", deadline, err)
		}
	}
}
