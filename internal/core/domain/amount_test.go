package domain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToLedgerUnits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1000000000000000000000000"},
		{"2.5", "2500000000000000000000000"},
		{"0.01", "10000000000000000000000"},
		{"0.000000000000000000000001", "1"},
		// 25 fractional digits round half-away-from-zero
		{"0.0000000000000000000000015", "2"},
		{"0.0000000000000000000000014", "1"},
		{"100.000000000000000000000000", "100000000000000000000000000"},
	}
	for _, c := range cases {
		got, err := ToLedgerUnits(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, got.String(), c.in)
	}
}

func TestToLedgerUnitsInvalid(t *testing.T) {
	for _, in := range []string{"", ".", "-1", "1e5", "NaN", "Inf", "1,5", "1.2.3", "abc", "+1"} {
		_, err := ToLedgerUnits(in)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ToLedgerUnits(%q): want ErrInvalidAmount, got %v", in, err)
		}
	}
}

func TestToHumanUnits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1000000000000000000000000", "1"},
		{"2500000000000000000000000", "2.5"},
		{"10000000000000000000000", "0.01"},
		{"1", "0.000000000000000000000001"},
	}
	for _, c := range cases {
		n, _ := new(big.Int).SetString(c.in, 10)
		require.Equal(t, c.want, ToHumanUnits(n), c.in)
	}
}

// Round-trips must be drift-free in both directions: rendering a ledger
// amount and converting it back reproduces it exactly, and any representable
// decimal survives a full cycle.
func TestRoundTrip(t *testing.T) {
	ledgerValues := []string{"0", "1", "999", "1000000000000000000000000", "2500000000000000000000000", "123456789123456789123456789"}
	for _, v := range ledgerValues {
		n, _ := new(big.Int).SetString(v, 10)
		back, err := ToLedgerUnits(ToHumanUnits(n))
		require.NoError(t, err)
		if back.Cmp(n) != 0 {
			t.Fatalf("round trip drift: %s -> %s -> %s", v, ToHumanUnits(n), back)
		}
	}

	humanValues := []string{"0", "1", "2.5", "0.01", "13.37", "0.000000000000000000000001"}
	for _, v := range humanValues {
		n, err := ToLedgerUnits(v)
		require.NoError(t, err)
		require.Equal(t, v, ToHumanUnits(n), v)
	}
}

func TestCreationFee(t *testing.T) {
	require.Equal(t, "10000000000000000000000", CreationFee().String())
}
