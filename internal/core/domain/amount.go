package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// LedgerScale is the number of decimal digits the ledger's fixed-point
// representation carries: one human currency unit equals 10^24 ledger units.
const LedgerScale = 24

// ErrInvalidAmount reports a human amount that cannot be converted into
// ledger units: malformed, negative, or not a finite decimal.
var ErrInvalidAmount = errors.New("invalid amount")

var ledgerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(LedgerScale), nil)

// CreationFee returns the fixed fee attached to every campaign-creation
// transaction: 0.01 in human units, scaled to ledger units.
func CreationFee() *big.Int {
	fee, _ := ToLedgerUnits("0.01")
	return fee
}

// ToLedgerUnits converts a human decimal amount such as "1.5" into the
// ledger's fixed-point integer representation. Fractional digits beyond the
// ledger scale are rounded half-away-from-zero. The input must be a finite,
// non-negative decimal; anything else fails with ErrInvalidAmount.
func ToLedgerUnits(human string) (*big.Int, error) {
	s := strings.TrimSpace(human)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, human)
	}
	if !digitsOnly(intPart) || !digitsOnly(fracPart) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, human)
	}

	round := false
	if len(fracPart) > LedgerScale {
		round = fracPart[LedgerScale] >= '5'
		fracPart = fracPart[:LedgerScale]
	}
	fracPart += strings.Repeat("0", LedgerScale-len(fracPart))

	out, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, human)
	}
	if round {
		out.Add(out, big.NewInt(1))
	}
	return out, nil
}

// ToHumanUnits renders a ledger-unit integer back into a human decimal
// string, trimming trailing fractional zeros. It is the display-direction
// inverse of ToLedgerUnits.
func ToHumanUnits(ledger *big.Int) string {
	quo, rem := new(big.Int).QuoRem(ledger, ledgerUnit, new(big.Int))
	if rem.Sign() == 0 {
		return quo.String()
	}
	frac := rem.String()
	frac = strings.Repeat("0", LedgerScale-len(frac)) + frac
	frac = strings.TrimRight(frac, "0")
	return quo.String() + "." + frac
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
