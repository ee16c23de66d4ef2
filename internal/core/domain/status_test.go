package domain

import (
	"math/big"
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour).UnixNano()
	past := now.Add(-time.Hour).UnixNano()

	cases := []struct {
		name      string
		collected int64
		target    int64
		deadline  int64
		want      Status
	}{
		{"underfunded before deadline", 50, 100, future, StatusOpen},
		{"fully funded closes early", 100, 100, future, StatusClosed},
		{"overfunded closes early", 150, 100, future, StatusClosed},
		{"deadline passed", 50, 100, past, StatusClosed},
		{"deadline exactly now is past", 50, 100, now.UnixNano(), StatusClosed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DeriveStatus(big.NewInt(c.collected), big.NewInt(c.target), c.deadline, now)
			if got != c.want {
				t.Fatalf("DeriveStatus = %s, want %s", got, c.want)
			}
		})
	}
}
