package gate

import (
	"context"
	"testing"
)

func TestAllowlist(t *testing.T) {
	g := NewAllowlist([]string{"alice.near", "bob.near", ""})

	if !g.Allowed(context.Background(), "alice.near") {
		t.Fatal("listed account should be allowed")
	}
	if g.Allowed(context.Background(), "mallory.near") {
		t.Fatal("unlisted account should be denied")
	}
	if g.Allowed(context.Background(), "") {
		t.Fatal("empty account should be denied when a list is set")
	}
}

func TestAllowlistEmptyAdmitsEveryone(t *testing.T) {
	g := NewAllowlist(nil)
	if !g.Allowed(context.Background(), "anyone.near") {
		t.Fatal("empty allowlist should disable the gate")
	}
}
