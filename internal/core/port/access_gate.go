package port

import "context"

// AccessGate answers whether an account may reach the campaign-creation
// path. It gates the inbound route only; the orchestrator itself does not
// enforce it, and the ledger applies its own rules regardless.
type AccessGate interface {
	Allowed(ctx context.Context, accountID string) bool
}
