package gate

import "context"

// Allowlist implements port.AccessGate over a static set of account ids
// from configuration. An empty allowlist disables the gate entirely and
// admits everyone, which is the development default; production deployments
// set GATE_ALLOWED_ACCOUNTS.
type Allowlist struct {
	accounts map[string]struct{}
}

// NewAllowlist builds the gate from the configured account ids.
func NewAllowlist(accounts []string) *Allowlist {
	set := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		if a != "" {
			set[a] = struct{}{}
		}
	}
	return &Allowlist{accounts: set}
}

// Allowed reports whether the account may reach the create-campaign path.
func (g *Allowlist) Allowed(_ context.Context, accountID string) bool {
	if len(g.accounts) == 0 {
		return true
	}
	_, ok := g.accounts[accountID]
	return ok
}
