package configs

// Gate configures the access gate guarding the create-campaign route.
// AllowedAccounts is a comma-separated list of NEAR account ids; when empty
// the gate admits everyone.
type Gate struct {
	AllowedAccounts []string `env:"ALLOWED_ACCOUNTS" envSeparator:","`
}
