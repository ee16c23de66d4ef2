package configs

// HTTP defines configuration for the HTTP server. The Port specifies which
// port the server will bind to. WriteRPS and WriteBurst shape the rate
// limiter shared by the write endpoints (create and pledge); every signed
// ledger call costs real fees, so the defaults are deliberately low.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	WriteRPS   float64 `env:"WRITE_RPS" envDefault:"2"`
	WriteBurst int     `env:"WRITE_BURST" envDefault:"5"`
}
