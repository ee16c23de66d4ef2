package configs

import (
	"net/url"
	"time"
)

// Pinner holds configuration for the Pinata pinning service. Gateway is the
// dedicated gateway host used to build public content URLs from returned
// hashes. JWT is the API token; it has no default on purpose.
type Pinner struct {
	APIURL  url.URL       `env:"API_URL" envDefault:"https://api.pinata.cloud/pinning/pinFileToIPFS"`
	Gateway string        `env:"GATEWAY" envDefault:"gateway.pinata.cloud"`
	JWT     string        `env:"JWT"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
