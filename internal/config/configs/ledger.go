package configs

import (
	"net/url"
	"time"
)

// Ledger holds configuration for reaching the NEAR network. RPCURL is the
// node's JSON-RPC endpoint used for read-only view calls. SignerURL is the
// wallet signer bridge that holds the key material and submits signed
// function calls on our behalf. ContractID names the crowdfunding contract
// account.
type Ledger struct {
	RPCURL     url.URL       `env:"RPC_URL" envDefault:"https://rpc.testnet.near.org"`
	SignerURL  url.URL       `env:"SIGNER_URL" envDefault:"http://localhost:3030/sign"`
	ContractID string        `env:"CONTRACT_ID" envDefault:"crowdfund.testnet"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
