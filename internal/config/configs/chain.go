package configs

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain configures the JSON-RPC provider, the contract and the signing
// account. An empty RPCURL leaves the provider unavailable; an empty
// PrivateKey runs the service read-only (no connected wallet).
type Chain struct {
	RPCURL string `env:"RPC_URL"`

	// Contract is the deployed CrowdFunding address.
	Contract common.Address `env:"CONTRACT_ADDRESS" envDefault:"0x55bDaFa6b9E7762684305615828A49589f4D7Ee5"`

	PrivateKey string `env:"PRIVATE_KEY"`

	// ExpectedChainID is the network the contract lives on (Sepolia by
	// default). Zero disables the wrong-network check.
	ExpectedChainID int64 `env:"EXPECTED_CHAIN_ID" envDefault:"11155111"`

	// FetchConcurrency caps parallel campaign detail reads per Reader pass.
	FetchConcurrency int `env:"FETCH_CONCURRENCY" envDefault:"8"`

	// RefreshInterval makes the service re-read campaigns periodically.
	// Zero refreshes only after actions or on request.
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"30s"`

	// ActionTimeout bounds how long one submitted action may wait for
	// confirmation before the HTTP request gives up.
	ActionTimeout time.Duration `env:"ACTION_TIMEOUT" envDefault:"3m"`
}

// ExpectedChain returns ExpectedChainID as a big.Int, or nil when disabled.
func (c Chain) ExpectedChain() *big.Int {
	if c.ExpectedChainID <= 0 {
		return nil
	}
	return big.NewInt(c.ExpectedChainID)
}
