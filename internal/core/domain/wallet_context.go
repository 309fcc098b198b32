package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// WalletContext describes the connected wallet. It is built once per request
// and passed explicitly to the Reader, Dispatcher and Evaluator instead of
// being looked up from global state.
type WalletContext struct {
	Address   common.Address
	ChainID   *big.Int
	Connected bool

	// WrongNetwork is set when ChainID differs from the configured network.
	WrongNetwork bool
}

// WithAccount returns a copy of w that gates actions for account instead of
// the signer's address. The copy is never able to sign.
func (w WalletContext) WithAccount(account common.Address) WalletContext {
	w.Address = account
	w.Connected = account != (common.Address{})
	return w
}
