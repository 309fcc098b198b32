package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Wallet implements port.Wallet with a node connection and an optional
// private key. Without a backend the provider is unavailable; without a key
// no account is connected.
type Wallet struct {
	backend Backend
	key     *ecdsa.PrivateKey

	mu      sync.Mutex
	chainID *big.Int
}

// NewWallet builds a wallet. privateKeyHex may be empty or carry a 0x prefix.
func NewWallet(backend Backend, privateKeyHex string) (*Wallet, error) {
	w := &Wallet{backend: backend}
	privateKeyHex = strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	if privateKeyHex != "" {
		key, err := crypto.HexToECDSA(privateKeyHex)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		w.key = key
	}
	return w, nil
}

// IsAvailable reports whether a backend is configured.
func (w *Wallet) IsAvailable() bool {
	return w.backend != nil
}

// RequestAccounts returns the signing account, if any.
func (w *Wallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if !w.IsAvailable() {
		return nil, domain.ErrProviderUnavailable
	}
	if w.key == nil {
		return []common.Address{}, nil
	}
	return []common.Address{crypto.PubkeyToAddress(w.key.PublicKey)}, nil
}

// ChainID asks the node once and caches the answer.
func (w *Wallet) ChainID(ctx context.Context) (*big.Int, error) {
	if !w.IsAvailable() {
		return nil, domain.ErrProviderUnavailable
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.chainID != nil {
		return new(big.Int).Set(w.chainID), nil
	}
	id, err := w.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	w.chainID = id
	return new(big.Int).Set(id), nil
}

// Signer returns a signer for the configured key.
func (w *Wallet) Signer(ctx context.Context) (port.Signer, error) {
	if !w.IsAvailable() {
		return nil, domain.ErrProviderUnavailable
	}
	if w.key == nil {
		return nil, domain.ErrWalletNotConnected
	}
	chainID, err := w.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	return &KeyedSigner{key: w.key, chainID: chainID}, nil
}

// KeyedSigner signs with an in-memory key.
type KeyedSigner struct {
	key     *ecdsa.PrivateKey
	chainID *big.Int
}

// Address returns the signing account.
func (s *KeyedSigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

// Transactor returns fresh transact options bound to ctx.
func (s *KeyedSigner) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
