package port

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// Contract is the outbound port to the deployed CrowdFunding contract. Read
// methods are plain calls; write methods submit one transaction signed by
// signer and return a handle to await its confirmation. Implementations must
// be safe for concurrent use since the Reader fans detail reads out.
type Contract interface {
	GetAllCampaignIDs(ctx context.Context) ([]*big.Int, error)
	GetCampaignDetails(ctx context.Context, id *big.Int) (CampaignDetails, error)
	// GetContributors may be missing on older deployments; callers treat
	// its failure as an empty list.
	GetContributors(ctx context.Context, id *big.Int) ([]common.Address, error)
	GetContribution(ctx context.Context, id *big.Int, account common.Address) (*big.Int, error)

	CreateCampaign(ctx context.Context, signer Signer, description string, goal, duration *big.Int) (TxHandle, error)
	Contribute(ctx context.Context, signer Signer, id, value *big.Int) (TxHandle, error)
	Withdraw(ctx context.Context, signer Signer, id *big.Int) (TxHandle, error)
	Refund(ctx context.Context, signer Signer, id *big.Int) (TxHandle, error)
}

// CampaignDetails mirrors the getCampaignDetails return tuple.
type CampaignDetails struct {
	Owner        common.Address
	Description  string
	Goal         *big.Int
	Deadline     *big.Int
	AmountRaised *big.Int
	Withdrawn    bool
}

// TxHandle is a submitted transaction.
type TxHandle interface {
	Hash() common.Hash
	// Wait blocks until the transaction is mined. A reverted transaction is
	// reported as an error wrapping domain.ErrChainCallFailed. The returned
	// receipt carries only chain fields (hash, block, gas).
	Wait(ctx context.Context) (*domain.Receipt, error)
}

// Wallet is the provider capability: a node connection plus, optionally, an
// account able to sign.
type Wallet interface {
	// IsAvailable reports whether a provider is configured. It never
	// touches the network.
	IsAvailable() bool
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Signer(ctx context.Context) (Signer, error)
}

// Signer signs transactions for one account.
type Signer interface {
	Address() common.Address
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
}

// Invalidator receives the Dispatcher's invalidate-and-refetch signal.
type Invalidator interface {
	Invalidate()
}
