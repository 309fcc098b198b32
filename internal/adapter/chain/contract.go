package chain

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// CrowdFundingABI is the interface description of the deployed contract.
//
// Function selectors:
//
//	getAllCampaignIds()            view
//	getCampaignDetails(uint256)    view
//	getContributors(uint256)       view
//	getContribution(uint256,addr)  view
//	createCampaign(string,u256,u256)
//	contribute(uint256)            payable
//	withdraw(uint256)
//	refund(uint256)
//
//go:embed crowdfunding.abi.json
var CrowdFundingABI []byte

// Backend is what the adapter needs from a node connection. *ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Contract implements port.Contract on top of a go-ethereum BoundContract.
type Contract struct {
	address common.Address
	abi     abi.ABI
	backend Backend
	bound   *bind.BoundContract
}

// ParseABI parses the embedded CrowdFunding ABI.
func ParseABI() (abi.ABI, error) {
	return abi.JSON(bytes.NewReader(CrowdFundingABI))
}

// NewContract binds the CrowdFunding ABI at address. A nil backend yields a
// contract whose every call fails with domain.ErrProviderUnavailable.
func NewContract(address common.Address, backend Backend) (*Contract, error) {
	parsed, err := ParseABI()
	if err != nil {
		return nil, fmt.Errorf("parse crowdfunding abi: %w", err)
	}
	c := &Contract{address: address, abi: parsed, backend: backend}
	if backend != nil {
		c.bound = bind.NewBoundContract(address, parsed, backend, backend, backend)
	}
	return c, nil
}

// Address returns the bound contract address.
func (c *Contract) Address() common.Address {
	return c.address
}

func (c *Contract) call(ctx context.Context, method string, want int, args ...interface{}) ([]interface{}, error) {
	if c.bound == nil {
		return nil, domain.ErrProviderUnavailable
	}
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if len(out) != want {
		return nil, fmt.Errorf("%s: expected %d return values, got %d", method, want, len(out))
	}
	return out, nil
}

// GetAllCampaignIDs calls getAllCampaignIds.
func (c *Contract) GetAllCampaignIDs(ctx context.Context) ([]*big.Int, error) {
	out, err := c.call(ctx, "getAllCampaignIds", 1)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]*big.Int)).(*[]*big.Int), nil
}

// GetCampaignDetails calls getCampaignDetails and unpacks the 6-tuple.
func (c *Contract) GetCampaignDetails(ctx context.Context, id *big.Int) (port.CampaignDetails, error) {
	out, err := c.call(ctx, "getCampaignDetails", 6, id)
	if err != nil {
		return port.CampaignDetails{}, err
	}
	return port.CampaignDetails{
		Owner:        *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		Description:  *abi.ConvertType(out[1], new(string)).(*string),
		Goal:         *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
		Deadline:     *abi.ConvertType(out[3], new(*big.Int)).(**big.Int),
		AmountRaised: *abi.ConvertType(out[4], new(*big.Int)).(**big.Int),
		Withdrawn:    *abi.ConvertType(out[5], new(bool)).(*bool),
	}, nil
}

// GetContributors calls getContributors.
func (c *Contract) GetContributors(ctx context.Context, id *big.Int) ([]common.Address, error) {
	out, err := c.call(ctx, "getContributors", 1, id)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), nil
}

// GetContribution calls getContribution for account.
func (c *Contract) GetContribution(ctx context.Context, id *big.Int, account common.Address) (*big.Int, error) {
	out, err := c.call(ctx, "getContribution", 1, id, account)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// CreateCampaign submits createCampaign.
func (c *Contract) CreateCampaign(ctx context.Context, signer port.Signer, description string, goal, duration *big.Int) (port.TxHandle, error) {
	return c.transact(ctx, signer, nil, "createCampaign", description, goal, duration)
}

// Contribute submits contribute with value attached.
func (c *Contract) Contribute(ctx context.Context, signer port.Signer, id, value *big.Int) (port.TxHandle, error) {
	return c.transact(ctx, signer, value, "contribute", id)
}

// Withdraw submits withdraw.
func (c *Contract) Withdraw(ctx context.Context, signer port.Signer, id *big.Int) (port.TxHandle, error) {
	return c.transact(ctx, signer, nil, "withdraw", id)
}

// Refund submits refund.
func (c *Contract) Refund(ctx context.Context, signer port.Signer, id *big.Int) (port.TxHandle, error) {
	return c.transact(ctx, signer, nil, "refund", id)
}

func (c *Contract) transact(ctx context.Context, signer port.Signer, value *big.Int, method string, args ...interface{}) (port.TxHandle, error) {
	if c.bound == nil {
		return nil, domain.ErrProviderUnavailable
	}
	opts, err := signer.Transactor(ctx)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	if value != nil {
		opts.Value = value
	}
	tx, err := c.bound.Transact(opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrChainCallFailed, method, err)
	}
	return &TxHandle{tx: tx, backend: c.backend}, nil
}
