package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"crowdfund/internal/core/domain"
)

// TxHandle wraps a sent transaction. Wait blocks until it is mined; there is
// no timeout of its own, the caller's context bounds it.
type TxHandle struct {
	tx      *types.Transaction
	backend bind.DeployBackend
}

// Hash returns the transaction hash.
func (h *TxHandle) Hash() common.Hash {
	return h.tx.Hash()
}

// Wait waits for the receipt. Status 0 receipts are reverts.
func (h *TxHandle) Wait(ctx context.Context) (*domain.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, h.backend, h.tx)
	if err != nil {
		return nil, fmt.Errorf("%w: waiting for %s: %v", domain.ErrChainCallFailed, h.tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: transaction %s reverted", domain.ErrChainCallFailed, receipt.TxHash.Hex())
	}
	r := &domain.Receipt{
		TxHash:  receipt.TxHash,
		GasUsed: receipt.GasUsed,
	}
	if receipt.BlockNumber != nil {
		r.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return r, nil
}
