package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// ActionDispatcher submits one state-changing call per request and waits for
// it to be mined. It never retries and never edits snapshots; on success it
// signals the invalidator so the next Reader pass picks the change up. A
// sent transaction whose confirmation could not be awaited also signals it.
type ActionDispatcher struct {
	contract    port.Contract
	wallet      port.Wallet
	journal     port.ReceiptJournal
	invalidator port.Invalidator
	logger      *slog.Logger
	clock       func() time.Time
}

// NewActionDispatcher creates a dispatcher. journal may be nil.
func NewActionDispatcher(contract port.Contract, wallet port.Wallet, journal port.ReceiptJournal, invalidator port.Invalidator, logger *slog.Logger) *ActionDispatcher {
	return &ActionDispatcher{
		contract:    contract,
		wallet:      wallet,
		journal:     journal,
		invalidator: invalidator,
		logger:      logger,
		clock:       time.Now,
	}
}

type submitFunc func(ctx context.Context, signer port.Signer) (port.TxHandle, error)

// Submit validates req, sends it and blocks until it is confirmed or fails.
// Input is validated before any network call is made.
func (d *ActionDispatcher) Submit(ctx context.Context, wallet domain.WalletContext, req domain.ActionRequest) (*domain.Receipt, error) {
	if !d.wallet.IsAvailable() {
		return nil, domain.ErrProviderUnavailable
	}
	if !wallet.Connected {
		return nil, domain.ErrWalletNotConnected
	}
	send, value, err := d.prepare(req)
	if err != nil {
		return nil, err
	}

	signer, err := d.wallet.Signer(ctx)
	if err != nil {
		return nil, err
	}
	if signer.Address() != wallet.Address {
		return nil, fmt.Errorf("%w: %s cannot sign for this service", domain.ErrWalletNotConnected, wallet.Address.Hex())
	}

	tx, err := send(ctx, signer)
	if err != nil {
		return nil, chainError(err)
	}
	receipt, err := tx.Wait(ctx)
	if err != nil {
		// sent but unconfirmed here; it may still be mined
		d.invalidator.Invalidate()
		return nil, chainError(err)
	}

	receipt.ID = uuid.New()
	receipt.Action = req.Action
	receipt.Account = signer.Address()
	receipt.ValueWei = value
	receipt.CreatedAt = d.clock().UTC()
	if req.Action != domain.ActionCreate {
		receipt.CampaignID = new(big.Int).Set(req.CampaignID)
	}

	if d.journal != nil {
		if err = d.journal.Save(ctx, *receipt); err != nil {
			d.logger.Warn("receipt journal write failed",
				slog.String("tx", receipt.TxHash.Hex()),
				slog.Any("error", err))
		}
	}
	d.invalidator.Invalidate()
	return receipt, nil
}

// prepare validates input and returns the contract call to make along with
// the wei value it carries.
func (d *ActionDispatcher) prepare(req domain.ActionRequest) (submitFunc, *big.Int, error) {
	if !req.Action.Valid() {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrInvalidAction, req.Action)
	}
	if req.Action != domain.ActionCreate {
		if req.CampaignID == nil || req.CampaignID.Sign() < 0 {
			return nil, nil, domain.ErrInvalidCampaign
		}
	}
	id := req.CampaignID

	switch req.Action {
	case domain.ActionCreate:
		goal, err := domain.ParseAmount(req.Goal)
		if err != nil {
			return nil, nil, err
		}
		secs, err := domain.ParseDuration(req.Duration)
		if err != nil {
			return nil, nil, err
		}
		return func(ctx context.Context, s port.Signer) (port.TxHandle, error) {
			return d.contract.CreateCampaign(ctx, s, req.Description, goal, big.NewInt(secs))
		}, nil, nil
	case domain.ActionDonate:
		value, err := domain.ParseAmount(req.Amount)
		if err != nil {
			return nil, nil, err
		}
		return func(ctx context.Context, s port.Signer) (port.TxHandle, error) {
			return d.contract.Contribute(ctx, s, id, value)
		}, value, nil
	case domain.ActionWithdraw:
		return func(ctx context.Context, s port.Signer) (port.TxHandle, error) {
			return d.contract.Withdraw(ctx, s, id)
		}, nil, nil
	case domain.ActionRefund:
		return func(ctx context.Context, s port.Signer) (port.TxHandle, error) {
			return d.contract.Refund(ctx, s, id)
		}, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrInvalidAction, req.Action)
	}
}

// chainError makes sure provider failures surface as ErrChainCallFailed
// while keeping the provider's error in the chain.
func chainError(err error) error {
	if errors.Is(err, domain.ErrChainCallFailed) || errors.Is(err, domain.ErrProviderUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrChainCallFailed, err)
}
