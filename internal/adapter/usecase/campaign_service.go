package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const (
	defaultReceiptLimit = 50
	maxReceiptLimit     = 500
	lookupConcurrency   = 8
)

// CampaignService implements port.CampaignUseCase. It ties the wallet,
// the synchronizer's snapshot, the eligibility rules and the dispatcher
// together.
type CampaignService struct {
	wallet     port.Wallet
	contract   port.Contract
	sync       *Synchronizer
	dispatcher *ActionDispatcher
	journal    port.ReceiptJournal
	logger     *slog.Logger

	expectedChainID *big.Int
}

// NewCampaignService creates the service. expectedChainID may be nil to skip
// the network check; journal may be nil.
func NewCampaignService(
	wallet port.Wallet,
	contract port.Contract,
	sync *Synchronizer,
	dispatcher *ActionDispatcher,
	journal port.ReceiptJournal,
	expectedChainID *big.Int,
	logger *slog.Logger,
) *CampaignService {
	return &CampaignService{
		wallet:          wallet,
		contract:        contract,
		sync:            sync,
		dispatcher:      dispatcher,
		journal:         journal,
		expectedChainID: expectedChainID,
		logger:          logger,
	}
}

// ConnectWallet asks the provider for its accounts and network.
func (s *CampaignService) ConnectWallet(ctx context.Context) (domain.WalletContext, error) {
	if !s.wallet.IsAvailable() {
		return domain.WalletContext{}, domain.ErrProviderUnavailable
	}
	accounts, err := s.wallet.RequestAccounts(ctx)
	if err != nil {
		return domain.WalletContext{}, err
	}
	chainID, err := s.wallet.ChainID(ctx)
	if err != nil {
		return domain.WalletContext{}, err
	}
	wc := domain.WalletContext{ChainID: chainID}
	if len(accounts) > 0 {
		wc.Address = accounts[0]
		wc.Connected = true
	}
	if s.expectedChainID != nil && chainID != nil {
		wc.WrongNetwork = chainID.Cmp(s.expectedChainID) != 0
	}
	return wc, nil
}

// Board renders the latest snapshot for wallet at now. Lists are newest
// first. The caller's contribution is only looked up for ended campaigns
// that missed their goal, the only place refund can apply.
func (s *CampaignService) Board(ctx context.Context, wallet domain.WalletContext, now time.Time) (*port.Board, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	active, ended := domain.Partition(snap.Records, now)
	slices.Reverse(active)
	slices.Reverse(ended)

	board := &port.Board{
		Active:    make([]port.CampaignView, len(active)),
		Ended:     make([]port.CampaignView, len(ended)),
		FetchedAt: snap.FetchedAt,
		Now:       now,
	}
	for i, rec := range active {
		board.Active[i] = port.CampaignView{Record: rec, Eligibility: domain.Evaluate(rec, now, nil)}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)
	for i, rec := range ended {
		board.Ended[i] = port.CampaignView{Record: rec}
		g.Go(func() error {
			var contribution *big.Int
			if wallet.Connected && now.After(rec.DeadlineTime()) && !rec.GoalReached() {
				contribution = s.contribution(gctx, rec.ID, wallet.Address)
			}
			board.Ended[i].Contribution = contribution
			board.Ended[i].Eligibility = domain.Evaluate(rec, now, contribution)
			return nil
		})
	}
	_ = g.Wait()
	return board, nil
}

// contribution is best-effort; a failed lookup hides the refund action.
func (s *CampaignService) contribution(ctx context.Context, id *big.Int, account common.Address) *big.Int {
	amount, err := s.contract.GetContribution(ctx, id, account)
	if err != nil {
		s.logger.Debug("contribution lookup failed",
			slog.String("campaign_id", id.String()),
			slog.Any("error", err))
		return nil
	}
	return amount
}

func (s *CampaignService) snapshot(ctx context.Context) (Snapshot, error) {
	if snap, ok := s.sync.Current(); ok {
		return snap, nil
	}
	snap, err := s.sync.Refresh(ctx)
	if errors.Is(err, domain.ErrStaleSnapshot) {
		// a newer pass has been applied
		cur, _ := s.sync.Current()
		return cur, nil
	}
	return snap, err
}

// Refresh forces a Reader pass. Being overtaken by a newer pass is not an
// error for the caller.
func (s *CampaignService) Refresh(ctx context.Context) error {
	_, err := s.sync.Refresh(ctx)
	if errors.Is(err, domain.ErrStaleSnapshot) {
		return nil
	}
	return err
}

// Submit hands the action to the dispatcher.
func (s *CampaignService) Submit(ctx context.Context, wallet domain.WalletContext, req domain.ActionRequest) (*domain.Receipt, error) {
	return s.dispatcher.Submit(ctx, wallet, req)
}

// Receipts lists journaled receipts.
func (s *CampaignService) Receipts(ctx context.Context, account *common.Address, limit int) ([]domain.Receipt, error) {
	if s.journal == nil {
		return []domain.Receipt{}, nil
	}
	switch {
	case limit <= 0:
		limit = defaultReceiptLimit
	case limit > maxReceiptLimit:
		limit = maxReceiptLimit
	}
	return s.journal.List(ctx, account, limit)
}
