package port

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase is the primary port into the application. The HTTP
// adapter depends only on this interface.
type CampaignUseCase interface {
	// ConnectWallet resolves the wallet context from the provider.
	ConnectWallet(ctx context.Context) (domain.WalletContext, error)

	// Board returns the latest snapshot split into active and ended
	// campaigns with per-campaign action gating for wallet at now.
	Board(ctx context.Context, wallet domain.WalletContext, now time.Time) (*Board, error)

	// Refresh forces a new Reader pass.
	Refresh(ctx context.Context) error

	// Submit runs one state-changing action and waits for confirmation.
	Submit(ctx context.Context, wallet domain.WalletContext, req domain.ActionRequest) (*domain.Receipt, error)

	// Receipts lists journaled receipts, newest first.
	Receipts(ctx context.Context, account *common.Address, limit int) ([]domain.Receipt, error)
}

// Board is the view model for one render.
type Board struct {
	Active    []CampaignView
	Ended     []CampaignView
	FetchedAt time.Time
	Now       time.Time
}

// CampaignView pairs a record with the actions the wallet may take on it.
type CampaignView struct {
	Record       domain.CampaignRecord
	Contribution *big.Int
	Eligibility  domain.Eligibility
}
