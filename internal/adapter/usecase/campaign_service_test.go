package usecase

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
)

const boardNow int64 = 1_700_000_000

func campaign(id, goal, raised, deadlineOffset int64) domain.CampaignRecord {
	return domain.CampaignRecord{
		ID:           big.NewInt(id),
		Owner:        owner,
		Goal:         big.NewInt(goal),
		AmountRaised: big.NewInt(raised),
		Deadline:     boardNow + deadlineOffset,
		Contributors: []common.Address{},
	}
}

func newService(t *testing.T, fetch Fetcher) (*CampaignService, *mocks.MockWallet, *mocks.MockContract, *mocks.MockReceiptJournal) {
	wallet := mocks.NewMockWallet(t)
	contract := mocks.NewMockContract(t)
	journal := mocks.NewMockReceiptJournal(t)
	sync := NewSynchronizer(fetch, discardLogger(), 0)
	dispatcher := NewActionDispatcher(contract, wallet, journal, sync, discardLogger())
	svc := NewCampaignService(wallet, contract, sync, dispatcher, journal, big.NewInt(11155111), discardLogger())
	return svc, wallet, contract, journal
}

func TestConnectWallet(t *testing.T) {
	svc, wallet, _, _ := newService(t, staticFetcher())
	wallet.EXPECT().IsAvailable().Return(true)
	wallet.EXPECT().RequestAccounts(mock.Anything).Return([]common.Address{donor}, nil)
	wallet.EXPECT().ChainID(mock.Anything).Return(big.NewInt(1), nil)

	wc, err := svc.ConnectWallet(context.Background())
	require.NoError(t, err)
	assert.True(t, wc.Connected)
	assert.Equal(t, donor, wc.Address)
	assert.True(t, wc.WrongNetwork)
}

func TestConnectWalletWithoutAccount(t *testing.T) {
	svc, wallet, _, _ := newService(t, staticFetcher())
	wallet.EXPECT().IsAvailable().Return(true)
	wallet.EXPECT().RequestAccounts(mock.Anything).Return([]common.Address{}, nil)
	wallet.EXPECT().ChainID(mock.Anything).Return(big.NewInt(11155111), nil)

	wc, err := svc.ConnectWallet(context.Background())
	require.NoError(t, err)
	assert.False(t, wc.Connected)
	assert.False(t, wc.WrongNetwork)
}

func TestConnectWalletUnavailable(t *testing.T) {
	svc, wallet, _, _ := newService(t, staticFetcher())
	wallet.EXPECT().IsAvailable().Return(false)

	_, err := svc.ConnectWallet(context.Background())
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestBoard(t *testing.T) {
	records := []domain.CampaignRecord{
		campaign(0, 10, 10, -100), // ended, funded: withdraw
		campaign(1, 10, 5, -100),  // ended, short: refund if contributed
		campaign(2, 10, 0, 100),   // active
		campaign(3, 10, 2, -50),   // ended, short, lookup fails
		campaign(4, 10, 1, 50),    // active
	}
	svc, _, contract, _ := newService(t, staticFetcher(records...))
	contract.EXPECT().GetContribution(mock.Anything, mock.Anything, donor).
		RunAndReturn(func(_ context.Context, id *big.Int, _ common.Address) (*big.Int, error) {
			if id.Int64() == 3 {
				return nil, errors.New("reverted")
			}
			return big.NewInt(3), nil
		}).Times(2)

	now := time.Unix(boardNow, 0)
	board, err := svc.Board(context.Background(), connected, now)
	require.NoError(t, err)

	require.Len(t, board.Active, 2)
	require.Len(t, board.Ended, 3)
	assert.Equal(t, int64(4), board.Active[0].Record.ID.Int64(), "newest first")
	assert.Equal(t, int64(2), board.Active[1].Record.ID.Int64())
	for _, v := range board.Active {
		assert.Equal(t, domain.Eligibility{Donate: true}, v.Eligibility)
	}

	byID := map[int64]domain.Eligibility{}
	for _, v := range board.Ended {
		byID[v.Record.ID.Int64()] = v.Eligibility
	}
	assert.Equal(t, domain.Eligibility{Withdraw: true}, byID[0])
	assert.Equal(t, domain.Eligibility{Refund: true}, byID[1])
	assert.Equal(t, domain.Eligibility{}, byID[3])
	assert.Equal(t, now, board.Now)
}

func TestBoardWithoutWalletSkipsContributionLookups(t *testing.T) {
	svc, _, _, _ := newService(t, staticFetcher(campaign(1, 10, 5, -100)))

	board, err := svc.Board(context.Background(), domain.WalletContext{}, time.Unix(boardNow, 0))
	require.NoError(t, err)
	require.Len(t, board.Ended, 1)
	assert.False(t, board.Ended[0].Eligibility.Refund)
	assert.Nil(t, board.Ended[0].Contribution)
}

func TestBoardFetchError(t *testing.T) {
	fetch := fetchFunc(func(context.Context) ([]domain.CampaignRecord, error) {
		return nil, domain.ErrFetchFailed
	})
	svc, _, _, _ := newService(t, fetch)

	_, err := svc.Board(context.Background(), connected, time.Unix(boardNow, 0))
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

// TestFirstBoardSurvivesOverlappingRefresh holds the first Board's fetch
// while a forced refresh starts, then releases the Board's fetch first.
func TestFirstBoardSurvivesOverlappingRefresh(t *testing.T) {
	boardFetching := make(chan struct{})
	releaseBoard := make(chan struct{})
	refreshFetching := make(chan struct{})
	releaseRefresh := make(chan struct{})
	var calls atomic.Int32

	fetch := fetchFunc(func(context.Context) ([]domain.CampaignRecord, error) {
		if calls.Add(1) == 1 {
			close(boardFetching)
			<-releaseBoard
		} else {
			close(refreshFetching)
			<-releaseRefresh
		}
		return []domain.CampaignRecord{campaign(1, 10, 0, 100)}, nil
	})
	svc, _, _, _ := newService(t, fetch)

	boardErr := make(chan error, 1)
	var board *port.Board
	go func() {
		var err error
		board, err = svc.Board(context.Background(), domain.WalletContext{}, time.Unix(boardNow, 0))
		boardErr <- err
	}()
	<-boardFetching

	refreshErr := make(chan error, 1)
	go func() { refreshErr <- svc.Refresh(context.Background()) }()
	<-refreshFetching

	close(releaseBoard)
	require.NoError(t, <-boardErr)
	require.Len(t, board.Active, 1)

	close(releaseRefresh)
	require.NoError(t, <-refreshErr)
}

// TestSubmitInvalidatesSnapshot runs a withdraw through the service and
// checks the next board comes from a fresh Reader pass.
func TestSubmitInvalidatesSnapshot(t *testing.T) {
	withdrawn := false
	fetch := fetchFunc(func(context.Context) ([]domain.CampaignRecord, error) {
		r := campaign(1, 10, 10, -100)
		r.Withdrawn = withdrawn
		return []domain.CampaignRecord{r}, nil
	})
	svc, wallet, contract, journal := newService(t, fetch)
	signer := mocks.NewMockSigner(t)
	tx := mocks.NewMockTxHandle(t)

	now := time.Unix(boardNow, 0)
	board, err := svc.Board(context.Background(), connected, now)
	require.NoError(t, err)
	assert.True(t, board.Ended[0].Eligibility.Withdraw)

	wallet.EXPECT().IsAvailable().Return(true)
	wallet.EXPECT().Signer(mock.Anything).Return(signer, nil)
	signer.EXPECT().Address().Return(donor)
	contract.EXPECT().Withdraw(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.Signer, *big.Int) (port.TxHandle, error) {
			withdrawn = true
			return tx, nil
		})
	tx.EXPECT().Wait(mock.Anything).Return(&domain.Receipt{}, nil)
	journal.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	_, err = svc.Submit(context.Background(), connected, domain.ActionRequest{Action: domain.ActionWithdraw, CampaignID: big.NewInt(1)})
	require.NoError(t, err)
	require.Len(t, svc.sync.signal, 1, "invalidate signal pending")

	require.NoError(t, svc.Refresh(context.Background()))
	board, err = svc.Board(context.Background(), connected, now)
	require.NoError(t, err)
	assert.False(t, board.Ended[0].Eligibility.Withdraw)
}

func TestReceiptsLimit(t *testing.T) {
	svc, _, _, journal := newService(t, staticFetcher())
	journal.EXPECT().List(mock.Anything, (*common.Address)(nil), 50).Return([]domain.Receipt{}, nil).Once()
	journal.EXPECT().List(mock.Anything, &donor, 500).Return([]domain.Receipt{{TxHash: common.HexToHash("0x9")}}, nil).Once()

	got, err := svc.Receipts(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = svc.Receipts(context.Background(), &donor, 10_000)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReceiptsWithoutJournal(t *testing.T) {
	wallet := mocks.NewMockWallet(t)
	contract := mocks.NewMockContract(t)
	sync := NewSynchronizer(staticFetcher(), discardLogger(), 0)
	dispatcher := NewActionDispatcher(contract, wallet, nil, sync, discardLogger())
	svc := NewCampaignService(wallet, contract, sync, dispatcher, nil, nil, discardLogger())

	got, err := svc.Receipts(context.Background(), &donor, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
