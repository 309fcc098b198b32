package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
)

func details(id *big.Int) port.CampaignDetails {
	return port.CampaignDetails{
		Owner:        owner,
		Description:  "campaign " + id.String(),
		Goal:         big.NewInt(10),
		Deadline:     big.NewInt(1_700_000_000 + id.Int64()),
		AmountRaised: big.NewInt(id.Int64()),
	}
}

// TestFetchAllContributorFailureDegrades checks that one failing contributor
// list only empties that campaign's contributors.
func TestFetchAllContributorFailureDegrades(t *testing.T) {
	contract := mocks.NewMockContract(t)
	wallet := mocks.NewMockWallet(t)

	wallet.EXPECT().IsAvailable().Return(true)
	contract.EXPECT().GetAllCampaignIDs(mock.Anything).Return(ids(0, 1, 2), nil)
	contract.EXPECT().GetCampaignDetails(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id *big.Int) (port.CampaignDetails, error) {
			return details(id), nil
		})
	contract.EXPECT().GetContributors(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id *big.Int) ([]common.Address, error) {
			if id.Int64() == 1 {
				return nil, errors.New("execution reverted")
			}
			return []common.Address{donor}, nil
		})

	records, err := NewCampaignReader(contract, wallet, discardLogger(), 2).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, r := range records {
		assert.Equal(t, int64(i), r.ID.Int64(), "order follows ids")
		assert.Equal(t, owner, r.Owner)
		assert.Equal(t, int64(1_700_000_000+i), r.Deadline)
	}
	assert.Equal(t, []common.Address{donor}, records[0].Contributors)
	assert.NotNil(t, records[1].Contributors)
	assert.Empty(t, records[1].Contributors)
	assert.Equal(t, []common.Address{donor}, records[2].Contributors)
}

func TestFetchAllProviderUnavailable(t *testing.T) {
	contract := mocks.NewMockContract(t)
	wallet := mocks.NewMockWallet(t)
	wallet.EXPECT().IsAvailable().Return(false)

	_, err := NewCampaignReader(contract, wallet, discardLogger(), 0).FetchAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestFetchAllIDsFailure(t *testing.T) {
	contract := mocks.NewMockContract(t)
	wallet := mocks.NewMockWallet(t)
	wallet.EXPECT().IsAvailable().Return(true)
	contract.EXPECT().GetAllCampaignIDs(mock.Anything).Return(nil, errors.New("rpc down"))

	records, err := NewCampaignReader(contract, wallet, discardLogger(), 0).FetchAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorContains(t, err, "rpc down")
	assert.Nil(t, records)
}

// TestFetchAllDetailFailure checks that detail failures are not tolerated
// per item: the whole pass fails.
func TestFetchAllDetailFailure(t *testing.T) {
	contract := mocks.NewMockContract(t)
	wallet := mocks.NewMockWallet(t)
	wallet.EXPECT().IsAvailable().Return(true)
	contract.EXPECT().GetAllCampaignIDs(mock.Anything).Return(ids(0, 1), nil)
	contract.EXPECT().GetCampaignDetails(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id *big.Int) (port.CampaignDetails, error) {
			if id.Int64() == 1 {
				return port.CampaignDetails{}, errors.New("bad campaign")
			}
			return details(id), nil
		})
	contract.EXPECT().GetContributors(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	records, err := NewCampaignReader(contract, wallet, discardLogger(), 1).FetchAll(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorContains(t, err, "bad campaign")
	assert.Nil(t, records)
}

func TestFetchAllDeduplicatesIDs(t *testing.T) {
	contract := mocks.NewMockContract(t)
	wallet := mocks.NewMockWallet(t)
	wallet.EXPECT().IsAvailable().Return(true)
	contract.EXPECT().GetAllCampaignIDs(mock.Anything).Return(ids(3, 1, 3), nil)
	contract.EXPECT().GetCampaignDetails(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id *big.Int) (port.CampaignDetails, error) {
			return details(id), nil
		})
	contract.EXPECT().GetContributors(mock.Anything, mock.Anything).Return(nil, nil)

	records, err := NewCampaignReader(contract, wallet, discardLogger(), 0).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(3), records[0].ID.Int64())
	assert.Equal(t, int64(1), records[1].ID.Int64())
	assert.NotNil(t, records[0].Contributors)
}

func TestFetchAllEmpty(t *testing.T) {
	contract := mocks.NewMockContract(t)
	wallet := mocks.NewMockWallet(t)
	wallet.EXPECT().IsAvailable().Return(true)
	contract.EXPECT().GetAllCampaignIDs(mock.Anything).Return([]*big.Int{}, nil)

	records, err := NewCampaignReader(contract, wallet, discardLogger(), 0).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
