package usecase

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

var (
	owner = common.HexToAddress("0x1111111111111111111111111111111111111111")
	donor = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ids(n ...int64) []*big.Int {
	out := make([]*big.Int, len(n))
	for i, v := range n {
		out[i] = big.NewInt(v)
	}
	return out
}

// fetchFunc adapts a function to the Fetcher interface.
type fetchFunc func(ctx context.Context) ([]domain.CampaignRecord, error)

func (f fetchFunc) FetchAll(ctx context.Context) ([]domain.CampaignRecord, error) {
	return f(ctx)
}

func staticFetcher(records ...domain.CampaignRecord) fetchFunc {
	return func(context.Context) ([]domain.CampaignRecord, error) {
		return records, nil
	}
}
