package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// CampaignReader builds CampaignRecord snapshots from the contract. One
// FetchAll call is one Reader pass.
type CampaignReader struct {
	contract port.Contract
	wallet   port.Wallet
	logger   *slog.Logger

	// concurrency caps in-flight detail fetches; zero means unbounded.
	concurrency int
}

// NewCampaignReader creates a reader.
func NewCampaignReader(contract port.Contract, wallet port.Wallet, logger *slog.Logger, concurrency int) *CampaignReader {
	return &CampaignReader{contract: contract, wallet: wallet, logger: logger, concurrency: concurrency}
}

// FetchAll returns one record per campaign id, in the order the contract
// lists them. Detail fetches run concurrently; any failure there, or in
// listing ids, fails the whole pass with domain.ErrFetchFailed. Contributor
// lists are best-effort and degrade to empty per campaign.
func (r *CampaignReader) FetchAll(ctx context.Context) ([]domain.CampaignRecord, error) {
	if !r.wallet.IsAvailable() {
		return nil, domain.ErrProviderUnavailable
	}
	ids, err := r.contract.GetAllCampaignIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	ids = uniqueIDs(ids)

	records := make([]domain.CampaignRecord, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i, id := range ids {
		g.Go(func() error {
			rec, err := r.fetchOne(gctx, id)
			if err != nil {
				return fmt.Errorf("campaign %s: %v", id, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	return records, nil
}

func (r *CampaignReader) fetchOne(ctx context.Context, id *big.Int) (domain.CampaignRecord, error) {
	d, err := r.contract.GetCampaignDetails(ctx, id)
	if err != nil {
		return domain.CampaignRecord{}, err
	}
	return domain.CampaignRecord{
		ID:           new(big.Int).Set(id),
		Owner:        d.Owner,
		Description:  d.Description,
		Goal:         orZero(d.Goal),
		Deadline:     unixSeconds(d.Deadline),
		AmountRaised: orZero(d.AmountRaised),
		Withdrawn:    d.Withdrawn,
		Contributors: r.contributors(ctx, id),
	}, nil
}

// contributors never fails: a missing or reverting getContributors yields
// an empty list for this campaign only.
func (r *CampaignReader) contributors(ctx context.Context, id *big.Int) []common.Address {
	list, err := r.contract.GetContributors(ctx, id)
	if err != nil {
		r.logger.Debug("contributors unavailable",
			slog.String("campaign_id", id.String()),
			slog.Any("error", err))
		return []common.Address{}
	}
	if list == nil {
		return []common.Address{}
	}
	return list
}

func uniqueIDs(ids []*big.Int) []*big.Int {
	seen := make(map[string]struct{}, len(ids))
	out := make([]*big.Int, 0, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		key := id.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, id)
	}
	return out
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// unixSeconds clamps deadlines that do not fit in int64 to "never ends".
func unixSeconds(v *big.Int) int64 {
	if v == nil {
		return 0
	}
	if !v.IsInt64() {
		return math.MaxInt64
	}
	return v.Int64()
}
