package usecase

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/core/domain"
)

func rec(id int64) domain.CampaignRecord {
	return domain.CampaignRecord{ID: big.NewInt(id), Goal: big.NewInt(1), AmountRaised: big.NewInt(0), Deadline: 1_700_000_000}
}

// TestLateRefreshDoesNotOverwriteNewer starts a slow pass, lets a newer pass
// finish first and checks the slow result is dropped.
func TestLateRefreshDoesNotOverwriteNewer(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	fetch := fetchFunc(func(ctx context.Context) ([]domain.CampaignRecord, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return []domain.CampaignRecord{rec(1)}, nil
		}
		return []domain.CampaignRecord{rec(1), rec(2)}, nil
	})
	s := NewSynchronizer(fetch, discardLogger(), 0)

	var (
		wg      sync.WaitGroup
		slowErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, slowErr = s.Refresh(context.Background())
	}()
	<-started

	fresh, err := s.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh.Records, 2)

	close(release)
	wg.Wait()
	assert.ErrorIs(t, slowErr, domain.ErrStaleSnapshot)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Len(t, cur.Records, 2)
	assert.Equal(t, fresh.Generation, cur.Generation)
}

// TestEarlierRefreshAppliesWhileNewerIsRunning lets an older pass finish
// while a newer one is still fetching. The older result is applied, then
// replaced by the newer one.
func TestEarlierRefreshAppliesWhileNewerIsRunning(t *testing.T) {
	releases := []chan struct{}{make(chan struct{}), make(chan struct{})}
	started := make(chan struct{}, 2)
	var calls atomic.Int32

	fetch := fetchFunc(func(ctx context.Context) ([]domain.CampaignRecord, error) {
		n := calls.Add(1)
		started <- struct{}{}
		<-releases[n-1]
		records := make([]domain.CampaignRecord, 0, n)
		for i := int64(1); i <= int64(n); i++ {
			records = append(records, rec(i))
		}
		return records, nil
	})
	s := NewSynchronizer(fetch, discardLogger(), 0)

	type result struct {
		snap Snapshot
		err  error
	}
	first := make(chan result, 1)
	second := make(chan result, 1)
	go func() {
		snap, err := s.Refresh(context.Background())
		first <- result{snap, err}
	}()
	<-started
	go func() {
		snap, err := s.Refresh(context.Background())
		second <- result{snap, err}
	}()
	<-started

	close(releases[0])
	r1 := <-first
	require.NoError(t, r1.err)
	assert.Len(t, r1.snap.Records, 1)
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, r1.snap.Generation, cur.Generation)

	close(releases[1])
	r2 := <-second
	require.NoError(t, r2.err)
	assert.Len(t, r2.snap.Records, 2)
	cur, _ = s.Current()
	assert.Equal(t, r2.snap.Generation, cur.Generation)
	assert.Greater(t, r2.snap.Generation, r1.snap.Generation)
}

func TestRefreshErrorKeepsPreviousSnapshot(t *testing.T) {
	fail := false
	fetch := fetchFunc(func(context.Context) ([]domain.CampaignRecord, error) {
		if fail {
			return nil, domain.ErrFetchFailed
		}
		return []domain.CampaignRecord{rec(1)}, nil
	})
	s := NewSynchronizer(fetch, discardLogger(), 0)

	_, ok := s.Current()
	assert.False(t, ok)

	_, err := s.Refresh(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = s.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Len(t, cur.Records, 1)
}

func TestRefreshAfterCancelIsDiscarded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	fetch := fetchFunc(func(context.Context) ([]domain.CampaignRecord, error) {
		cancel()
		return []domain.CampaignRecord{rec(1)}, nil
	})
	s := NewSynchronizer(fetch, discardLogger(), 0)

	_, err := s.Refresh(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestInvalidateTriggersRefresh(t *testing.T) {
	var calls atomic.Int32
	fetch := fetchFunc(func(context.Context) ([]domain.CampaignRecord, error) {
		calls.Add(1)
		return []domain.CampaignRecord{rec(5)}, nil
	})
	s := NewSynchronizer(fetch, discardLogger(), 0)

	got := make(chan Snapshot, 4)
	s.OnSnapshot(func(snap Snapshot) { got <- snap })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	s.Invalidate()
	select {
	case snap := <-got:
		require.Len(t, snap.Records, 1)
		assert.Equal(t, int64(5), snap.Records[0].ID.Int64())
	case <-time.After(2 * time.Second):
		t.Fatal("no refresh after invalidate")
	}

	cancel()
	<-done
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestInvalidateNeverBlocks(t *testing.T) {
	s := NewSynchronizer(staticFetcher(), discardLogger(), 0)
	for i := 0; i < 10; i++ {
		s.Invalidate()
	}
	assert.Len(t, s.signal, 1)
}
