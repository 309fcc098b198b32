package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"crowdfund/internal/core/domain"
)

// Fetcher is one Reader pass. *CampaignReader implements it.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]domain.CampaignRecord, error)
}

// Snapshot is the result of one applied Reader pass.
type Snapshot struct {
	Records    []domain.CampaignRecord
	FetchedAt  time.Time
	Generation uint64
}

// Synchronizer owns the latest snapshot. Each Refresh takes a generation
// number when it starts and its result is applied unless a newer generation
// has already been applied, so a slow pass never overwrites a fresher one.
type Synchronizer struct {
	reader   Fetcher
	logger   *slog.Logger
	clock    func() time.Time
	interval time.Duration

	mu          sync.Mutex
	started     uint64
	applied     uint64
	current     *Snapshot
	subscribers []func(Snapshot)

	signal chan struct{}
}

// NewSynchronizer creates a synchronizer. A positive interval makes Run
// refresh periodically in addition to on invalidation.
func NewSynchronizer(reader Fetcher, logger *slog.Logger, interval time.Duration) *Synchronizer {
	return &Synchronizer{
		reader:   reader,
		logger:   logger,
		clock:    time.Now,
		interval: interval,
		signal:   make(chan struct{}, 1),
	}
}

// OnSnapshot registers fn to be called after every applied refresh.
func (s *Synchronizer) OnSnapshot(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Current returns the latest applied snapshot, if any.
func (s *Synchronizer) Current() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Snapshot{}, false
	}
	return *s.current, true
}

// Refresh runs a Reader pass and applies it. It returns
// domain.ErrStaleSnapshot when the result of a newer Refresh was applied
// before this one finished; the result is then discarded.
func (s *Synchronizer) Refresh(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	s.started++
	gen := s.started
	s.mu.Unlock()

	records, err := s.reader.FetchAll(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	if err = ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	if gen < s.applied {
		s.mu.Unlock()
		return Snapshot{}, domain.ErrStaleSnapshot
	}
	snap := Snapshot{Records: records, FetchedAt: s.clock(), Generation: gen}
	s.applied = gen
	s.current = &snap
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap, nil
}

// Invalidate asks Run for a new Reader pass. It never blocks; signals that
// arrive while one is already pending are merged.
func (s *Synchronizer) Invalidate() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// Run refreshes on every invalidation (and on the interval, if set) until
// ctx is done. Results that land after cancellation are dropped.
func (s *Synchronizer) Run(ctx context.Context) {
	var tick <-chan time.Time
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.signal:
		case <-tick:
		}
		snap, err := s.Refresh(ctx)
		switch {
		case err == nil:
			s.logger.Debug("campaigns refreshed",
				slog.Int("count", len(snap.Records)),
				slog.Uint64("generation", snap.Generation))
		case errors.Is(err, domain.ErrStaleSnapshot), errors.Is(err, context.Canceled):
		default:
			s.logger.Warn("campaign refresh failed", slog.Any("error", err))
		}
	}
}
