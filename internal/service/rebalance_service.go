package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/cache"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/insights"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/inventory"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/recommend"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/transfer"
	"github.com/rs/zerolog/log"
)

// Options tunes the simulated latencies around analysis and route completion.
// Zero delays make both synchronous.
type Options struct {
	SettleDelay   time.Duration
	AnalysisDelay time.Duration
	UnitValue     float64
	Now           func() time.Time
}

type RebalanceService struct {
	store    *inventory.Store
	engine   *recommend.Engine
	executor *transfer.Executor
	routes   *transfer.RouteBook
	calc     *insights.Calculator
	cache    cache.NetworkCache
	opts     Options

	analyzing atomic.Bool
	pending   sync.WaitGroup

	// mutations is bumped before every cache invalidation. A read-through fill whose
	// generation moved while it was building its view must not outlive that view.
	mutations atomic.Uint64
}

func NewRebalanceService(
	store *inventory.Store,
	engine *recommend.Engine,
	executor *transfer.Executor,
	cacheImpl cache.NetworkCache,
	opts Options,
) *RebalanceService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopNetworkCache()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &RebalanceService{
		store:    store,
		engine:   engine,
		executor: executor,
		routes:   transfer.NewRouteBook(),
		calc:     insights.NewCalculator(opts.UnitValue),
		cache:    cacheImpl,
		opts:     opts,
	}
}

// Analyze runs one engine pass over a fresh snapshot and replaces the active batch
func (s *RebalanceService) Analyze(ctx context.Context) ([]domain.Route, error) {
	if s.analyzing.CompareAndSwap(false, true) {
		defer s.analyzing.Store(false)
	}

	return s.analyze(ctx)
}

// AnalyzeAsync starts a pass in the background. It returns false when a pass is already
// running. A started pass is not cancelled with ctx.
func (s *RebalanceService) AnalyzeAsync(ctx context.Context) bool {
	if !s.analyzing.CompareAndSwap(false, true) {
		return false
	}

	bg := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		defer s.analyzing.Store(false)

		if _, err := s.analyze(bg); err != nil {
			log.Error().Err(err).Msg("rebalance: background analysis failed")
		}
	}()
	return true
}

func (s *RebalanceService) analyze(ctx context.Context) ([]domain.Route, error) {
	if s.opts.AnalysisDelay > 0 {
		select {
		case <-time.After(s.opts.AnalysisDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	start := time.Now()
	batch := s.engine.Generate(ctx, s.store.Snapshot())
	gen := s.routes.Replace(batch)
	s.invalidate(ctx)

	log.Info().
		Int("routes", len(batch)).
		Uint64("generation", gen).
		Dur("took", time.Since(start)).
		Msg("rebalance: analysis completed")

	return batch, nil
}

func (s *RebalanceService) Analyzing() bool {
	return s.analyzing.Load()
}

func (s *RebalanceService) Routes() []domain.Route {
	return s.routes.Active()
}

// ExecuteRoute applies a recommended route as an AI transfer. The route stays in-transit
// until the settle delay elapses and is then removed from the active set.
func (s *RebalanceService) ExecuteRoute(ctx context.Context, id string) (domain.TransferRecord, error) {
	route, gen, err := s.routes.MarkInTransit(id)
	if err != nil {
		return domain.TransferRecord{}, err
	}

	rec, err := s.executor.Execute(ctx, domain.TransferRequest{
		FromLocationID: route.From,
		ToLocationID:   route.To,
		ItemName:       route.Item,
		Quantity:       route.Quantity,
	}, domain.OriginAI)
	if err != nil {
		if s.routes.Revert(id, gen) {
			s.invalidate(ctx)
		}
		return domain.TransferRecord{}, fmt.Errorf("execute %s: %w", id, err)
	}
	s.invalidate(ctx)

	s.settle(id, gen)
	return rec, nil
}

func (s *RebalanceService) settle(id string, gen uint64) {
	if s.opts.SettleDelay <= 0 {
		s.routes.Remove(id, gen)
		return
	}

	s.pending.Add(1)
	time.AfterFunc(s.opts.SettleDelay, func() {
		defer s.pending.Done()
		if s.routes.Remove(id, gen) {
			s.invalidate(context.Background())
			log.Debug().Str("route", id).Msg("rebalance: route settled")
		}
	})
}

func (s *RebalanceService) ManualTransfer(ctx context.Context, req domain.TransferRequest) (domain.TransferRecord, error) {
	rec, err := s.executor.Execute(ctx, req, domain.OriginManual)
	if err != nil {
		return domain.TransferRecord{}, err
	}
	s.invalidate(ctx)
	return rec, nil
}

func (s *RebalanceService) History() []domain.TransferRecord {
	return s.executor.History().List()
}

func (s *RebalanceService) Locations(ctx context.Context) []domain.Location {
	if locations, ok, err := s.cache.GetLocations(ctx); err == nil && ok {
		return locations
	} else if err != nil {
		log.Warn().Err(err).Msg("rebalance: cache get locations failed")
	}

	mark := s.mutations.Load()
	locations := s.store.Snapshot()
	s.fill(ctx, mark, "locations", func() error {
		return s.cache.SetLocations(ctx, locations)
	})
	return locations
}

func (s *RebalanceService) Location(id string) (domain.Location, error) {
	loc, ok := s.store.Location(id)
	if !ok {
		return domain.Location{}, fmt.Errorf("location %q: %w", id, domain.ErrNotFound)
	}
	return loc, nil
}

// TransferOptions lists the items a manual transfer may take out of from
func (s *RebalanceService) TransferOptions(from string) ([]domain.TransferOption, error) {
	loc, err := s.Location(from)
	if err != nil {
		return nil, err
	}
	return transfer.Options(loc), nil
}

func (s *RebalanceService) Overview(ctx context.Context) domain.NetworkOverview {
	if overview, ok, err := s.cache.GetOverview(ctx); err == nil && ok {
		return *overview
	} else if err != nil {
		log.Warn().Err(err).Msg("rebalance: cache get overview failed")
	}

	mark := s.mutations.Load()
	overview := s.calc.Overview(s.store.Snapshot(), s.routes.Active(), s.opts.Now())
	s.fill(ctx, mark, "overview", func() error {
		return s.cache.SetOverview(ctx, &overview)
	})
	return overview
}

// RunScheduler re-analyses the network every interval until ctx is done
func (s *RebalanceService) RunScheduler(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("rebalance: scheduler started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("rebalance: scheduler stopped")
			return nil
		case <-ticker.C:
			if !s.AnalyzeAsync(ctx) {
				log.Debug().Msg("rebalance: analysis already running, tick skipped")
			}
		}
	}
}

// Wait blocks until background analyses and pending route settlements have finished
func (s *RebalanceService) Wait() {
	s.pending.Wait()
}

// fill stores a view built at generation mark. A mutation that lands after the write
// started may already have run its invalidation, so the entry is dropped again.
func (s *RebalanceService) fill(ctx context.Context, mark uint64, view string, set func() error) {
	if s.mutations.Load() != mark {
		return
	}
	if err := set(); err != nil {
		log.Warn().Err(err).Str("view", view).Msg("rebalance: cache set failed")
		return
	}
	if s.mutations.Load() != mark {
		log.Debug().Str("view", view).Msg("rebalance: cache fill raced a mutation, dropped")
		if err := s.cache.InvalidateAll(ctx); err != nil {
			log.Warn().Err(err).Msg("rebalance: cache invalidate failed")
		}
	}
}

func (s *RebalanceService) invalidate(ctx context.Context) {
	s.mutations.Add(1)
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("rebalance: cache invalidate failed")
	}
}
