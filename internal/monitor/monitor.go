// Package monitor serves the simulated system health, integration and prediction panels.
// None of it reads or changes the inventory.
package monitor

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	StatusOperational = "operational"
	StatusWarning     = "warning"

	minPerformance = 85
	minUptime      = 95
	warningBelow   = 90
)

type Monitor struct {
	mu      sync.RWMutex
	rng     *rand.Rand
	systems []domain.SystemStatus
}

func New(seed int64, now time.Time) *Monitor {
	systems := []domain.SystemStatus{
		{Name: "AI Processing Engine", Uptime: 99.8, Performance: 94},
		{Name: "Inventory Database", Uptime: 99.9, Performance: 97},
		{Name: "Network Connectivity", Uptime: 98.2, Performance: 89},
		{Name: "Security Systems", Uptime: 100, Performance: 98},
		{Name: "Analytics Platform", Uptime: 99.5, Performance: 92},
		{Name: "Storage Systems", Uptime: 99.7, Performance: 95},
	}
	for i := range systems {
		systems[i].Status = statusFor(systems[i].Performance)
		systems[i].LastCheck = now
	}

	return &Monitor{
		rng:     rand.New(rand.NewSource(seed)),
		systems: systems,
	}
}

// Tick jitters every system: performance by up to ±2 within [85,100], uptime by up to
// ±0.1 within [95,100], both rounded to one decimal
func (m *Monitor) Tick(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.systems {
		s := &m.systems[i]
		s.Performance = jitter(s.Performance, (m.rng.Float64()-0.5)*4, minPerformance)
		s.Uptime = jitter(s.Uptime, (m.rng.Float64()-0.5)*0.2, minUptime)
		s.Status = statusFor(s.Performance)
		s.LastCheck = now
	}
}

// Run ticks until ctx is done
func (m *Monitor) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("monitor: started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("monitor: stopped")
			return nil
		case now := <-ticker.C:
			m.Tick(now)
		}
	}
}

func (m *Monitor) Systems() []domain.SystemStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.SystemStatus, len(m.systems))
	copy(out, m.systems)
	return out
}

func jitter(value, delta, floor float64) float64 {
	v := max(floor, min(100, value+delta))
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

func statusFor(performance float64) string {
	if performance < warningBelow {
		return StatusWarning
	}
	return StatusOperational
}
