package recommend

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"
)

// Estimate carries the presentation-only transit time and cost of a route
type Estimate struct {
	Time string
	Cost float64
}

// Estimator prices a route of the given quantity. Cost must scale linearly with quantity.
type Estimator interface {
	Estimate(quantity int) Estimate
}

// RandomEstimator mimics the dashboard's jittered figures: a "lo-hi hours" window with
// lo in [2,5] and hi in [4,7], and a per-unit rate drawn from [minRate, maxRate).
type RandomEstimator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	minRate float64
	maxRate float64
}

func NewRandomEstimator(minRate, maxRate float64, seed int64) *RandomEstimator {
	if maxRate < minRate {
		minRate, maxRate = maxRate, minRate
	}
	return &RandomEstimator{
		rng:     rand.New(rand.NewSource(seed)),
		minRate: minRate,
		maxRate: maxRate,
	}
}

func (e *RandomEstimator) Estimate(quantity int) Estimate {
	e.mu.Lock()
	lo := 2 + e.rng.Intn(4)
	hi := 4 + e.rng.Intn(4)
	rate := e.minRate + e.rng.Float64()*(e.maxRate-e.minRate)
	e.mu.Unlock()

	return Estimate{
		Time: fmt.Sprintf("%d-%d hours", lo, hi),
		Cost: unitCost(quantity, decimal.NewFromFloat(rate)),
	}
}

// FixedEstimator returns the same window and rate every time
type FixedEstimator struct {
	Window string
	Rate   decimal.Decimal
}

func NewFixedEstimator(window string, rate float64) FixedEstimator {
	return FixedEstimator{Window: window, Rate: decimal.NewFromFloat(rate)}
}

func (e FixedEstimator) Estimate(quantity int) Estimate {
	return Estimate{Time: e.Window, Cost: unitCost(quantity, e.Rate)}
}

func unitCost(quantity int, rate decimal.Decimal) float64 {
	return decimal.NewFromInt(int64(quantity)).Mul(rate).Round(2).InexactFloat64()
}
