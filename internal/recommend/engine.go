// Package recommend pairs inventory surplus with shortage to propose transfer routes.
//
// A pass works item by item. Locations whose stock exceeds demand by more than the
// surplus margin can give; locations below demand need. Each shortage, in snapshot
// order, takes its whole deficit from the single surplus location with the largest
// remaining margin that can cover it. Partial fills across several sources are not
// attempted. The chosen source's working stock is reduced so later shortages of the
// same pass cannot claim the same units.
package recommend

import (
	"context"
	"fmt"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Config holds the thresholds of the heuristic
type Config struct {
	SurplusMargin     int     // a location gives only when stock > demand + SurplusMargin
	HighPriorityRatio float64 // deficit above this share of optimal is high priority
	MediumDeficit     int     // otherwise deficit above this many units is medium priority
}

func DefaultConfig() Config {
	return Config{
		SurplusMargin:     5,
		HighPriorityRatio: 0.3,
		MediumDeficit:     10,
	}
}

type Engine struct {
	cfg       Config
	estimator Estimator
	tracer    trace.Tracer
}

func NewEngine(cfg Config, estimator Estimator) *Engine {
	if estimator == nil {
		estimator = NewFixedEstimator("2-4 hours", 20)
	}
	return &Engine{
		cfg:       cfg,
		estimator: estimator,
		tracer:    otel.Tracer("supplychain/recommend"),
	}
}

// position is the engine's working view of one location for one item
type position struct {
	locationID string
	stock      int
	demand     int
	optimal    int
}

func (p position) margin() int {
	return p.stock - p.demand
}

// Generate runs one full pass over the snapshot. The snapshot is only read.
func (e *Engine) Generate(ctx context.Context, snapshot []domain.Location) []domain.Route {
	_, span := e.tracer.Start(ctx, "recommend.generate",
		trace.WithAttributes(attribute.Int("network.locations", len(snapshot))),
	)
	defer span.End()

	routes := make([]domain.Route, 0)
	for _, item := range itemNames(snapshot) {
		routes = e.planItem(item, positionsFor(snapshot, item), routes)
	}

	span.SetAttributes(attribute.Int("routes.count", len(routes)))
	return routes
}

func (e *Engine) planItem(item string, positions []position, routes []domain.Route) []domain.Route {
	var surplus, shortage []int
	for i, p := range positions {
		switch {
		case p.stock > p.demand+e.cfg.SurplusMargin:
			surplus = append(surplus, i)
		case p.stock < p.demand:
			shortage = append(shortage, i)
		}
	}

	for _, si := range shortage {
		need := positions[si]
		deficit := need.demand - need.stock

		best := -1
		for _, ci := range surplus {
			m := positions[ci].margin()
			if m < deficit {
				continue
			}
			if best < 0 || m > positions[best].margin() {
				best = ci
			}
		}
		if best < 0 {
			log.Debug().
				Str("item", item).
				Str("location", need.locationID).
				Int("deficit", deficit).
				Msg("recommend: no single source covers deficit")
			continue
		}

		quantity := min(deficit, positions[best].margin())
		est := e.estimator.Estimate(quantity)

		routes = append(routes, domain.Route{
			ID:            fmt.Sprintf("route-%d", len(routes)+1),
			From:          positions[best].locationID,
			To:            need.locationID,
			Item:          item,
			Quantity:      quantity,
			Priority:      e.priority(deficit, need.optimal),
			Status:        domain.RouteRecommended,
			EstimatedTime: est.Time,
			Cost:          est.Cost,
		})

		positions[best].stock -= quantity
	}

	return routes
}

func (e *Engine) priority(deficit, optimal int) domain.Priority {
	switch {
	case float64(deficit) > float64(optimal)*e.cfg.HighPriorityRatio:
		return domain.PriorityHigh
	case deficit > e.cfg.MediumDeficit:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

// itemNames lists every item in the network in first-seen order
func itemNames(snapshot []domain.Location) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, loc := range snapshot {
		for _, line := range loc.Inventory {
			if _, ok := seen[line.ItemName]; ok {
				continue
			}
			seen[line.ItemName] = struct{}{}
			names = append(names, line.ItemName)
		}
	}
	return names
}

func positionsFor(snapshot []domain.Location, item string) []position {
	out := make([]position, 0, len(snapshot))
	for _, loc := range snapshot {
		line, ok := loc.Line(item)
		if !ok {
			continue
		}
		out = append(out, position{
			locationID: loc.ID,
			stock:      line.Stock,
			demand:     line.Demand,
			optimal:    line.Optimal,
		})
	}
	return out
}
