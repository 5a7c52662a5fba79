// Package insights derives dashboard figures from a network snapshot and the active routes.
package insights

import (
	"fmt"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultUnitValue = 50
	criticalRatio    = 0.5
)

type Calculator struct {
	unitValue decimal.Decimal
}

// NewCalculator values every unit of stock at unitValue. Non-positive values fall back to 50.
func NewCalculator(unitValue float64) *Calculator {
	if unitValue <= 0 {
		unitValue = defaultUnitValue
	}
	return &Calculator{unitValue: decimal.NewFromFloat(unitValue)}
}

// IsCritical reports a line whose stock is below half of its demand
func IsCritical(line domain.InventoryLine) bool {
	return float64(line.Stock) < float64(line.Demand)*criticalRatio
}

func (c *Calculator) Stats(snapshot []domain.Location, routes []domain.Route) domain.NetworkStats {
	stats := domain.NetworkStats{TotalLocations: len(snapshot)}

	for _, r := range routes {
		if r.Status == domain.RouteRecommended {
			stats.ActiveRoutes++
		}
	}

	units := int64(0)
	for _, loc := range snapshot {
		for _, line := range loc.Inventory {
			units += int64(line.Stock)
			if IsCritical(line) {
				stats.CriticalShortages++
			}
		}
	}
	stats.TotalValue = decimal.NewFromInt(units).Mul(c.unitValue).Round(2).InexactFloat64()

	return stats
}

// Alerts lists every critical line in snapshot order
func Alerts(snapshot []domain.Location) []domain.CriticalAlert {
	alerts := make([]domain.CriticalAlert, 0)
	for _, loc := range snapshot {
		for _, line := range loc.Inventory {
			if !IsCritical(line) {
				continue
			}
			alerts = append(alerts, domain.CriticalAlert{
				LocationID:   loc.ID,
				LocationName: loc.Name,
				ItemName:     line.ItemName,
				Stock:        line.Stock,
				Demand:       line.Demand,
			})
		}
	}
	return alerts
}

func (c *Calculator) Overview(snapshot []domain.Location, routes []domain.Route, now time.Time) domain.NetworkOverview {
	alerts := Alerts(snapshot)
	return domain.NetworkOverview{
		Stats:       c.Stats(snapshot, routes),
		Alerts:      alerts,
		Headline:    headline(len(alerts)),
		GeneratedAt: now,
	}
}

func headline(critical int) string {
	switch critical {
	case 0:
		return "All locations within demand"
	case 1:
		return "1 critical alert"
	default:
		return fmt.Sprintf("%d critical alerts", critical)
	}
}
