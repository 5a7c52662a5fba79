package insights

import (
	"testing"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsDefaultNetwork(t *testing.T) {
	routes := []domain.Route{
		{ID: "route-1", Status: domain.RouteRecommended},
		{ID: "route-2", Status: domain.RouteInTransit},
		{ID: "route-3", Status: domain.RouteRecommended},
	}

	stats := NewCalculator(50).Stats(inventory.DefaultNetwork(), routes)

	// 1144 units across the network
	assert.Equal(t, domain.NetworkStats{
		TotalLocations:    5,
		ActiveRoutes:      2,
		CriticalShortages: 3,
		TotalValue:        57200,
	}, stats)
}

func TestAlertsDefaultNetwork(t *testing.T) {
	alerts := Alerts(inventory.DefaultNetwork())

	require.Len(t, alerts, 3)
	assert.Equal(t, domain.CriticalAlert{
		LocationID:   "store-downtown",
		LocationName: "Downtown Store",
		ItemName:     inventory.ItemBluetoothSpeaker,
		Stock:        8,
		Demand:       25,
	}, alerts[0])
	assert.Equal(t, "store-mall", alerts[1].LocationID)
	assert.Equal(t, inventory.ItemWirelessHeadphones, alerts[1].ItemName)
	assert.Equal(t, "store-suburb", alerts[2].LocationID)
	assert.Equal(t, inventory.ItemSmartWatch, alerts[2].ItemName)
}

func TestIsCritical(t *testing.T) {
	assert.True(t, IsCritical(domain.InventoryLine{Stock: 4, Demand: 9}))
	assert.False(t, IsCritical(domain.InventoryLine{Stock: 5, Demand: 10}))
	assert.False(t, IsCritical(domain.InventoryLine{Stock: 0, Demand: 0}))
}

func TestOverviewHeadline(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c := NewCalculator(0)

	empty := c.Overview(nil, nil, now)
	assert.Equal(t, "All locations within demand", empty.Headline)
	assert.NotNil(t, empty.Alerts)
	assert.Equal(t, now, empty.GeneratedAt)

	full := c.Overview(inventory.DefaultNetwork(), nil, now)
	assert.Equal(t, "3 critical alerts", full.Headline)
}
