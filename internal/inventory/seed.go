package inventory

import (
	"fmt"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
)

// Item names carried by every location of the default network
const (
	ItemWirelessHeadphones = "Wireless Headphones"
	ItemBluetoothSpeaker   = "Bluetooth Speaker"
	ItemPhoneCharger       = "Phone Charger"
	ItemSmartWatch         = "Smart Watch"
)

// DefaultNetwork returns the built-in five-location network used when no seed source is configured
func DefaultNetwork() []domain.Location {
	return []domain.Location{
		{
			ID:      "store-downtown",
			Name:    "Downtown Store",
			Kind:    domain.KindStore,
			X:       25,
			Y:       60,
			Address: "123 Main St, Downtown",
			Inventory: []domain.InventoryLine{
				{ItemName: ItemWirelessHeadphones, Stock: 45, Demand: 15, Optimal: 30},
				{ItemName: ItemBluetoothSpeaker, Stock: 8, Demand: 25, Optimal: 35},
				{ItemName: ItemPhoneCharger, Stock: 60, Demand: 20, Optimal: 40},
				{ItemName: ItemSmartWatch, Stock: 12, Demand: 18, Optimal: 25},
			},
		},
		{
			ID:      "store-mall",
			Name:    "Mall Store",
			Kind:    domain.KindStore,
			X:       75,
			Y:       40,
			Address: "456 Oak Ave, Shopping Mall",
			Inventory: []domain.InventoryLine{
				{ItemName: ItemWirelessHeadphones, Stock: 12, Demand: 30, Optimal: 35},
				{ItemName: ItemBluetoothSpeaker, Stock: 42, Demand: 18, Optimal: 25},
				{ItemName: ItemPhoneCharger, Stock: 25, Demand: 35, Optimal: 45},
				{ItemName: ItemSmartWatch, Stock: 35, Demand: 12, Optimal: 20},
			},
		},
		{
			ID:      "warehouse-central",
			Name:    "Central Warehouse",
			Kind:    domain.KindWarehouse,
			X:       50,
			Y:       20,
			Address: "789 Industrial Blvd",
			Inventory: []domain.InventoryLine{
				{ItemName: ItemWirelessHeadphones, Stock: 150, Demand: 0, Optimal: 100},
				{ItemName: ItemBluetoothSpeaker, Stock: 80, Demand: 0, Optimal: 60},
				{ItemName: ItemPhoneCharger, Stock: 200, Demand: 0, Optimal: 150},
				{ItemName: ItemSmartWatch, Stock: 90, Demand: 0, Optimal: 70},
			},
		},
		{
			ID:      "distribution-north",
			Name:    "North Distribution",
			Kind:    domain.KindDistribution,
			X:       30,
			Y:       25,
			Address: "321 Logistics Way North",
			Inventory: []domain.InventoryLine{
				{ItemName: ItemWirelessHeadphones, Stock: 80, Demand: 0, Optimal: 60},
				{ItemName: ItemBluetoothSpeaker, Stock: 45, Demand: 0, Optimal: 40},
				{ItemName: ItemPhoneCharger, Stock: 120, Demand: 0, Optimal: 100},
				{ItemName: ItemSmartWatch, Stock: 55, Demand: 0, Optimal: 45},
			},
		},
		{
			ID:      "store-suburb",
			Name:    "Suburban Store",
			Kind:    domain.KindStore,
			X:       80,
			Y:       75,
			Address: "654 Pine St, Suburbs",
			Inventory: []domain.InventoryLine{
				{ItemName: ItemWirelessHeadphones, Stock: 22, Demand: 28, Optimal: 30},
				{ItemName: ItemBluetoothSpeaker, Stock: 15, Demand: 22, Optimal: 25},
				{ItemName: ItemPhoneCharger, Stock: 40, Demand: 30, Optimal: 35},
				{ItemName: ItemSmartWatch, Stock: 8, Demand: 20, Optimal: 25},
			},
		},
	}
}

// Validate checks a seed before it becomes the authoritative network
func Validate(locations []domain.Location) error {
	seen := make(map[string]struct{}, len(locations))
	for _, loc := range locations {
		if loc.ID == "" {
			return fmt.Errorf("%w: location with empty id", domain.ErrInvalidSeed)
		}
		if _, dup := seen[loc.ID]; dup {
			return fmt.Errorf("%w: duplicate location id %q", domain.ErrInvalidSeed, loc.ID)
		}
		seen[loc.ID] = struct{}{}

		if _, ok := domain.ParseLocationKind(string(loc.Kind)); !ok {
			return fmt.Errorf("%w: location %q has unknown kind %q", domain.ErrInvalidSeed, loc.ID, loc.Kind)
		}

		items := make(map[string]struct{}, len(loc.Inventory))
		for _, line := range loc.Inventory {
			if line.ItemName == "" {
				return fmt.Errorf("%w: location %q has an unnamed item", domain.ErrInvalidSeed, loc.ID)
			}
			if _, dup := items[line.ItemName]; dup {
				return fmt.Errorf("%w: location %q lists %q twice", domain.ErrInvalidSeed, loc.ID, line.ItemName)
			}
			items[line.ItemName] = struct{}{}

			if line.Stock < 0 || line.Demand < 0 {
				return fmt.Errorf("%w: %q at %q has negative stock or demand", domain.ErrInvalidSeed, line.ItemName, loc.ID)
			}
			if line.Optimal <= 0 {
				return fmt.Errorf("%w: %q at %q needs a positive optimal level", domain.ErrInvalidSeed, line.ItemName, loc.ID)
			}
		}
	}
	return nil
}
