package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newDefaultStore(t testing.TB) *Store {
	t.Helper()
	s, err := NewStore(DefaultNetwork())
	require.NoError(t, err)
	return s
}

func stockOf(t testing.TB, s *Store, locationID, item string) int {
	t.Helper()
	loc, ok := s.Location(locationID)
	require.True(t, ok, "location %s", locationID)
	line, ok := loc.Line(item)
	require.True(t, ok, "item %s at %s", item, locationID)
	return line.Stock
}

func TestApplyMovesStock(t *testing.T) {
	s := newDefaultStore(t)

	err := s.Apply(context.Background(), domain.TransferRequest{
		FromLocationID: "warehouse-central",
		ToLocationID:   "store-downtown",
		ItemName:       ItemBluetoothSpeaker,
		Quantity:       17,
	})
	require.NoError(t, err)

	assert.Equal(t, 63, stockOf(t, s, "warehouse-central", ItemBluetoothSpeaker))
	assert.Equal(t, 25, stockOf(t, s, "store-downtown", ItemBluetoothSpeaker))
}

func TestApplyRejectsWithoutMutation(t *testing.T) {
	tests := []struct {
		name string
		req  domain.TransferRequest
		want error
	}{
		{
			name: "insufficient stock",
			req:  domain.TransferRequest{FromLocationID: "store-downtown", ToLocationID: "store-mall", ItemName: ItemBluetoothSpeaker, Quantity: 50},
			want: domain.ErrInsufficientStock,
		},
		{
			name: "same location",
			req:  domain.TransferRequest{FromLocationID: "store-mall", ToLocationID: "store-mall", ItemName: ItemSmartWatch, Quantity: 1},
			want: domain.ErrInvalidRoute,
		},
		{
			name: "unknown source",
			req:  domain.TransferRequest{FromLocationID: "store-nowhere", ToLocationID: "store-mall", ItemName: ItemSmartWatch, Quantity: 1},
			want: domain.ErrNotFound,
		},
		{
			name: "unknown destination",
			req:  domain.TransferRequest{FromLocationID: "store-mall", ToLocationID: "store-nowhere", ItemName: ItemSmartWatch, Quantity: 1},
			want: domain.ErrNotFound,
		},
		{
			name: "unknown item",
			req:  domain.TransferRequest{FromLocationID: "store-mall", ToLocationID: "store-downtown", ItemName: "Laptop", Quantity: 1},
			want: domain.ErrNotFound,
		},
		{
			name: "zero quantity",
			req:  domain.TransferRequest{FromLocationID: "store-mall", ToLocationID: "store-downtown", ItemName: ItemSmartWatch, Quantity: 0},
			want: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newDefaultStore(t)
			before := s.Snapshot()

			err := s.Apply(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, before, s.Snapshot())
		})
	}
}

func TestApplyCreatesMissingDestinationLine(t *testing.T) {
	seed := []domain.Location{
		{ID: "a", Kind: domain.KindWarehouse, Inventory: []domain.InventoryLine{{ItemName: "X", Stock: 40, Demand: 0, Optimal: 30}}},
		{ID: "b", Kind: domain.KindStore},
	}
	s, err := NewStore(seed)
	require.NoError(t, err)

	require.NoError(t, s.Apply(context.Background(), domain.TransferRequest{FromLocationID: "a", ToLocationID: "b", ItemName: "X", Quantity: 12}))

	b, _ := s.Location("b")
	line, ok := b.Line("X")
	require.True(t, ok)
	assert.Equal(t, domain.InventoryLine{ItemName: "X", Stock: 12, Demand: 0, Optimal: 12}, line)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newDefaultStore(t)

	snap := s.Snapshot()
	snap[0].Inventory[0].Stock = -999
	snap[0].Name = "changed"

	assert.Equal(t, 45, stockOf(t, s, "store-downtown", ItemWirelessHeadphones))
	loc, _ := s.Location("store-downtown")
	assert.Equal(t, "Downtown Store", loc.Name)
}

func TestNewStoreCopiesSeed(t *testing.T) {
	seed := DefaultNetwork()
	s, err := NewStore(seed)
	require.NoError(t, err)

	seed[0].Inventory[0].Stock = 0
	assert.Equal(t, 45, stockOf(t, s, "store-downtown", ItemWirelessHeadphones))
}

func TestValidateRejectsBadSeeds(t *testing.T) {
	tests := map[string][]domain.Location{
		"duplicate id": {
			{ID: "a", Kind: domain.KindStore},
			{ID: "a", Kind: domain.KindStore},
		},
		"empty id":     {{Kind: domain.KindStore}},
		"unknown kind": {{ID: "a", Kind: "depot"}},
		"duplicate item": {{ID: "a", Kind: domain.KindStore, Inventory: []domain.InventoryLine{
			{ItemName: "X", Stock: 1, Optimal: 1},
			{ItemName: "X", Stock: 2, Optimal: 1},
		}}},
		"negative stock": {{ID: "a", Kind: domain.KindStore, Inventory: []domain.InventoryLine{{ItemName: "X", Stock: -1, Optimal: 1}}}},
		"zero optimal":   {{ID: "a", Kind: domain.KindStore, Inventory: []domain.InventoryLine{{ItemName: "X", Stock: 1}}}},
	}

	for name, seed := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewStore(seed)
			assert.ErrorIs(t, err, domain.ErrInvalidSeed)
		})
	}
}

func TestApplyConcurrentTransfersKeepStockNonNegative(t *testing.T) {
	s := newDefaultStore(t)
	const workers = 50

	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			errs <- s.Apply(context.Background(), domain.TransferRequest{
				FromLocationID: "store-suburb",
				ToLocationID:   "store-mall",
				ItemName:       ItemSmartWatch,
				Quantity:       1,
			})
		}()
	}

	accepted := 0
	for i := 0; i < workers; i++ {
		if err := <-errs; err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}

	assert.Equal(t, 8, accepted)
	assert.Equal(t, 0, stockOf(t, s, "store-suburb", ItemSmartWatch))
	assert.Equal(t, 43, stockOf(t, s, "store-mall", ItemSmartWatch))
}

func totalStock(locations []domain.Location, item string) int {
	total := 0
	for _, loc := range locations {
		if line, ok := loc.Line(item); ok {
			total += line.Stock
		}
	}
	return total
}

func TestApplyProperties(t *testing.T) {
	ids := []string{"store-downtown", "store-mall", "warehouse-central", "distribution-north", "store-suburb", "store-unknown"}
	items := []string{ItemWirelessHeadphones, ItemBluetoothSpeaker, ItemPhoneCharger, ItemSmartWatch}

	rapid.Check(t, func(t *rapid.T) {
		s, err := NewStore(DefaultNetwork())
		if err != nil {
			t.Fatalf("seed: %v", err)
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			req := domain.TransferRequest{
				FromLocationID: rapid.SampledFrom(ids).Draw(t, "from"),
				ToLocationID:   rapid.SampledFrom(ids).Draw(t, "to"),
				ItemName:       rapid.SampledFrom(items).Draw(t, "item"),
				Quantity:       rapid.IntRange(-5, 120).Draw(t, "qty"),
			}

			before := s.Snapshot()
			err := s.Apply(context.Background(), req)
			after := s.Snapshot()

			if err != nil {
				if !assert.ObjectsAreEqual(before, after) {
					t.Fatalf("rejected transfer %+v mutated the store", req)
				}
				continue
			}

			for _, item := range items {
				if totalStock(before, item) != totalStock(after, item) {
					t.Fatalf("transfer %+v changed the network total of %s", req, item)
				}
			}
			for _, loc := range after {
				for _, line := range loc.Inventory {
					if line.Stock < 0 {
						t.Fatalf("negative stock for %s at %s", line.ItemName, loc.ID)
					}
				}
			}
		}
	})
}
