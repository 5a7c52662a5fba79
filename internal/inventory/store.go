// Package inventory holds the authoritative in-memory network of locations and their stock.
// Store.Apply is the only way stock changes after start-up.
package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Store struct {
	mu        sync.RWMutex
	locations []domain.Location
	index     map[string]int
	tracer    trace.Tracer
}

// NewStore validates the seed and copies it so later changes to the argument are not observed
func NewStore(locations []domain.Location) (*Store, error) {
	if err := Validate(locations); err != nil {
		return nil, err
	}

	s := &Store{
		locations: make([]domain.Location, len(locations)),
		index:     make(map[string]int, len(locations)),
		tracer:    otel.Tracer("supplychain/inventory"),
	}
	for i, loc := range locations {
		s.locations[i] = loc.Clone()
		s.index[loc.ID] = i
	}

	return s, nil
}

// Snapshot returns a deep copy of every location in seed order
func (s *Store) Snapshot() []domain.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Location, len(s.locations))
	for i, loc := range s.locations {
		out[i] = loc.Clone()
	}
	return out
}

// Location returns a copy of a single location
func (s *Store) Location(id string) (domain.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Location{}, false
	}
	return s.locations[i].Clone(), true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.locations)
}

// Apply moves req.Quantity units of req.ItemName from the source to the destination.
// The whole request is checked under the write lock before anything changes, so a
// rejected request leaves the store untouched.
func (s *Store) Apply(ctx context.Context, req domain.TransferRequest) error {
	_, span := s.tracer.Start(ctx, "inventory.apply",
		trace.WithAttributes(
			attribute.String("transfer.from", req.FromLocationID),
			attribute.String("transfer.to", req.ToLocationID),
			attribute.String("transfer.item", req.ItemName),
			attribute.Int("transfer.quantity", req.Quantity),
		),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if req.FromLocationID == req.ToLocationID {
		return domain.ErrInvalidRoute
	}

	fromIdx, ok := s.index[req.FromLocationID]
	if !ok {
		return fmt.Errorf("location %q: %w", req.FromLocationID, domain.ErrNotFound)
	}
	toIdx, ok := s.index[req.ToLocationID]
	if !ok {
		return fmt.Errorf("location %q: %w", req.ToLocationID, domain.ErrNotFound)
	}

	from := &s.locations[fromIdx]
	src := lineIndex(from.Inventory, req.ItemName)
	if src < 0 {
		return fmt.Errorf("item %q at %q: %w", req.ItemName, req.FromLocationID, domain.ErrNotFound)
	}
	if from.Inventory[src].Stock < req.Quantity {
		span.SetAttributes(attribute.Bool("transfer.rejected", true))
		return fmt.Errorf("%w: %q has %d of %q, requested %d",
			domain.ErrInsufficientStock, req.FromLocationID, from.Inventory[src].Stock, req.ItemName, req.Quantity)
	}

	from.Inventory[src].Stock -= req.Quantity

	to := &s.locations[toIdx]
	if dst := lineIndex(to.Inventory, req.ItemName); dst >= 0 {
		to.Inventory[dst].Stock += req.Quantity
	} else {
		to.Inventory = append(to.Inventory, domain.InventoryLine{
			ItemName: req.ItemName,
			Stock:    req.Quantity,
			Demand:   0,
			Optimal:  req.Quantity,
		})
	}

	return nil
}

func lineIndex(lines []domain.InventoryLine, itemName string) int {
	for i := range lines {
		if lines[i].ItemName == itemName {
			return i
		}
	}
	return -1
}
