// Package transfer executes stock movements against the inventory store and keeps the
// transfer history and the active route batch.
package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Inventory is the part of the store the executor needs
type Inventory interface {
	Location(id string) (domain.Location, bool)
	Apply(ctx context.Context, req domain.TransferRequest) error
}

type Executor struct {
	inventory Inventory
	history   *History
	now       func() time.Time
	newID     func() string
	tracer    trace.Tracer
}

type Option func(*Executor)

// WithClock overrides the timestamp source of new records
func WithClock(now func() time.Time) Option {
	return func(e *Executor) { e.now = now }
}

// WithIDGenerator overrides how record ids are minted
func WithIDGenerator(newID func() string) Option {
	return func(e *Executor) { e.newID = newID }
}

func NewExecutor(inv Inventory, history *History, opts ...Option) *Executor {
	if history == nil {
		history = NewHistory()
	}
	e := &Executor{
		inventory: inv,
		history:   history,
		now:       time.Now,
		newID:     func() string { return "transfer-" + uuid.NewString() },
		tracer:    otel.Tracer("supplychain/transfer"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) History() *History {
	return e.history
}

// Execute validates req, applies it to the inventory and prepends a completed record to
// the history. A rejected request changes neither the inventory nor the history.
func (e *Executor) Execute(ctx context.Context, req domain.TransferRequest, origin domain.TransferOrigin) (domain.TransferRecord, error) {
	ctx, span := e.tracer.Start(ctx, "transfer.execute",
		trace.WithAttributes(
			attribute.String("transfer.origin", string(origin)),
			attribute.String("transfer.item", req.ItemName),
			attribute.Int("transfer.quantity", req.Quantity),
		),
	)
	defer span.End()

	if err := e.validate(req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.TransferRecord{}, err
	}

	// the store repeats every check under its write lock; stock may have moved since validate
	if err := e.inventory.Apply(ctx, req); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.TransferRecord{}, err
	}

	rec := domain.TransferRecord{
		ID:           e.newID(),
		FromLocation: req.FromLocationID,
		ToLocation:   req.ToLocationID,
		Item:         req.ItemName,
		Quantity:     req.Quantity,
		Timestamp:    e.now(),
		Type:         origin,
		Status:       domain.TransferCompleted,
	}
	e.history.Prepend(rec)

	log.Info().
		Str("id", rec.ID).
		Str("origin", string(origin)).
		Str("from", rec.FromLocation).
		Str("to", rec.ToLocation).
		Str("item", rec.Item).
		Int("quantity", rec.Quantity).
		Msg("transfer: completed")

	return rec, nil
}

func (e *Executor) validate(req domain.TransferRequest) error {
	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if req.FromLocationID == req.ToLocationID {
		return domain.ErrInvalidRoute
	}

	from, ok := e.inventory.Location(req.FromLocationID)
	if !ok {
		return fmt.Errorf("location %q: %w", req.FromLocationID, domain.ErrNotFound)
	}
	if _, ok := e.inventory.Location(req.ToLocationID); !ok {
		return fmt.Errorf("location %q: %w", req.ToLocationID, domain.ErrNotFound)
	}

	line, ok := from.Line(req.ItemName)
	if !ok {
		return fmt.Errorf("item %q at %q: %w", req.ItemName, req.FromLocationID, domain.ErrNotFound)
	}
	if line.Stock < req.Quantity {
		return fmt.Errorf("%w: %q has %d of %q, requested %d",
			domain.ErrInsufficientStock, req.FromLocationID, line.Stock, req.ItemName, req.Quantity)
	}
	return nil
}

// Options lists what can be moved out of a location: every item with stock and its
// current stock as the upper bound
func Options(loc domain.Location) []domain.TransferOption {
	out := make([]domain.TransferOption, 0, len(loc.Inventory))
	for _, line := range loc.Inventory {
		if line.Stock <= 0 {
			continue
		}
		out = append(out, domain.TransferOption{
			ItemName:    line.ItemName,
			MaxQuantity: line.Stock,
			Demand:      line.Demand,
			Optimal:     line.Optimal,
		})
	}
	return out
}
