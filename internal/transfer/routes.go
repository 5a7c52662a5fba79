package transfer

import (
	"fmt"
	"sync"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
)

// RouteBook holds the active batch of routes.
//
// Every Replace starts a new generation. Route ids restart at route-1 with each batch, so
// removals carry the generation they were scheduled in and are ignored once a newer batch
// has been installed.
type RouteBook struct {
	mu         sync.RWMutex
	generation uint64
	routes     []domain.Route
}

func NewRouteBook() *RouteBook {
	return &RouteBook{}
}

// Replace swaps the whole active set for batch and returns the new generation
func (b *RouteBook) Replace(batch []domain.Route) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.routes = append(make([]domain.Route, 0, len(batch)), batch...)
	b.generation++
	return b.generation
}

// Active returns a copy of the active routes in batch order
func (b *RouteBook) Active() []domain.Route {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Route, len(b.routes))
	copy(out, b.routes)
	return out
}

func (b *RouteBook) Get(id string) (domain.Route, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i := b.indexOf(id); i >= 0 {
		return b.routes[i], true
	}
	return domain.Route{}, false
}

func (b *RouteBook) Generation() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.generation
}

// CountByStatus returns how many active routes are in status
func (b *RouteBook) CountByStatus(status domain.RouteStatus) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := 0
	for _, r := range b.routes {
		if r.Status == status {
			n++
		}
	}
	return n
}

// MarkInTransit moves a recommended route to in-transit. It returns the updated route
// and the generation it belongs to.
func (b *RouteBook) MarkInTransit(id string) (domain.Route, uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return domain.Route{}, 0, fmt.Errorf("route %q: %w", id, domain.ErrNotFound)
	}
	if b.routes[i].Status != domain.RouteRecommended {
		return domain.Route{}, 0, fmt.Errorf("route %q is %s: %w", id, b.routes[i].Status, domain.ErrRouteNotRecommended)
	}

	b.routes[i].Status = domain.RouteInTransit
	return b.routes[i], b.generation, nil
}

// Revert puts an in-transit route back to recommended, used when its transfer was rejected
func (b *RouteBook) Revert(id string, generation uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if generation != b.generation {
		return false
	}
	i := b.indexOf(id)
	if i < 0 || b.routes[i].Status != domain.RouteInTransit {
		return false
	}
	b.routes[i].Status = domain.RouteRecommended
	return true
}

// Remove drops a route from the active set if it still belongs to generation
func (b *RouteBook) Remove(id string, generation uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if generation != b.generation {
		return false
	}
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.routes = append(b.routes[:i], b.routes[i+1:]...)
	return true
}

func (b *RouteBook) indexOf(id string) int {
	for i := range b.routes {
		if b.routes[i].ID == id {
			return i
		}
	}
	return -1
}
