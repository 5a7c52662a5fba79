package transfer

import (
	"sync"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
)

// History is the append-only transfer log, newest entry first
type History struct {
	mu      sync.RWMutex
	records []domain.TransferRecord
}

func NewHistory() *History {
	return &History{}
}

// Prepend puts rec at the head of the log
func (h *History) Prepend(rec domain.TransferRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, domain.TransferRecord{})
	copy(h.records[1:], h.records)
	h.records[0] = rec
}

// List returns a copy of the log, newest first
func (h *History) List() []domain.TransferRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.TransferRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}
