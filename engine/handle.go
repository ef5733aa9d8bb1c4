package engine

import (
	"sync"

	uuid "github.com/gofrs/uuid"

	"github.com/lgray/hepquery"
)

// handle is the engine's AccumulatorHandle. Partial results are folded
// into the running value through the registered spec's Combine, under a
// mutex, so Add is safe to call from concurrent partition reductions.
type handle struct {
	id      string
	spec    hepquery.AccumulatorSpec
	mu      sync.Mutex
	current hepquery.Partial
}

func createHandle(initial hepquery.Partial, spec hepquery.AccumulatorSpec) (*handle, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &handle{id: id.String(), spec: spec, current: initial}, nil
}

// ID retrieves the ID of this handle
func (h *handle) ID() string {
	return h.id
}

// Add combines a partial result into the running value
func (h *handle) Add(acc hepquery.Accumulator) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	combined, err := h.spec.Combine(h.current, hepquery.Present(acc))
	if err != nil {
		return err
	}
	h.current = combined
	return nil
}

// Value returns the running value, or false while it is still absent
func (h *handle) Value() (hepquery.Accumulator, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current.IsAbsent() {
		return nil, false
	}
	return h.current.Accumulator(), true
}
