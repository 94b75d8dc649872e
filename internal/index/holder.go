package index

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrRefreshInFlight is returned when a refresh is requested while
// another one is still running. Refreshes are serialized, never queued.
var ErrRefreshInFlight = errors.New("index refresh already in progress")

// Holder publishes the current index generation. Readers capture one
// generation with Current and keep using it for the whole request;
// Refresh swaps in a replacement atomically and never mutates a
// published generation in place.
type Holder struct {
	cur       atomic.Pointer[Index]
	refreshMu sync.Mutex
}

// NewHolder publishes an initial generation.
func NewHolder(idx *Index) *Holder {
	h := &Holder{}
	h.cur.Store(idx)
	return h
}

// Current returns the generation serving right now.
func (h *Holder) Current() *Index {
	return h.cur.Load()
}

// Refresh builds a replacement generation and publishes it. A failed
// build leaves the previous generation serving and reports the error to
// the caller; a refresh that overlaps another returns
// ErrRefreshInFlight immediately.
func (h *Holder) Refresh(build func() (*Index, error)) error {
	if !h.refreshMu.TryLock() {
		return ErrRefreshInFlight
	}
	defer h.refreshMu.Unlock()

	idx, err := build()
	if err != nil {
		return err
	}
	h.cur.Store(idx)
	return nil
}
