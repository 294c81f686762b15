// Package requestlog implements the rolling request-statistics window
// (spec.md §4.10): a bounded FIFO of the last Capacity queries with an O(1)
// running count of the no-result entries among them. It is grounded on the
// teacher's internal/auth/ratelimit.Limiter for its mutex-guarded bounded
// in-memory state shape, adapted from a refilling token bucket to an
// eviction-on-overflow ring.
package requestlog

import (
	"sync"

	"github.com/radistMorze-constr/cpp-search-server/internal/metrics"
)

// Capacity is the fixed size of the rolling window (nominally one entry
// per minute over a day). It is a design constant, not a tunable, per
// spec.md §9.
const Capacity = 1440

// Window is a bounded FIFO of request outcomes plus a running count of
// the no-result entries currently in the FIFO.
type Window struct {
	mu            sync.Mutex
	hadResults    []bool // ring contents, oldest at index 0
	noResultCount int
	metrics       *metrics.Collectors
}

// New constructs an empty Window. metrics may be nil.
func New(m *metrics.Collectors) *Window {
	return &Window{
		hadResults: make([]bool, 0, Capacity),
		metrics:    m,
	}
}

// AddFindRequest executes find against query, records whether it returned
// any results, and returns find's results unchanged. It is generic over
// the engine's document type so this package stays free of a dependency
// edge back onto searchcore.
func AddFindRequest[T any](w *Window, query string, find func(string) ([]T, error)) ([]T, error) {
	results, err := find(query)
	if err != nil {
		return nil, err
	}
	w.record(len(results) > 0)
	return results, nil
}

// Record is the single-value form of AddFindRequest's bookkeeping, for
// callers (like batched multi-query execution) that already have a
// result count in hand and only need the window updated.
func (w *Window) Record(hadResults bool) {
	w.record(hadResults)
}

func (w *Window) record(hadResults bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.hadResults) >= Capacity {
		evicted := w.hadResults[0]
		w.hadResults = w.hadResults[1:]
		if !evicted {
			w.noResultCount--
		}
	}
	w.hadResults = append(w.hadResults, hadResults)
	if !hadResults {
		w.noResultCount++
	}

	if w.metrics != nil {
		w.metrics.NoResultRate.Set(float64(w.noResultCount))
	}
}

// GetNoResultRequests returns the number of no-result entries currently
// held in the window, in O(1).
func (w *Window) GetNoResultRequests() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.noResultCount
}

// Len returns the number of entries currently held in the window.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.hadResults)
}
