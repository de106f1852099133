package dashboard

import (
	"sync"
	"time"
)

type timestamped interface {
	// timestamp in milliseconds since the Unix epoch
	timestamp() int64
}

// Window keeps records in insertion order and drops the ones older than
// maxAge. Eviction happens on Insert only, an idle window keeps its records.
type Window[T timestamped] struct {
	mu      sync.Mutex
	records []T

	maxAge time.Duration
	now    func() time.Time
}

// NewWindow creates an empty Window
func NewWindow[T timestamped](maxAge time.Duration, now func() time.Time) *Window[T] {
	return &Window[T]{
		maxAge: maxAge,
		now:    now,
	}
}

// Insert evicts stale records from the head, then appends rec
func (w *Window[T]) Insert(rec T) {
	nowMs := w.now().UnixMilli()
	maxAgeMs := w.maxAge.Milliseconds()

	w.mu.Lock()
	defer w.mu.Unlock()

	stale := 0
	for _, r := range w.records {
		if nowMs-r.timestamp() <= maxAgeMs {
			break
		}
		stale++
	}

	if stale > 0 {
		clear(w.records[:stale])
		w.records = w.records[stale:]
	}

	w.records = append(w.records, rec)
}

// DrainAll returns every record and empties the window
func (w *Window[T]) DrainAll() []T {
	w.mu.Lock()
	defer w.mu.Unlock()

	records := w.records
	w.records = nil

	if records == nil {
		return []T{}
	}

	return records
}

// Len returns the number of records held
func (w *Window[T]) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.records)
}
