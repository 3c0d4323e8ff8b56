package store

import (
	"sort"
	"sync"
	"time"

	"github.com/controleponto/ponto/internal/punch"
)

// Dataset is the in-memory view of the record store the dashboard queries.
// It is loaded once at startup and only replaced wholesale by Reload;
// readers receive the shared slice and must not mutate it.
type Dataset struct {
	store    *Store
	schedule punch.Schedule

	mu      sync.RWMutex
	punches []punch.Punch
}

// NewDataset wraps a store with a classification schedule. Call Reload to
// populate it.
func NewDataset(store *Store, schedule punch.Schedule) *Dataset {
	return &Dataset{store: store, schedule: schedule}
}

// Reload re-reads the whole spreadsheet and re-derives every status.
func (d *Dataset) Reload() error {
	raw, err := d.store.LoadAll()
	if err != nil {
		return err
	}
	d.Replace(d.schedule.ClassifyAll(raw))
	return nil
}

// Replace swaps in an already-classified record set.
func (d *Dataset) Replace(punches []punch.Punch) {
	d.mu.Lock()
	d.punches = punches
	d.mu.Unlock()
}

// Punches returns the current record set. The slice is shared: treat it as
// read-only.
func (d *Dataset) Punches() []punch.Punch {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.punches
}

// Employees returns the distinct, sorted, non-empty employee names.
func (d *Dataset) Employees() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range d.Punches() {
		if p.Nome == "" {
			continue
		}
		if _, ok := seen[p.Nome]; ok {
			continue
		}
		seen[p.Nome] = struct{}{}
		names = append(names, p.Nome)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the earliest and latest punch timestamps, or the current
// time twice when no row carries a timestamp.
func (d *Dataset) Bounds() (time.Time, time.Time) {
	var min, max time.Time
	for _, p := range d.Punches() {
		if !p.HasTimestamp() {
			continue
		}
		if min.IsZero() || p.Timestamp.Before(min) {
			min = p.Timestamp
		}
		if max.IsZero() || p.Timestamp.After(max) {
			max = p.Timestamp
		}
	}
	if min.IsZero() {
		now := time.Now()
		return now, now
	}
	return min, max
}
