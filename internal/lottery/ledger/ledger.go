// Package ledger keeps the append-only record of observed payout events.
package ledger

import (
	"slices"
	"sync"

	"github.com/goodnatureofminers/lotterywatch/internal/lottery/model"
)

// MergeResult reports what a merge did.
type MergeResult struct {
	Admitted int
	// Conflicts lists incoming events whose key was already held with a different value.
	// The held entry wins.
	Conflicts []model.PayoutEvent
}

// Ledger is safe for concurrent use. Entries are never changed or removed once admitted.
type Ledger struct {
	mu      sync.RWMutex
	entries map[model.EventKey]model.PayoutEvent
	order   []model.EventKey
}

func New() *Ledger {
	return &Ledger{entries: make(map[model.EventKey]model.PayoutEvent)}
}

// Merge admits the events whose identity is not yet held.
func (l *Ledger) Merge(events ...model.PayoutEvent) MergeResult {
	var res MergeResult

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range events {
		key := e.Key()
		if held, ok := l.entries[key]; ok {
			if !held.SameValue(e) {
				res.Conflicts = append(res.Conflicts, e)
			}
			continue
		}
		l.entries[key] = e
		l.order = insertSorted(l.order, key)
		res.Admitted++
	}

	return res
}

// NewestFirst returns a copy of all entries, latest chain position first.
func (l *Ledger) NewestFirst() []model.PayoutEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.PayoutEvent, 0, len(l.order))
	for i := len(l.order) - 1; i >= 0; i-- {
		out = append(out, l.entries[l.order[i]])
	}
	return out
}

// Len returns the number of admitted entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// Has reports whether key was admitted.
func (l *Ledger) Has(key model.EventKey) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.entries[key]
	return ok
}

func insertSorted(order []model.EventKey, key model.EventKey) []model.EventKey {
	i, _ := slices.BinarySearchFunc(order, key, compareKeys)
	return slices.Insert(order, i, key)
}

func compareKeys(a, b model.EventKey) int {
	switch {
	case a.Position.Less(b.Position):
		return -1
	case b.Position.Less(a.Position):
		return 1
	case a.RoundID < b.RoundID:
		return -1
	case a.RoundID > b.RoundID:
		return 1
	default:
		return 0
	}
}
