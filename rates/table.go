package rates

import (
	"context"
	"sync"

	"go-currency-converter/domain"
)

// Table holds the current rate table. A table is only ever replaced whole, never patched.
// The Table is concurrency safe: one writer, any number of readers.
type Table struct {
	// rates the current table, nil until the first Store
	rates domain.Rates

	// source the tier that produced rates
	source string

	// lock synchronizes access to rates and source
	lock sync.RWMutex
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Load returns a copy of the current table, or false if none has been stored yet.
func (t *Table) Load() (domain.Rates, bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	if t.rates == nil {
		return nil, false
	}
	return t.rates.Clone(), true
}

// Source names the tier of the current table, empty until the first Store.
func (t *Table) Source() string {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return t.source
}

// Store replaces the current table with r.
func (t *Table) Store(r Result) {
	rates := r.Rates.Clone()
	t.lock.Lock()
	defer t.lock.Unlock()
	t.rates = rates
	t.source = r.Source
}

// Refresh fetches through p and stores the outcome.
func (t *Table) Refresh(ctx context.Context, p *Provider) Result {
	r := p.Fetch(ctx)
	t.Store(r)
	return r
}
