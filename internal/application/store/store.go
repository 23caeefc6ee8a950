// Package store holds the in-memory session snapshot of every entity
// collection and funnels all mutation through its methods. Mutations follow
// an immutable-update discipline: each one builds a fresh slice, so a
// snapshot taken before a mutation is never modified underneath its holder.
// Persistence is a separate, explicit step performed by the caller.
package store

import (
	"sync"

	"github.com/coatdesk/core/internal/domain/entities"
)

// Record is satisfied by every id-keyed entity.
type Record[E any] interface {
	EntityID() int
	WithEntityID(id int) E
}

// Collection is an id-keyed in-memory collection with CRUD mutators.
type Collection[E Record[E]] struct {
	mu       sync.RWMutex
	items    []E
	onChange func()
}

// NewCollection creates an empty collection. onChange fires after every
// mutation; nil is allowed.
func NewCollection[E Record[E]](onChange func()) *Collection[E] {
	return &Collection[E]{onChange: onChange}
}

// Snapshot returns the current slice. Callers must treat it as read-only;
// mutators never modify a previously returned slice.
func (c *Collection[E]) Snapshot() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Len returns the number of records.
func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given id.
func (c *Collection[E]) Get(id int) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// Add assigns the next id (1 + max of existing ids, 0 when empty), appends
// the record and returns the stored copy. Nothing is persisted.
func (c *Collection[E]) Add(item E) E {
	c.mu.Lock()
	maxID := 0
	for _, existing := range c.items {
		if existing.EntityID() > maxID {
			maxID = existing.EntityID()
		}
	}
	stored := item.WithEntityID(maxID + 1)

	next := make([]E, 0, len(c.items)+1)
	next = append(next, c.items...)
	next = append(next, stored)
	c.items = next
	c.mu.Unlock()

	c.notify()
	return stored
}

// Update applies merge to the record with the given id. Missing ids are a
// silent no-op.
func (c *Collection[E]) Update(id int, merge func(E) E) {
	c.mu.Lock()
	found := false
	next := make([]E, len(c.items))
	for i, item := range c.items {
		if item.EntityID() == id {
			// The record's id is pinned; a merge cannot reassign it.
			next[i] = merge(item).WithEntityID(id)
			found = true
		} else {
			next[i] = item
		}
	}
	if !found {
		c.mu.Unlock()
		return
	}
	c.items = next
	c.mu.Unlock()

	c.notify()
}

// Delete removes the record with the given id. Missing ids are a silent
// no-op.
func (c *Collection[E]) Delete(id int) {
	c.mu.Lock()
	next := make([]E, 0, len(c.items))
	for _, item := range c.items {
		if item.EntityID() != id {
			next = append(next, item)
		}
	}
	if len(next) == len(c.items) {
		c.mu.Unlock()
		return
	}
	c.items = next
	c.mu.Unlock()

	c.notify()
}

// Replace swaps the whole collection, typically after a load from the
// persistence gateway.
func (c *Collection[E]) Replace(items []E) {
	c.mu.Lock()
	next := make([]E, len(items))
	copy(next, items)
	c.items = next
	c.mu.Unlock()

	c.notify()
}

// notify runs with the collection lock released, so a listener can read
// the collection it was just told about.
func (c *Collection[E]) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Series is a precomputed chart series. It has no per-record identity and
// only supports wholesale replacement.
type Series[P any] struct {
	mu       sync.RWMutex
	points   []P
	onChange func()
}

// NewSeries creates an empty series.
func NewSeries[P any](onChange func()) *Series[P] {
	return &Series[P]{onChange: onChange}
}

// Snapshot returns the current points. Callers must treat it as read-only.
func (s *Series[P]) Snapshot() []P {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.points
}

// Replace swaps the series content.
func (s *Series[P]) Replace(points []P) {
	s.mu.Lock()
	next := make([]P, len(points))
	copy(next, points)
	s.points = next
	s.mu.Unlock()

	if s.onChange != nil {
		s.onChange()
	}
}

// Store owns the authoritative in-memory copy of every collection for the
// lifetime of a session. Consumers subscribe to be told which dataset
// changed and re-pull the snapshot they care about.
type Store struct {
	Customers    *Collection[entities.Customer]
	Staff        *Collection[entities.Staff]
	Services     *Collection[entities.Service]
	Products     *Collection[entities.Product]
	Appointments *Collection[entities.Appointment]
	Sales        *Collection[entities.Sale]

	SalesSeries        *Series[entities.SalesPoint]
	AppointmentsSeries *Series[entities.AppointmentsPoint]

	mu          sync.Mutex
	subscribers []func(entities.Kind)
}

// New creates an empty store.
func New() *Store {
	s := &Store{}
	s.Customers = NewCollection[entities.Customer](s.changed(entities.KindCustomers))
	s.Staff = NewCollection[entities.Staff](s.changed(entities.KindStaff))
	s.Services = NewCollection[entities.Service](s.changed(entities.KindServices))
	s.Products = NewCollection[entities.Product](s.changed(entities.KindProducts))
	s.Appointments = NewCollection[entities.Appointment](s.changed(entities.KindAppointments))
	s.Sales = NewCollection[entities.Sale](s.changed(entities.KindSales))
	s.SalesSeries = NewSeries[entities.SalesPoint](s.changed(entities.KindSalesData))
	s.AppointmentsSeries = NewSeries[entities.AppointmentsPoint](s.changed(entities.KindAppointmentsData))
	return s
}

// Subscribe registers a change listener. Listeners run synchronously on the
// mutating goroutine, after the mutation is applied and the collection's
// lock is released, so a listener may re-pull the changed snapshot.
func (s *Store) Subscribe(fn func(kind entities.Kind)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) changed(kind entities.Kind) func() {
	return func() {
		s.mu.Lock()
		subs := make([]func(entities.Kind), len(s.subscribers))
		copy(subs, s.subscribers)
		s.mu.Unlock()

		for _, fn := range subs {
			fn(kind)
		}
	}
}
