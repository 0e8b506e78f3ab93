// Package service provides the keyed store and listener registry every
// business service composes. Dispatch is synchronous and depth-first: a
// notification returns only after every listener, and everything those
// listeners transitively trigger, has completed.
package service

// Listener receives callbacks when a service's data changes. Registration
// order is dispatch order; there is no unsubscribe.
type Listener[V any] interface {
	ProcessAdd(V)
	ProcessRemove(V)
	ProcessUpdate(V)
}

// AddFunc adapts a function to a Listener that only reacts to adds.
type AddFunc[V any] func(V)

func (f AddFunc[V]) ProcessAdd(v V)  { f(v) }
func (f AddFunc[V]) ProcessRemove(V) {}
func (f AddFunc[V]) ProcessUpdate(V) {}

// Registry holds listeners in registration order.
type Registry[V any] struct {
	listeners []Listener[V]
}

// Add appends a listener.
func (r *Registry[V]) Add(l Listener[V]) {
	r.listeners = append(r.listeners, l)
}

// Listeners returns the registered listeners in order.
func (r *Registry[V]) Listeners() []Listener[V] {
	return r.listeners
}

// NotifyAdd invokes ProcessAdd on every listener in registration order.
func (r *Registry[V]) NotifyAdd(v V) {
	for _, l := range r.listeners {
		l.ProcessAdd(v)
	}
}

// Store is a keyed entity store exclusively owned by one service.
type Store[V any] struct {
	entries map[string]V
}

// NewStore allocates an empty store.
func NewStore[V any]() *Store[V] {
	return &Store[V]{entries: make(map[string]V)}
}

// Get returns the entry for a key.
func (s *Store[V]) Get(key string) (V, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// GetOrCreate returns the entry for a key, lazily initializing it.
func (s *Store[V]) GetOrCreate(key string, create func() V) V {
	v, ok := s.entries[key]
	if !ok {
		v = create()
		s.entries[key] = v
	}
	return v
}

// Put upserts an entry.
func (s *Store[V]) Put(key string, v V) {
	s.entries[key] = v
}

// Delete removes an entry.
func (s *Store[V]) Delete(key string) {
	delete(s.entries, key)
}

// Len returns the number of entries.
func (s *Store[V]) Len() int { return len(s.entries) }
