package history

import (
	"github.com/yanun0323/logs"

	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// Service is the historical sink for one entity kind. Every persisted entity
// is upserted into the keyed store and appended to the kind's output stream;
// appends are fire-and-forget, a write failure is logged and the pipeline
// moves on.
type Service[V any] struct {
	kind   string
	store  *service.Store[V]
	key    func(V) string
	encode func(V) string
	out    *Appender
	mirror *Mirror
}

// NewService creates the sink for one kind. mirror may be nil.
func NewService[V any](kind string, out *Appender, mirror *Mirror, key func(V) string, encode func(V) string) *Service[V] {
	return &Service[V]{
		kind:   kind,
		store:  service.NewStore[V](),
		key:    key,
		encode: encode,
		out:    out,
		mirror: mirror,
	}
}

// GetData returns the last persisted entity for a key.
func (s *Service[V]) GetData(key string) (V, bool) {
	return s.store.Get(key)
}

// PersistData upserts the entity and appends its record.
func (s *Service[V]) PersistData(v V) {
	s.store.Put(s.key(v), v)

	record := s.encode(v)
	if err := s.out.Append(record); err != nil {
		logs.Errorf("append %s record: %+v", s.kind, err)
	}
	if s.mirror != nil {
		s.mirror.Save(s.kind, s.key(v), record)
	}
}

// OnMessage persists the entity; the sink treats direct feeds and listener
// callbacks identically.
func (s *Service[V]) OnMessage(v V) {
	s.PersistData(v)
}

// Listener adapts the sink to a listener on the tracked kind.
func (s *Service[V]) Listener() service.Listener[V] {
	return service.AddFunc[V](s.PersistData)
}
