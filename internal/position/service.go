// Package position rolls booked trades up into signed per-book positions.
package position

import (
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// Service owns the position store.
type Service struct {
	store     *service.Store[model.Position]
	listeners service.Registry[model.Position]
}

// New creates the position service.
func New() *Service {
	return &Service{store: service.NewStore[model.Position]()}
}

// GetData returns the position for a product.
func (s *Service) GetData(key string) (model.Position, bool) {
	return s.store.Get(key)
}

// OnMessage upserts a position and fans it out to all listeners. The store
// keeps its own copy so listeners own the value they receive.
func (s *Service) OnMessage(p model.Position) {
	s.store.Put(p.Product.CUSIP, p.Clone())
	s.listeners.NotifyAdd(p)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.Position]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.Position] {
	return s.listeners.Listeners()
}

// AddTrade applies a trade's signed quantity to the product's position in
// the trade's book and fans the updated position out.
func (s *Service) AddTrade(t model.Trade) {
	pos := s.store.GetOrCreate(t.Product.CUSIP, func() model.Position {
		return model.NewPosition(t.Product)
	})

	quantity := t.Quantity
	if t.Side == model.SideSell {
		quantity = -quantity
	}
	pos.Add(t.Book, quantity)
	s.OnMessage(pos)
}

// Listener adapts the service to a trade listener.
func (s *Service) Listener() service.Listener[model.Trade] {
	return service.AddFunc[model.Trade](s.AddTrade)
}
