// Package pricing manages internal mid/spread prices, keyed on product
// identifier. Prices enter through the ingress connector and fan out to the
// algo streaming and GUI listeners.
package pricing

import (
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// Service owns the price store.
type Service struct {
	store     *service.Store[model.Price]
	listeners service.Registry[model.Price]
	connector *Connector
}

// New creates the pricing service and its ingress connector.
func New(products *model.ProductStore) *Service {
	s := &Service{store: service.NewStore[model.Price]()}
	s.connector = &Connector{service: s, products: products}
	return s
}

// GetData returns the latest price for a product.
func (s *Service) GetData(key string) (model.Price, bool) {
	return s.store.Get(key)
}

// OnMessage upserts a price and fans it out to all listeners.
func (s *Service) OnMessage(p model.Price) {
	s.store.Put(p.Product.CUSIP, p)
	s.listeners.NotifyAdd(p)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.Price]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.Price] {
	return s.listeners.Listeners()
}

// Connector returns the ingress connector.
func (s *Service) Connector() *Connector { return s.connector }
