// Package streaming publishes the algo engine's two-way quotes and keeps the
// latest stream per product.
package streaming

import (
	"github.com/yanun0323/logs"

	"github.com/ycsun666/MTH9815-Final/internal/codec"
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// Service owns the price stream store.
type Service struct {
	store     *service.Store[model.PriceStream]
	listeners service.Registry[model.PriceStream]
	connector *Connector
}

// New creates the streaming service and its egress connector.
func New() *Service {
	return &Service{
		store:     service.NewStore[model.PriceStream](),
		connector: &Connector{},
	}
}

// GetData returns the latest stream for a product.
func (s *Service) GetData(key string) (model.PriceStream, bool) {
	return s.store.Get(key)
}

// OnMessage upserts a stream and fans it out to all listeners.
func (s *Service) OnMessage(ps model.PriceStream) {
	s.store.Put(ps.Product.CUSIP, ps)
	s.listeners.NotifyAdd(ps)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.PriceStream]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.PriceStream] {
	return s.listeners.Listeners()
}

// Connector returns the egress connector.
func (s *Service) Connector() *Connector { return s.connector }

// PublishPriceStream publishes a stream and feeds it through the service.
func (s *Service) PublishPriceStream(ps model.PriceStream) {
	s.connector.Publish(ps)
	s.OnMessage(ps)
}

// Listener adapts the service to an algo stream listener.
func (s *Service) Listener() service.Listener[model.AlgoStream] {
	return service.AddFunc[model.AlgoStream](func(as model.AlgoStream) {
		s.PublishPriceStream(as.Stream)
	})
}

// Connector is the egress boundary of the streaming service. It is
// publish-only; Subscribe is a no-op.
type Connector struct{}

// Publish emits a stream record.
func (c *Connector) Publish(ps model.PriceStream) {
	logs.Infof("price stream: %s", codec.PriceStreamRecord(ps))
}
