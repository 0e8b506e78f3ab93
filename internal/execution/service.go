// Package execution routes execution orders to their venue and keeps the
// latest order per order id.
package execution

import (
	"github.com/yanun0323/logs"

	"github.com/ycsun666/MTH9815-Final/internal/codec"
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// Service owns the execution order store.
type Service struct {
	store     *service.Store[model.ExecutionOrder]
	listeners service.Registry[model.ExecutionOrder]
	connector *Connector
}

// New creates the execution service and its egress connector.
func New() *Service {
	s := &Service{store: service.NewStore[model.ExecutionOrder]()}
	s.connector = &Connector{}
	return s
}

// GetData returns an execution order by order id.
func (s *Service) GetData(key string) (model.ExecutionOrder, bool) {
	return s.store.Get(key)
}

// OnMessage upserts an order and fans it out to all listeners.
func (s *Service) OnMessage(o model.ExecutionOrder) {
	s.store.Put(o.OrderID, o)
	s.listeners.NotifyAdd(o)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.ExecutionOrder]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.ExecutionOrder] {
	return s.listeners.Listeners()
}

// Connector returns the egress connector.
func (s *Service) Connector() *Connector { return s.connector }

// ExecuteOrder publishes an order to its venue and feeds it through the
// service.
func (s *Service) ExecuteOrder(o model.ExecutionOrder, venue model.Venue) {
	s.connector.PublishTo(o, venue)
	s.OnMessage(o)
}

// Listener adapts the service to an algo execution listener.
func (s *Service) Listener() service.Listener[model.AlgoExecution] {
	return service.AddFunc[model.AlgoExecution](func(ae model.AlgoExecution) {
		s.ExecuteOrder(ae.Order, ae.Venue)
	})
}

// Connector is the egress boundary of the execution service. It is
// publish-only; Subscribe is a no-op.
type Connector struct{}

// Publish routes an order to the default venue.
func (c *Connector) Publish(o model.ExecutionOrder) {
	c.PublishTo(o, model.BrokerTec)
}

// PublishTo emits an order record for the given venue.
func (c *Connector) PublishTo(o model.ExecutionOrder, venue model.Venue) {
	logs.Infof("execution order -> %s: %s", venue, codec.ExecutionOrderRecord(o))
}
