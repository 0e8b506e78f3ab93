// Package booking books trades into positions' source books. Trades enter
// from the trade file or from executed orders.
package booking

import (
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// Books are the sub-ledgers trades rotate through when booked from
// executions.
var Books = []string{"TRSY1", "TRSY2", "TRSY3"}

// Service owns the trade store.
type Service struct {
	store     *service.Store[model.Trade]
	listeners service.Registry[model.Trade]
	connector *Connector
}

// New creates the trade booking service and its ingress connector.
func New(products *model.ProductStore) *Service {
	s := &Service{store: service.NewStore[model.Trade]()}
	s.connector = &Connector{service: s, products: products}
	return s
}

// GetData returns a trade by trade id.
func (s *Service) GetData(key string) (model.Trade, bool) {
	return s.store.Get(key)
}

// OnMessage upserts a trade and fans it out to all listeners.
func (s *Service) OnMessage(t model.Trade) {
	s.store.Put(t.TradeID, t)
	s.listeners.NotifyAdd(t)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.Trade]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.Trade] {
	return s.listeners.Listeners()
}

// Connector returns the ingress connector.
func (s *Service) Connector() *Connector { return s.connector }

// BookTrade books a trade through the service.
func (s *Service) BookTrade(t model.Trade) {
	s.OnMessage(t)
}

// ExecutionListener books executed orders as trades, rotating through the
// books in order.
type ExecutionListener struct {
	service *Service
	count   uint64
}

// NewExecutionListener creates a listener booking into the given service.
func NewExecutionListener(s *Service) *ExecutionListener {
	return &ExecutionListener{service: s}
}

// ProcessAdd converts an executed order to a trade: a BID order was a buy,
// quantity is the full visible plus hidden size, and the order id doubles as
// the trade id.
func (l *ExecutionListener) ProcessAdd(o model.ExecutionOrder) {
	l.count++
	side := model.SideSell
	if o.Side == model.Bid {
		side = model.SideBuy
	}
	l.service.BookTrade(model.Trade{
		Product:  o.Product,
		TradeID:  o.OrderID,
		Price:    o.Price,
		Book:     Books[l.count%uint64(len(Books))],
		Quantity: o.VisibleQuantity + o.HiddenQuantity,
		Side:     side,
	})
}

func (l *ExecutionListener) ProcessRemove(model.ExecutionOrder) {}
func (l *ExecutionListener) ProcessUpdate(model.ExecutionOrder) {}
