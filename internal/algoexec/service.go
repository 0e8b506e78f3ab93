// Package algoexec decides when to cross the book. On each aggregated order
// book update it trades only when the bid/offer spread is at most 1/128,
// alternating sides round-robin across invocations.
package algoexec

import (
	"github.com/ycsun666/MTH9815-Final/internal/idgen"
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
	"github.com/ycsun666/MTH9815-Final/internal/tick"
)

// SpreadThreshold is the widest spread the engine will trade into.
const SpreadThreshold = 2.0 / tick.TicksPerPoint

const (
	orderIDLen  = 11
	parentIDLen = 10
)

// Service owns the latest algo execution per product.
type Service struct {
	store     *service.Store[model.AlgoExecution]
	listeners service.Registry[model.AlgoExecution]
	ids       *idgen.Generator
	count     uint64
}

// New creates the algo execution engine.
func New(ids *idgen.Generator) *Service {
	return &Service{
		store: service.NewStore[model.AlgoExecution](),
		ids:   ids,
	}
}

// GetData returns the latest algo execution for a product.
func (s *Service) GetData(key string) (model.AlgoExecution, bool) {
	return s.store.Get(key)
}

// OnMessage upserts an algo execution and fans it out to all listeners.
func (s *Service) OnMessage(ae model.AlgoExecution) {
	s.store.Put(ae.Order.Product.CUSIP, ae)
	s.listeners.NotifyAdd(ae)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.AlgoExecution]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.AlgoExecution] {
	return s.listeners.Listeners()
}

// Listener adapts the engine to an order book listener.
func (s *Service) Listener() service.Listener[model.OrderBook] {
	return service.AddFunc[model.OrderBook](func(book model.OrderBook) {
		_ = s.ExecuteBook(book)
	})
}

// ExecuteBook inspects the book's best bid and offer and, when the spread is
// within threshold, emits a market order that crosses the book: a BID order
// takes the best offer, an OFFER order takes the best bid. The alternation
// counter advances on every call, traded or not, so sides stay round-robin.
// Wide spreads and one-sided books produce nothing.
func (s *Service) ExecuteBook(book model.OrderBook) error {
	best, err := book.BestBidOffer()
	if err != nil {
		return err
	}

	side := model.Bid
	if s.count%2 == 1 {
		side = model.Offer
	}
	s.count++

	if best.Offer.Price-best.Bid.Price > SpreadThreshold {
		return nil
	}

	taken := best.Offer
	if side == model.Offer {
		taken = best.Bid
	}

	order := model.ExecutionOrder{
		Product:         book.Product,
		Side:            side,
		OrderID:         s.ids.ID("A", orderIDLen),
		Type:            model.Market,
		Price:           taken.Price,
		VisibleQuantity: taken.Quantity,
		HiddenQuantity:  0,
		ParentOrderID:   s.ids.ID("AP", parentIDLen),
		IsChild:         false,
	}
	s.OnMessage(model.AlgoExecution{Order: order, Venue: model.BrokerTec})
	return nil
}
