// Package algostream turns internal prices into two-way streamed quotes.
// Visible size alternates one and two million on successive prices, hidden
// size is twice the visible size.
package algostream

import (
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

var visibleSizes = []int64{1_000_000, 2_000_000}

// Service owns the latest algo stream per product.
type Service struct {
	store     *service.Store[model.AlgoStream]
	listeners service.Registry[model.AlgoStream]
	count     uint64
}

// New creates the algo streaming engine.
func New() *Service {
	return &Service{store: service.NewStore[model.AlgoStream]()}
}

// GetData returns the latest algo stream for a product.
func (s *Service) GetData(key string) (model.AlgoStream, bool) {
	return s.store.Get(key)
}

// OnMessage upserts an algo stream and fans it out to all listeners.
func (s *Service) OnMessage(as model.AlgoStream) {
	s.store.Put(as.Stream.Product.CUSIP, as)
	s.listeners.NotifyAdd(as)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.AlgoStream]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.AlgoStream] {
	return s.listeners.Listeners()
}

// PublishPrice quotes both sides around the price's mid, half the spread
// away on each side, and emits exactly one stream per input price. The
// stream replaces any prior quote for the product.
func (s *Service) PublishPrice(p model.Price) {
	visible := visibleSizes[s.count%uint64(len(visibleSizes))]
	s.count++
	hidden := 2 * visible

	half := p.Spread / 2
	stream := model.PriceStream{
		Product: p.Product,
		Bid: model.PriceStreamOrder{
			Price:           p.Mid - half,
			VisibleQuantity: visible,
			HiddenQuantity:  hidden,
			Side:            model.Bid,
		},
		Offer: model.PriceStreamOrder{
			Price:           p.Mid + half,
			VisibleQuantity: visible,
			HiddenQuantity:  hidden,
			Side:            model.Offer,
		},
	}
	s.OnMessage(model.AlgoStream{Stream: stream})
}

// Listener adapts the engine to a price listener.
func (s *Service) Listener() service.Listener[model.Price] {
	return service.AddFunc[model.Price](s.PublishPrice)
}
