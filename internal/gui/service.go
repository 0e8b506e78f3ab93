// Package gui feeds prices to the GUI output stream, throttled so at most
// one update per product window goes out.
package gui

import (
	"time"

	"github.com/yanun0323/logs"

	"github.com/ycsun666/MTH9815-Final/internal/codec"
	"github.com/ycsun666/MTH9815-Final/internal/history"
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// DefaultThrottle is the minimum interval between published GUI updates.
const DefaultThrottle = 300 * time.Millisecond

// Service throttles the price feed onto its output stream.
type Service struct {
	store     *service.Store[model.Price]
	listeners service.Registry[model.Price]
	out       *history.Appender
	throttle  time.Duration
	now       func() time.Time
	last      time.Time
}

// New creates the GUI service writing to out.
func New(out *history.Appender, throttle time.Duration) *Service {
	return &Service{
		store:    service.NewStore[model.Price](),
		out:      out,
		throttle: throttle,
		now:      time.Now,
	}
}

// GetData returns the last published price for a product.
func (s *Service) GetData(key string) (model.Price, bool) {
	return s.store.Get(key)
}

// OnMessage feeds a price through the throttle.
func (s *Service) OnMessage(p model.Price) {
	s.PublishThrottledPrice(p)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.Price]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.Price] {
	return s.listeners.Listeners()
}

// PublishThrottledPrice appends the price to the GUI stream unless one was
// published within the throttle window; throttled prices are dropped, not
// queued.
func (s *Service) PublishThrottledPrice(p model.Price) {
	now := s.now()
	if now.Sub(s.last) <= s.throttle {
		return
	}
	s.last = now

	s.store.Put(p.Product.CUSIP, p)
	if err := s.out.Append(codec.PriceRecord(p)); err != nil {
		logs.Errorf("append gui record: %+v", err)
	}
	s.listeners.NotifyAdd(p)
}

// Listener adapts the service to a price listener.
func (s *Service) Listener() service.Listener[model.Price] {
	return service.AddFunc[model.Price](s.PublishThrottledPrice)
}
