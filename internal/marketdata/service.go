// Package marketdata distributes order book depth, keyed on product
// identifier. Raw resting orders are aggregated into one level per distinct
// price before the book fans out to listeners.
package marketdata

import (
	"sort"

	"github.com/yanun0323/errors"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// DefaultBookDepth is the number of levels in an ingress depth record.
const DefaultBookDepth = 5

// Service owns the order book store.
type Service struct {
	store     *service.Store[model.OrderBook]
	listeners service.Registry[model.OrderBook]
	connector *Connector
	products  *model.ProductStore
	bookDepth int
}

// New creates the market data service and its ingress connector.
func New(products *model.ProductStore) *Service {
	s := &Service{
		store:     service.NewStore[model.OrderBook](),
		products:  products,
		bookDepth: DefaultBookDepth,
	}
	s.connector = &Connector{service: s}
	return s
}

// GetData returns the order book for a product, lazily creating an empty
// book when the product is known but not yet seen.
func (s *Service) GetData(key string) (model.OrderBook, error) {
	if book, ok := s.store.Get(key); ok {
		return book, nil
	}
	product, err := s.products.Get(key)
	if err != nil {
		return model.OrderBook{}, err
	}
	book := model.OrderBook{Product: product}
	s.store.Put(key, book)
	return book, nil
}

// OnMessage replaces the stored book and fans it out to all listeners.
func (s *Service) OnMessage(book model.OrderBook) {
	s.store.Put(book.Product.CUSIP, book)
	s.listeners.NotifyAdd(book)
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.OrderBook]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.OrderBook] {
	return s.listeners.Listeners()
}

// Connector returns the ingress connector.
func (s *Service) Connector() *Connector { return s.connector }

// BookDepth returns the ingress depth per side.
func (s *Service) BookDepth() int { return s.bookDepth }

// BestBidOffer returns the best bid and offer of a product's book.
func (s *Service) BestBidOffer(productID string) (model.BidOffer, error) {
	book, ok := s.store.Get(productID)
	if !ok {
		return model.BidOffer{}, errors.Wrap(model.ErrUnknownProduct, productID)
	}
	return book.BestBidOffer()
}

// AggregateDepth groups the book's resting orders by exact price, summing
// quantities into one aggregated order per distinct price on each side, and
// replaces the book's stacks with the aggregated levels. Bids are ordered by
// descending price and offers by ascending price.
func (s *Service) AggregateDepth(productID string) (model.OrderBook, error) {
	book, ok := s.store.Get(productID)
	if !ok {
		return model.OrderBook{}, errors.Wrap(model.ErrUnknownProduct, productID)
	}

	book.Bids = aggregateSide(book.Bids, model.Bid, func(a, b float64) bool { return a > b })
	book.Offers = aggregateSide(book.Offers, model.Offer, func(a, b float64) bool { return a < b })
	s.store.Put(productID, book)
	return book, nil
}

func aggregateSide(orders []model.Order, side model.PricingSide, better func(a, b float64) bool) []model.Order {
	if len(orders) == 0 {
		return nil
	}

	quantities := make(map[float64]int64, len(orders))
	prices := make([]float64, 0, len(orders))
	for _, o := range orders {
		if _, ok := quantities[o.Price]; !ok {
			prices = append(prices, o.Price)
		}
		quantities[o.Price] += o.Quantity
	}
	sort.Slice(prices, func(i, j int) bool { return better(prices[i], prices[j]) })

	aggregated := make([]model.Order, 0, len(prices))
	for _, price := range prices {
		aggregated = append(aggregated, model.Order{
			Price:    price,
			Quantity: quantities[price],
			Side:     side,
		})
	}
	return aggregated
}
