package model

import "github.com/yanun0323/errors"

var (
	ErrEmptyBidStack   = errors.New("order book has no bids")
	ErrEmptyOfferStack = errors.New("order book has no offers")
)

// Order is a single resting quote in an order book.
type Order struct {
	Price    float64
	Quantity int64
	Side     PricingSide
}

// BidOffer pairs the best bid and best offer of a book.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// OrderBook holds per-product bid and offer depth.
type OrderBook struct {
	Product Bond
	Bids    []Order
	Offers  []Order
}

// BestBidOffer returns the maximum-price bid and minimum-price offer.
// On equal prices the first order encountered wins.
func (b OrderBook) BestBidOffer() (BidOffer, error) {
	if len(b.Bids) == 0 {
		return BidOffer{}, ErrEmptyBidStack
	}
	if len(b.Offers) == 0 {
		return BidOffer{}, ErrEmptyOfferStack
	}

	best := BidOffer{Bid: b.Bids[0], Offer: b.Offers[0]}
	for _, o := range b.Bids[1:] {
		if o.Price > best.Bid.Price {
			best.Bid = o
		}
	}
	for _, o := range b.Offers[1:] {
		if o.Price < best.Offer.Price {
			best.Offer = o
		}
	}
	return best, nil
}

// Clone deep-copies the book so listeners receive an owned value.
func (b OrderBook) Clone() OrderBook {
	c := OrderBook{Product: b.Product}
	if len(b.Bids) > 0 {
		c.Bids = append(make([]Order, 0, len(b.Bids)), b.Bids...)
	}
	if len(b.Offers) > 0 {
		c.Offers = append(make([]Order, 0, len(b.Offers)), b.Offers...)
	}
	return c
}
