package model

// Price is an internal quote consisting of a mid and a bid/offer spread.
type Price struct {
	Product Bond
	Mid     float64
	Spread  float64
}

// PriceStreamOrder is one side of a streamed two-way quote, with displayed
// and undisplayed size.
type PriceStreamOrder struct {
	Price           float64
	VisibleQuantity int64
	HiddenQuantity  int64
	Side            PricingSide
}

// PriceStream is a two-way streamed quote for a product.
type PriceStream struct {
	Product Bond
	Bid     PriceStreamOrder
	Offer   PriceStreamOrder
}

// AlgoStream wraps a price stream produced by the algo streaming engine.
type AlgoStream struct {
	Stream PriceStream
}
