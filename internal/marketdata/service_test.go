package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ycsun666/MTH9815-Final/internal/model"
)

func testProducts() *model.ProductStore {
	return model.NewProductStore([]model.Bond{
		{CUSIP: "9128283H1", Ticker: "US2Y", Coupon: 0.0175},
	})
}

func TestAggregateDepthSumsQuantitiesPerPrice(t *testing.T) {
	svc := New(testProducts())
	svc.OnMessage(model.OrderBook{
		Product: model.Bond{CUSIP: "9128283H1"},
		Bids: []model.Order{
			{Price: 99.50, Quantity: 1_000_000, Side: model.Bid},
			{Price: 99.50, Quantity: 2_000_000, Side: model.Bid},
			{Price: 99.25, Quantity: 3_000_000, Side: model.Bid},
		},
		Offers: []model.Order{
			{Price: 99.75, Quantity: 4_000_000, Side: model.Offer},
			{Price: 100.00, Quantity: 5_000_000, Side: model.Offer},
			{Price: 99.75, Quantity: 1_000_000, Side: model.Offer},
		},
	})

	book, err := svc.AggregateDepth("9128283H1")
	require.NoError(t, err)

	require.Len(t, book.Bids, 2)
	assert.Equal(t, 99.50, book.Bids[0].Price)
	assert.Equal(t, int64(3_000_000), book.Bids[0].Quantity)
	assert.Equal(t, 99.25, book.Bids[1].Price)
	assert.Equal(t, int64(3_000_000), book.Bids[1].Quantity)

	require.Len(t, book.Offers, 2)
	assert.Equal(t, 99.75, book.Offers[0].Price)
	assert.Equal(t, int64(5_000_000), book.Offers[0].Quantity)
	assert.Equal(t, 100.00, book.Offers[1].Price)

	seenBid := map[float64]bool{}
	for _, o := range book.Bids {
		assert.Falsef(t, seenBid[o.Price], "duplicate bid level %f", o.Price)
		seenBid[o.Price] = true
	}
}

func TestAggregateDepthReplacesStacks(t *testing.T) {
	svc := New(testProducts())
	svc.OnMessage(model.OrderBook{
		Product: model.Bond{CUSIP: "9128283H1"},
		Bids:    []model.Order{{Price: 99.0, Quantity: 1, Side: model.Bid}, {Price: 99.0, Quantity: 1, Side: model.Bid}},
		Offers:  []model.Order{{Price: 100.0, Quantity: 1, Side: model.Offer}},
	})

	_, err := svc.AggregateDepth("9128283H1")
	require.NoError(t, err)

	stored, err := svc.GetData("9128283H1")
	require.NoError(t, err)
	assert.Len(t, stored.Bids, 1)
	assert.Equal(t, int64(2), stored.Bids[0].Quantity)
}

func TestBestBidOffer(t *testing.T) {
	svc := New(testProducts())
	svc.OnMessage(model.OrderBook{
		Product: model.Bond{CUSIP: "9128283H1"},
		Bids: []model.Order{
			{Price: 99.25, Quantity: 1, Side: model.Bid},
			{Price: 99.50, Quantity: 2, Side: model.Bid},
		},
		Offers: []model.Order{
			{Price: 100.00, Quantity: 3, Side: model.Offer},
			{Price: 99.75, Quantity: 4, Side: model.Offer},
		},
	})

	best, err := svc.BestBidOffer("9128283H1")
	require.NoError(t, err)
	assert.Equal(t, 99.50, best.Bid.Price)
	assert.Equal(t, 99.75, best.Offer.Price)
}

func TestBestBidOfferEmptySide(t *testing.T) {
	book := model.OrderBook{
		Bids: []model.Order{{Price: 99.0, Quantity: 1, Side: model.Bid}},
	}
	_, err := book.BestBidOffer()
	assert.ErrorIs(t, err, model.ErrEmptyOfferStack)
}

func TestBestBidOfferUnknownProduct(t *testing.T) {
	svc := New(testProducts())
	_, err := svc.BestBidOffer("missing")
	assert.ErrorIs(t, err, model.ErrUnknownProduct)
}

func TestGetDataLazilyCreatesKnownProduct(t *testing.T) {
	svc := New(testProducts())

	book, err := svc.GetData("9128283H1")
	require.NoError(t, err)
	assert.Equal(t, "9128283H1", book.Product.CUSIP)
	assert.Empty(t, book.Bids)

	_, err = svc.GetData("missing")
	assert.ErrorIs(t, err, model.ErrUnknownProduct)
}
