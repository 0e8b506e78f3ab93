package marketdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

const depthHeader = "Timestamp,CUSIP,Bid1,BidSize1,Ask1,AskSize1,Bid2,BidSize2,Ask2,AskSize2,Bid3,BidSize3,Ask3,AskSize3,Bid4,BidSize4,Ask4,AskSize4,Bid5,BidSize5,Ask5,AskSize5"

func depthRecord(cusip string) string {
	fields := []string{"2026-08-31 09:00:00.000", cusip}
	levels := []struct{ bid, ask string }{
		{"99-310", "99-312"},
		{"99-306", "99-316"},
		{"99-304", "100-000"},
		{"99-302", "100-002"},
		{"99-300", "100-004"},
	}
	for i, l := range levels {
		size := []string{"1000000", "2000000", "3000000", "4000000", "5000000"}[i]
		fields = append(fields, l.bid, size, l.ask, size)
	}
	return strings.Join(fields, ",")
}

func TestSubscribeFeedsAggregatedBook(t *testing.T) {
	svc := New(testProducts())

	var books []model.OrderBook
	svc.AddListener(service.AddFunc[model.OrderBook](func(b model.OrderBook) {
		books = append(books, b)
	}))

	input := depthHeader + "\n" + depthRecord("9128283H1") + "\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, books, 1)
	book := books[0]
	require.Len(t, book.Bids, 5)
	require.Len(t, book.Offers, 5)

	// Bids descending, offers ascending.
	for i := 1; i < len(book.Bids); i++ {
		assert.Greater(t, book.Bids[i-1].Price, book.Bids[i].Price)
	}
	for i := 1; i < len(book.Offers); i++ {
		assert.Less(t, book.Offers[i-1].Price, book.Offers[i].Price)
	}
	assert.Equal(t, int64(1_000_000), book.Bids[0].Quantity)
}

func TestSubscribeRejectsUnknownProduct(t *testing.T) {
	svc := New(testProducts())
	input := depthHeader + "\n" + depthRecord("badcusip0") + "\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	assert.ErrorIs(t, err, model.ErrUnknownProduct)
}

func TestSubscribeRejectsShortRecord(t *testing.T) {
	svc := New(testProducts())
	input := depthHeader + "\n2026-08-31 09:00:00.000,9128283H1,99-310,1000000\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrBadRecord)
}
