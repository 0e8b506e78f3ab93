package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
	"github.com/ycsun666/MTH9815-Final/internal/tick"
)

func testProducts() *model.ProductStore {
	return model.NewProductStore([]model.Bond{
		{CUSIP: "9128283H1", Ticker: "US2Y", Coupon: 0.0175},
	})
}

func TestSubscribeConvertsBidAskToMidSpread(t *testing.T) {
	svc := New(testProducts())

	var prices []model.Price
	svc.AddListener(service.AddFunc[model.Price](func(p model.Price) {
		prices = append(prices, p)
	}))

	input := "Timestamp,CUSIP,Bid,Ask\n" +
		"2026-08-31 09:00:00.000,9128283H1,99-160,99-164\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, prices, 1)
	assert.Equal(t, 99.5+2.0/tick.TicksPerPoint, prices[0].Mid)
	assert.Equal(t, 4.0/tick.TicksPerPoint, prices[0].Spread)

	stored, ok := svc.GetData("9128283H1")
	require.True(t, ok)
	assert.Equal(t, prices[0], stored)
}

func TestSubscribeRejectsMalformedPrice(t *testing.T) {
	svc := New(testProducts())
	input := "Timestamp,CUSIP,Bid,Ask\n" +
		"2026-08-31 09:00:00.000,9128283H1,99.5,99-164\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	assert.ErrorIs(t, err, tick.ErrInvalidPrice)
}

func TestSubscribeRejectsUnknownProduct(t *testing.T) {
	svc := New(testProducts())
	input := "Timestamp,CUSIP,Bid,Ask\n" +
		"2026-08-31 09:00:00.000,badcusip0,99-160,99-164\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	assert.ErrorIs(t, err, model.ErrUnknownProduct)
}

func TestSubscribeRejectsShortRecord(t *testing.T) {
	svc := New(testProducts())
	input := "Timestamp,CUSIP,Bid,Ask\n" +
		"2026-08-31 09:00:00.000,9128283H1,99-160\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrBadRecord)
}
