package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

func testProducts() *model.ProductStore {
	return model.NewProductStore([]model.Bond{
		{CUSIP: "9128283H1", Ticker: "US2Y", Coupon: 0.0175},
	})
}

func TestSubscribeBooksTrades(t *testing.T) {
	svc := New(testProducts())

	var trades []model.Trade
	svc.AddListener(service.AddFunc[model.Trade](func(tr model.Trade) {
		trades = append(trades, tr)
	}))

	input := strings.Join([]string{
		"9128283H1,T0001,99-160,TRSY1,1000000,BUY",
		"9128283H1,T0002,100-002,TRSY2,400000,SELL",
	}, "\n") + "\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, trades, 2)
	assert.Equal(t, "T0001", trades[0].TradeID)
	assert.Equal(t, 99.5, trades[0].Price)
	assert.Equal(t, model.SideBuy, trades[0].Side)
	assert.Equal(t, "TRSY2", trades[1].Book)
	assert.Equal(t, int64(400_000), trades[1].Quantity)
	assert.Equal(t, model.SideSell, trades[1].Side)
}

func TestSubscribeRejectsBadQuantity(t *testing.T) {
	svc := New(testProducts())
	input := "9128283H1,T0001,99-160,TRSY1,lots,BUY\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	assert.ErrorIs(t, err, ErrBadRecord)
}

func TestSubscribeRejectsUnknownProduct(t *testing.T) {
	svc := New(testProducts())
	input := "badcusip0,T0001,99-160,TRSY1,1000000,BUY\n"
	err := svc.Connector().Subscribe(strings.NewReader(input))
	assert.ErrorIs(t, err, model.ErrUnknownProduct)
}

func TestExecutionListenerRotatesBooks(t *testing.T) {
	svc := New(testProducts())

	var trades []model.Trade
	svc.AddListener(service.AddFunc[model.Trade](func(tr model.Trade) {
		trades = append(trades, tr)
	}))

	listener := NewExecutionListener(svc)
	for i := 0; i < 4; i++ {
		listener.ProcessAdd(model.ExecutionOrder{
			Product:         model.Bond{CUSIP: "9128283H1"},
			Side:            model.Bid,
			OrderID:         "A1",
			Type:            model.Market,
			Price:           99.5,
			VisibleQuantity: 1_000_000,
			HiddenQuantity:  500_000,
		})
	}

	require.Len(t, trades, 4)
	assert.Equal(t, "TRSY2", trades[0].Book)
	assert.Equal(t, "TRSY3", trades[1].Book)
	assert.Equal(t, "TRSY1", trades[2].Book)
	assert.Equal(t, "TRSY2", trades[3].Book)
}

func TestExecutionListenerMapsOrderToTrade(t *testing.T) {
	svc := New(testProducts())

	var trades []model.Trade
	svc.AddListener(service.AddFunc[model.Trade](func(tr model.Trade) {
		trades = append(trades, tr)
	}))

	listener := NewExecutionListener(svc)
	listener.ProcessAdd(model.ExecutionOrder{
		Product:         model.Bond{CUSIP: "9128283H1"},
		Side:            model.Offer,
		OrderID:         "AX9",
		Price:           99.5,
		VisibleQuantity: 1_000_000,
		HiddenQuantity:  2_000_000,
	})

	require.Len(t, trades, 1)
	assert.Equal(t, "AX9", trades[0].TradeID)
	assert.Equal(t, model.SideSell, trades[0].Side)
	assert.Equal(t, int64(3_000_000), trades[0].Quantity)
}
