package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

func TestExecuteOrderStoresAndFansOut(t *testing.T) {
	svc := New()

	var orders []model.ExecutionOrder
	svc.AddListener(service.AddFunc[model.ExecutionOrder](func(o model.ExecutionOrder) {
		orders = append(orders, o)
	}))

	order := model.ExecutionOrder{
		Product: model.Bond{CUSIP: "9128283H1"},
		OrderID: "A1",
		Side:    model.Bid,
		Price:   99.5,
	}
	svc.ExecuteOrder(order, model.BrokerTec)

	require.Len(t, orders, 1)
	assert.Equal(t, "A1", orders[0].OrderID)

	stored, ok := svc.GetData("A1")
	require.True(t, ok)
	assert.Equal(t, order, stored)
}

func TestListenerRoutesAlgoExecutions(t *testing.T) {
	svc := New()

	var orders []model.ExecutionOrder
	svc.AddListener(service.AddFunc[model.ExecutionOrder](func(o model.ExecutionOrder) {
		orders = append(orders, o)
	}))

	listener := svc.Listener()
	listener.ProcessAdd(model.AlgoExecution{
		Order: model.ExecutionOrder{OrderID: "A2", Product: model.Bond{CUSIP: "9128283H1"}},
		Venue: model.CME,
	})

	require.Len(t, orders, 1)
	assert.Equal(t, "A2", orders[0].OrderID)
}
