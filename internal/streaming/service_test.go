package streaming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

func TestPublishPriceStreamStoresAndFansOut(t *testing.T) {
	svc := New()

	var streams []model.PriceStream
	svc.AddListener(service.AddFunc[model.PriceStream](func(ps model.PriceStream) {
		streams = append(streams, ps)
	}))

	stream := model.PriceStream{
		Product: model.Bond{CUSIP: "9128283H1"},
		Bid:     model.PriceStreamOrder{Price: 99.5, VisibleQuantity: 1_000_000, Side: model.Bid},
		Offer:   model.PriceStreamOrder{Price: 99.5 + 2.0/256, VisibleQuantity: 1_000_000, Side: model.Offer},
	}
	svc.PublishPriceStream(stream)

	require.Len(t, streams, 1)
	stored, ok := svc.GetData("9128283H1")
	require.True(t, ok)
	assert.Equal(t, stream, stored)
}

func TestListenerUnwrapsAlgoStreams(t *testing.T) {
	svc := New()

	listener := svc.Listener()
	listener.ProcessAdd(model.AlgoStream{Stream: model.PriceStream{
		Product: model.Bond{CUSIP: "9128283H1"},
	}})

	_, ok := svc.GetData("9128283H1")
	assert.True(t, ok)
}
