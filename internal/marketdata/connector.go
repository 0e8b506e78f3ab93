package marketdata

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/tick"
)

var ErrBadRecord = errors.New("malformed market data record")

// Connector is the ingress boundary of the market data service. It is
// subscribe-only; Publish is a no-op.
type Connector struct {
	service *Service
}

// Publish is a no-op for this pure-ingress connector.
func (c *Connector) Publish(model.OrderBook) {}

// Subscribe consumes depth records of the form
// timestamp,productId,(bid,size,ask,size) x depth (header line skipped).
// Each record's levels are merged into the product's book, the book is
// aggregated by price level, and the aggregated book fans out. Any malformed
// record or unknown product aborts the whole pass.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return scanner.Err()
	}

	want := 2 + 4*c.service.bookDepth
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, ",")
		if len(fields) != want {
			return errors.Wrap(ErrBadRecord, line)
		}

		productID := fields[1]
		book, err := c.service.GetData(productID)
		if err != nil {
			return err
		}

		for level := 0; level < c.service.bookDepth; level++ {
			base := 2 + 4*level
			bid, err := parseOrder(fields[base], fields[base+1], model.Bid)
			if err != nil {
				return errors.Wrap(err, line)
			}
			offer, err := parseOrder(fields[base+2], fields[base+3], model.Offer)
			if err != nil {
				return errors.Wrap(err, line)
			}
			book.Bids = append(book.Bids, bid)
			book.Offers = append(book.Offers, offer)
		}
		c.service.store.Put(productID, book)

		aggregated, err := c.service.AggregateDepth(productID)
		if err != nil {
			return err
		}
		c.service.OnMessage(aggregated)
	}
	return scanner.Err()
}

func parseOrder(price, quantity string, side model.PricingSide) (model.Order, error) {
	p, err := tick.Parse(price)
	if err != nil {
		return model.Order{}, err
	}
	q, err := strconv.ParseInt(quantity, 10, 64)
	if err != nil {
		return model.Order{}, errors.Wrap(ErrBadRecord, quantity)
	}
	return model.Order{Price: p, Quantity: q, Side: side}, nil
}
