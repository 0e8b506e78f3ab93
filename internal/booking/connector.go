package booking

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/tick"
)

var ErrBadRecord = errors.New("malformed trade record")

// Connector is the ingress boundary of the trade booking service. It is
// subscribe-only; Publish is a no-op.
type Connector struct {
	service  *Service
	products *model.ProductStore
}

// Publish is a no-op for this pure-ingress connector.
func (c *Connector) Publish(model.Trade) {}

// Subscribe consumes trade records of the form
// productId,tradeId,price,book,quantity,side. Any malformed record or
// unknown product aborts the whole pass.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, ",")
		if len(fields) != 6 {
			return errors.Wrap(ErrBadRecord, line)
		}

		product, err := c.products.Get(fields[0])
		if err != nil {
			return err
		}
		price, err := tick.Parse(fields[2])
		if err != nil {
			return err
		}
		quantity, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return errors.Wrap(ErrBadRecord, line)
		}
		side, err := model.ParseSide(fields[5])
		if err != nil {
			return err
		}

		c.service.OnMessage(model.Trade{
			Product:  product,
			TradeID:  fields[1],
			Price:    price,
			Book:     fields[3],
			Quantity: quantity,
			Side:     side,
		})
	}
	return scanner.Err()
}
