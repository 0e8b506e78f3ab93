package pricing

import (
	"bufio"
	"io"
	"strings"

	"github.com/yanun0323/errors"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/tick"
)

var ErrBadRecord = errors.New("malformed price record")

// Connector is the ingress boundary of the pricing service. It is
// subscribe-only; Publish is a no-op.
type Connector struct {
	service  *Service
	products *model.ProductStore
}

// Publish is a no-op for this pure-ingress connector.
func (c *Connector) Publish(model.Price) {}

// Subscribe consumes price records of the form
// timestamp,productId,bid,ask (header line skipped), converting each to a
// mid/spread price and feeding it to the service. Any malformed record or
// unknown product aborts the whole pass.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return scanner.Err()
	}

	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return errors.Wrap(ErrBadRecord, line)
		}

		product, err := c.products.Get(fields[1])
		if err != nil {
			return err
		}
		bid, err := tick.Parse(fields[2])
		if err != nil {
			return err
		}
		ask, err := tick.Parse(fields[3])
		if err != nil {
			return err
		}

		c.service.OnMessage(model.Price{
			Product: product,
			Mid:     (bid + ask) / 2,
			Spread:  ask - bid,
		})
	}
	return scanner.Err()
}
