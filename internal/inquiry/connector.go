package inquiry

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/tick"
)

var ErrBadRecord = errors.New("malformed inquiry record")

// Connector is both the ingress and the quoting boundary of the inquiry
// service.
type Connector struct {
	service  *Service
	products *model.ProductStore
}

// Publish completes the quote round trip for a RECEIVED inquiry: it
// resubmits a QUOTED copy and then a DONE copy, synchronously. Other states
// are not published anywhere.
func (c *Connector) Publish(i model.Inquiry) {
	if i.State != model.InquiryReceived {
		return
	}
	i.State = model.InquiryQuoted
	c.service.OnMessage(i)
	i.State = model.InquiryDone
	c.service.OnMessage(i)
}

// Subscribe consumes inquiry records of the form
// inquiryId,productId,side,quantity,price,state. Any malformed record or
// unknown product aborts the whole pass.
func (c *Connector) Subscribe(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Split(line, ",")
		if len(fields) != 6 {
			return errors.Wrap(ErrBadRecord, line)
		}

		product, err := c.products.Get(fields[1])
		if err != nil {
			return err
		}
		side, err := model.ParseSide(fields[2])
		if err != nil {
			return err
		}
		quantity, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return errors.Wrap(ErrBadRecord, line)
		}
		price, err := tick.Parse(fields[4])
		if err != nil {
			return err
		}
		state, err := model.ParseInquiryState(fields[5])
		if err != nil {
			return err
		}

		c.service.OnMessage(model.Inquiry{
			InquiryID: fields[0],
			Product:   product,
			Side:      side,
			Quantity:  quantity,
			Price:     price,
			State:     state,
		})
	}
	return scanner.Err()
}
