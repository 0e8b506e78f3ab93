// Package codec serializes entities into the comma-joined text records used
// by the historical and GUI output streams. Field order matches the record
// formats consumed downstream and must not change.
package codec

import (
	"strconv"
	"strings"
	"time"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/tick"
)

// TimestampLayout formats timestamps with millisecond precision.
const TimestampLayout = "2006-01-02 15:04:05.000"

// Timestamp renders a time in the output stream format.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// PriceRecord renders productId,mid,spread with fractional prices.
func PriceRecord(p model.Price) string {
	return strings.Join([]string{
		p.Product.CUSIP,
		tick.Format(p.Mid),
		tick.Format(p.Spread),
	}, ",")
}

// PositionRecord renders productId followed by book,quantity pairs in
// sorted book order.
func PositionRecord(p model.Position) string {
	fields := make([]string, 0, 1+2*len(p.Books))
	fields = append(fields, p.Product.CUSIP)
	for _, book := range p.BookNames() {
		fields = append(fields, book, strconv.FormatInt(p.Books[book], 10))
	}
	return strings.Join(fields, ",")
}

// PV01Record renders productId,pv01,quantity.
func PV01Record(v model.PV01) string {
	return strings.Join([]string{
		v.Product.CUSIP,
		v.Value.String(),
		strconv.FormatInt(v.Quantity, 10),
	}, ",")
}

// ExecutionOrderRecord renders
// productId,orderId,side,type,price,visible,hidden,parentId,isChild.
func ExecutionOrderRecord(o model.ExecutionOrder) string {
	side := "Bid"
	if o.Side == model.Offer {
		side = "Ask"
	}
	child := "False"
	if o.IsChild {
		child = "True"
	}
	return strings.Join([]string{
		o.Product.CUSIP,
		o.OrderID,
		side,
		o.Type.String(),
		tick.Format(o.Price),
		strconv.FormatInt(o.VisibleQuantity, 10),
		strconv.FormatInt(o.HiddenQuantity, 10),
		o.ParentOrderID,
		child,
	}, ",")
}

// PriceStreamOrderRecord renders price,visible,hidden,side.
func PriceStreamOrderRecord(o model.PriceStreamOrder) string {
	return strings.Join([]string{
		tick.Format(o.Price),
		strconv.FormatInt(o.VisibleQuantity, 10),
		strconv.FormatInt(o.HiddenQuantity, 10),
		o.Side.String(),
	}, ",")
}

// PriceStreamRecord renders productId followed by the bid and offer orders.
func PriceStreamRecord(s model.PriceStream) string {
	return strings.Join([]string{
		s.Product.CUSIP,
		PriceStreamOrderRecord(s.Bid),
		PriceStreamOrderRecord(s.Offer),
	}, ",")
}

// InquiryRecord renders inquiryId,productId,side,quantity,price,state.
func InquiryRecord(i model.Inquiry) string {
	return strings.Join([]string{
		i.InquiryID,
		i.Product.CUSIP,
		i.Side.String(),
		strconv.FormatInt(i.Quantity, 10),
		tick.Format(i.Price),
		i.State.String(),
	}, ",")
}
