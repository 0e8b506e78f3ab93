package model

import "github.com/yanun0323/errors"

var ErrUnknownEnum = errors.New("unknown enum value")

// Side is the direction of a trade or inquiry.
type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	if s == SideSell {
		return "SELL"
	}
	return "BUY"
}

// ParseSide parses BUY or SELL.
func ParseSide(s string) (Side, error) {
	switch s {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	default:
		return 0, errors.Wrap(ErrUnknownEnum, "side "+s)
	}
}

// PricingSide is the side of a quote or resting order.
type PricingSide uint8

const (
	Bid PricingSide = iota
	Offer
)

func (s PricingSide) String() string {
	if s == Offer {
		return "OFFER"
	}
	return "BID"
}

// OrderType is the execution order type.
type OrderType uint8

const (
	FOK OrderType = iota
	IOC
	Market
	Limit
	Stop
)

func (t OrderType) String() string {
	switch t {
	case FOK:
		return "FOK"
	case IOC:
		return "IOC"
	case Market:
		return "MARKET"
	case Limit:
		return "LIMIT"
	case Stop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// Venue is the market an execution order is routed to.
type Venue uint8

const (
	BrokerTec Venue = iota
	ESpeed
	CME
)

func (v Venue) String() string {
	switch v {
	case BrokerTec:
		return "BROKERTEC"
	case ESpeed:
		return "ESPEED"
	case CME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}

// InquiryState tracks the lifecycle of a customer inquiry.
type InquiryState uint8

const (
	InquiryReceived InquiryState = iota
	InquiryQuoted
	InquiryDone
	InquiryRejected
	InquiryCustomerRejected
)

func (s InquiryState) String() string {
	switch s {
	case InquiryReceived:
		return "RECEIVED"
	case InquiryQuoted:
		return "QUOTED"
	case InquiryDone:
		return "DONE"
	case InquiryRejected:
		return "REJECTED"
	case InquiryCustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ParseInquiryState parses an inquiry state name.
func ParseInquiryState(s string) (InquiryState, error) {
	switch s {
	case "RECEIVED":
		return InquiryReceived, nil
	case "QUOTED":
		return InquiryQuoted, nil
	case "DONE":
		return InquiryDone, nil
	case "REJECTED":
		return InquiryRejected, nil
	case "CUSTOMER_REJECTED":
		return InquiryCustomerRejected, nil
	default:
		return 0, errors.Wrap(ErrUnknownEnum, "inquiry state "+s)
	}
}
