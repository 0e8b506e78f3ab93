package model

// Inquiry is a customer price request working through the negotiation
// state machine.
type Inquiry struct {
	InquiryID string
	Product   Bond
	Side      Side
	Quantity  int64
	Price     float64
	State     InquiryState
}
