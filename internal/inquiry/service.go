// Package inquiry runs the customer inquiry negotiation. A RECEIVED inquiry
// is auto-quoted: the connector synthesizes a QUOTED copy and resubmits it,
// then a DONE copy, all inside the original ingress call. DONE inquiries are
// dropped from the active store; every transition fans out.
package inquiry

import (
	"github.com/yanun0323/errors"

	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/service"
)

var ErrUnknownInquiry = errors.New("unknown inquiry")

// Service owns the active inquiry store.
type Service struct {
	store     *service.Store[model.Inquiry]
	listeners service.Registry[model.Inquiry]
	connector *Connector
}

// New creates the inquiry service and its connector.
func New(products *model.ProductStore) *Service {
	s := &Service{store: service.NewStore[model.Inquiry]()}
	s.connector = &Connector{service: s, products: products}
	return s
}

// GetData returns an active inquiry by inquiry id.
func (s *Service) GetData(key string) (model.Inquiry, bool) {
	return s.store.Get(key)
}

// OnMessage applies an inquiry to the store and fans it out, then hands a
// RECEIVED inquiry back to the connector for the synchronous quote round
// trip. DONE is terminal and leaves the store; all other states upsert.
func (s *Service) OnMessage(i model.Inquiry) {
	if i.State == model.InquiryDone {
		s.store.Delete(i.InquiryID)
	} else {
		s.store.Put(i.InquiryID, i)
	}
	s.listeners.NotifyAdd(i)

	if i.State == model.InquiryReceived {
		s.connector.Publish(i)
	}
}

// AddListener registers a listener; dispatch follows registration order.
func (s *Service) AddListener(l service.Listener[model.Inquiry]) {
	s.listeners.Add(l)
}

// GetListeners returns the registered listeners in order.
func (s *Service) GetListeners() []service.Listener[model.Inquiry] {
	return s.listeners.Listeners()
}

// Connector returns the connector.
func (s *Service) Connector() *Connector { return s.connector }

// SendQuote quotes an active inquiry at the given price and resubmits it.
func (s *Service) SendQuote(inquiryID string, price float64) error {
	i, ok := s.store.Get(inquiryID)
	if !ok {
		return errors.Wrap(ErrUnknownInquiry, inquiryID)
	}
	i.Price = price
	i.State = model.InquiryQuoted
	s.OnMessage(i)
	return nil
}

// RejectInquiry rejects an active inquiry and resubmits it.
func (s *Service) RejectInquiry(inquiryID string) error {
	i, ok := s.store.Get(inquiryID)
	if !ok {
		return errors.Wrap(ErrUnknownInquiry, inquiryID)
	}
	i.State = model.InquiryRejected
	s.OnMessage(i)
	return nil
}
