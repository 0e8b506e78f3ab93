package model

import (
	"time"

	"github.com/yanun0323/errors"
)

var ErrUnknownProduct = errors.New("unknown product")

// Bond is a tradable treasury instrument. The CUSIP uniquely determines the
// static terms.
type Bond struct {
	CUSIP    string
	Ticker   string
	Coupon   float64
	Maturity time.Time
}

// ProductStore is the static reference data for all tradable products.
type ProductStore struct {
	bonds map[string]Bond
	order []string
}

// NewProductStore builds a store preserving the given product order.
func NewProductStore(bonds []Bond) *ProductStore {
	s := &ProductStore{
		bonds: make(map[string]Bond, len(bonds)),
		order: make([]string, 0, len(bonds)),
	}
	for _, b := range bonds {
		if _, ok := s.bonds[b.CUSIP]; ok {
			continue
		}
		s.bonds[b.CUSIP] = b
		s.order = append(s.order, b.CUSIP)
	}
	return s
}

// Get looks up a product by CUSIP.
func (s *ProductStore) Get(cusip string) (Bond, error) {
	b, ok := s.bonds[cusip]
	if !ok {
		return Bond{}, errors.Wrap(ErrUnknownProduct, cusip)
	}
	return b, nil
}

// All returns every product in registration order.
func (s *ProductStore) All() []Bond {
	bonds := make([]Bond, 0, len(s.order))
	for _, cusip := range s.order {
		bonds = append(bonds, s.bonds[cusip])
	}
	return bonds
}

// Len returns the number of products.
func (s *ProductStore) Len() int { return len(s.order) }
