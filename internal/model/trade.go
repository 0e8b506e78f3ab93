package model

import "sort"

// Trade is an executed transaction booked into a particular book.
type Trade struct {
	Product  Bond
	TradeID  string
	Price    float64
	Book     string
	Quantity int64
	Side     Side
}

// Position is the holding of a product across books, keyed by book name
// with signed quantities.
type Position struct {
	Product Bond
	Books   map[string]int64
}

// NewPosition creates an empty position for a product.
func NewPosition(product Bond) Position {
	return Position{Product: product, Books: make(map[string]int64)}
}

// Quantity returns the signed quantity held in one book.
func (p Position) Quantity(book string) int64 { return p.Books[book] }

// Add accumulates a signed quantity into a book.
func (p Position) Add(book string, quantity int64) {
	p.Books[book] += quantity
}

// Aggregate sums the signed quantities across all books. The sum is
// recomputed on every call, never cached.
func (p Position) Aggregate() int64 {
	var total int64
	for _, q := range p.Books {
		total += q
	}
	return total
}

// BookNames returns the book names in sorted order.
func (p Position) BookNames() []string {
	names := make([]string, 0, len(p.Books))
	for name := range p.Books {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone deep-copies the position so listeners receive an owned value.
func (p Position) Clone() Position {
	c := Position{Product: p.Product, Books: make(map[string]int64, len(p.Books))}
	for name, q := range p.Books {
		c.Books[name] = q
	}
	return c
}
