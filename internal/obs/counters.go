// Package obs counts the entities flowing through the pipeline for the
// end-of-run summary.
package obs

import (
	"sync/atomic"

	"github.com/ycsun666/MTH9815-Final/internal/service"
)

// Kind identifies one counted entity flow.
type Kind int

const (
	KindPrice Kind = iota
	KindOrderBook
	KindExecution
	KindTrade
	KindPosition
	KindRisk
	KindStream
	KindInquiry
	kindCount
)

var kindNames = [kindCount]string{
	"prices",
	"order books",
	"executions",
	"trades",
	"positions",
	"risk entries",
	"streams",
	"inquiries",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Counters tallies entity flows.
type Counters struct {
	counts [kindCount]atomic.Uint64
}

// Inc adds one to a kind's tally.
func (c *Counters) Inc(k Kind) { c.counts[k].Add(1) }

// Get returns a kind's tally.
func (c *Counters) Get(k Kind) uint64 { return c.counts[k].Load() }

// Each visits every kind's tally in declaration order.
func (c *Counters) Each(fn func(Kind, uint64)) {
	for k := Kind(0); k < kindCount; k++ {
		fn(k, c.counts[k].Load())
	}
}

// Tally returns a listener counting one kind's flow.
func Tally[V any](c *Counters, k Kind) service.Listener[V] {
	return service.AddFunc[V](func(V) { c.Inc(k) })
}
