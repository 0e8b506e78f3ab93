// Package datagen writes the synthetic ingress files. All randomness flows
// from a single seeded source so generated data is reproducible; generated
// prices always land on the 1/256 tick lattice.
package datagen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ycsun666/MTH9815-Final/internal/codec"
	"github.com/ycsun666/MTH9815-Final/internal/idgen"
	"github.com/ycsun666/MTH9815-Final/internal/model"
	"github.com/ycsun666/MTH9815-Final/internal/tick"
)

const (
	bookDepth = 5
	idLen     = 11
)

var (
	quantities = []int64{1_000_000, 2_000_000, 3_000_000, 4_000_000, 5_000_000}
	books      = []string{"TRSY1", "TRSY2", "TRSY3"}
)

// Generator produces the synthetic ingress files.
type Generator struct {
	rng *rand.Rand
	ids *idgen.Generator
}

// New creates a generator from a seed.
func New(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		ids: idgen.New(seed),
	}
}

// WriteAll generates every ingress file under dir.
func (g *Generator) WriteAll(dir string, products []model.Bond, pricePoints, bookPoints int) error {
	writers := []struct {
		name  string
		write func(io.Writer, []model.Bond) error
	}{
		{"prices.txt", func(w io.Writer, p []model.Bond) error { return g.WritePrices(w, p, pricePoints) }},
		{"marketdata.txt", func(w io.Writer, p []model.Bond) error { return g.WriteOrderBooks(w, p, bookPoints) }},
		{"trades.txt", g.WriteTrades},
		{"inquiries.txt", g.WriteInquiries},
	}
	for _, target := range writers {
		if err := g.writeFile(filepath.Join(dir, target.name), products, target.write); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeFile(path string, products []model.Bond, write func(io.Writer, []model.Bond) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(f)
	if err := write(buf, products); err != nil {
		f.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePrices emits n quotes per product. The mid oscillates one tick per
// quote between 99 and 101; the spread is randomly two or four ticks so both
// sides stay on the lattice.
func (g *Generator) WritePrices(w io.Writer, products []model.Bond, n int) error {
	if _, err := fmt.Fprintln(w, "Timestamp,CUSIP,Bid,Ask"); err != nil {
		return err
	}

	for _, product := range products {
		mid := 99.0
		rising := true
		now := time.Now()

		for i := 0; i < n; i++ {
			half := float64(1+g.rng.Intn(2)) / tick.TicksPerPoint
			now = now.Add(g.step())

			bid := mid - half
			ask := mid + half
			_, err := fmt.Fprintf(w, "%s,%s,%s,%s\n",
				codec.Timestamp(now), product.CUSIP, tick.Format(bid), tick.Format(ask))
			if err != nil {
				return err
			}

			if rising {
				mid += 1.0 / tick.TicksPerPoint
			} else {
				mid -= 1.0 / tick.TicksPerPoint
			}
			switch {
			case ask >= 101.0:
				rising = false
			case bid <= 99.0:
				rising = true
			}
		}
	}
	return nil
}

// WriteOrderBooks emits n depth records per product, five levels a side with
// sizes of one million per level index. The per-level spread oscillates
// between two and eight ticks in steps of two, keeping every level on the
// lattice.
func (g *Generator) WriteOrderBooks(w io.Writer, products []model.Bond, n int) error {
	if _, err := fmt.Fprint(w, "Timestamp,CUSIP"); err != nil {
		return err
	}
	for level := 1; level <= bookDepth; level++ {
		if _, err := fmt.Fprintf(w, ",Bid%d,BidSize%d,Ask%d,AskSize%d", level, level, level, level); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for _, product := range products {
		mid := 99.0
		widening := true
		spreadTicks := 2
		now := time.Now()

		for i := 0; i < n; i++ {
			now = now.Add(g.step())
			if _, err := fmt.Fprintf(w, "%s,%s", codec.Timestamp(now), product.CUSIP); err != nil {
				return err
			}
			for level := 1; level <= bookDepth; level++ {
				offset := float64(spreadTicks*level/2) / tick.TicksPerPoint
				size := int64(level) * 1_000_000
				_, err := fmt.Fprintf(w, ",%s,%d,%s,%d",
					tick.Format(mid-offset), size, tick.Format(mid+offset), size)
				if err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}

			if widening {
				spreadTicks += 2
			} else {
				spreadTicks -= 2
			}
			switch {
			case spreadTicks >= 8:
				widening = false
			case spreadTicks <= 2:
				widening = true
			}
		}
	}
	return nil
}

// WriteTrades emits ten trades per product, alternating BUY/SELL with
// rotating books and quantities. Buys price in [99,100), sells in [100,101).
func (g *Generator) WriteTrades(w io.Writer, products []model.Bond) error {
	for _, product := range products {
		for i := 0; i < 10; i++ {
			side := model.SideBuy
			if i%2 == 1 {
				side = model.SideSell
			}
			_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%d,%s\n",
				product.CUSIP,
				g.ids.ID("T", idLen),
				tick.Format(g.price(side)),
				books[i%len(books)],
				quantities[i%len(quantities)],
				side)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteInquiries emits ten RECEIVED inquiries per product with the same
// side, quantity and price rotation as trades.
func (g *Generator) WriteInquiries(w io.Writer, products []model.Bond) error {
	for _, product := range products {
		for i := 0; i < 10; i++ {
			side := model.SideBuy
			if i%2 == 1 {
				side = model.SideSell
			}
			_, err := fmt.Fprintf(w, "%s,%s,%s,%d,%s,%s\n",
				g.ids.ID("I", idLen),
				product.CUSIP,
				side,
				quantities[i%len(quantities)],
				tick.Format(g.price(side)),
				model.InquiryReceived)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) step() time.Duration {
	return time.Duration(1+g.rng.Intn(20)) * time.Millisecond
}

// price returns a lattice point in [99,100) for buys or [100,101) for sells.
func (g *Generator) price(side model.Side) float64 {
	base := 99.0
	if side == model.SideSell {
		base = 100.0
	}
	return base + float64(g.rng.Intn(tick.TicksPerPoint))/tick.TicksPerPoint
}
