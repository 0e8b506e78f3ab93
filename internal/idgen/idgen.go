// Package idgen generates order and inquiry identifiers from an explicit
// seedable source, keeping randomness out of the decision paths' callers.
package idgen

import "math/rand"

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generator produces fixed-length alphanumeric identifiers.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator with its own seeded source.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// ID returns prefix followed by n random characters from the alphabet.
func (g *Generator) ID(prefix string, n int) string {
	b := make([]byte, 0, len(prefix)+n)
	b = append(b, prefix...)
	for i := 0; i < n; i++ {
		b = append(b, alphabet[g.rng.Intn(len(alphabet))])
	}
	return string(b)
}
