// Package tick converts US treasury prices between decimal notation and the
// fractional "points-32nds-256ths" string notation, e.g. 99-162 for
// 99 + 16/32 + 2/256. A trailing '+' denotes the half tick 4/256.
package tick

import (
	"math"
	"strconv"

	"github.com/yanun0323/errors"
)

// TicksPerPoint is the price resolution: one tick is 1/256 of a point.
const TicksPerPoint = 256

var ErrInvalidPrice = errors.New("invalid fractional price")

// Parse converts a fractional price string to its decimal value.
// The format is "<int>-<xy><z>" where xy is a two-digit count of 32nds and
// z is a single digit of 256ths remainder, or '+' for the half tick 4.
func Parse(s string) (float64, error) {
	dash := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			dash = i
			break
		}
	}
	if dash <= 0 || dash+4 != len(s) {
		return 0, errors.Wrap(ErrInvalidPrice, s)
	}

	points, err := strconv.ParseInt(s[:dash], 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidPrice, s)
	}

	xy, err := strconv.ParseInt(s[dash+1:dash+3], 10, 64)
	if err != nil || xy < 0 || xy > 31 {
		return 0, errors.Wrap(ErrInvalidPrice, s)
	}

	var z int64
	switch c := s[dash+3]; {
	case c == '+':
		z = 4
	case c >= '0' && c <= '7':
		z = int64(c - '0')
	default:
		return 0, errors.Wrap(ErrInvalidPrice, s)
	}

	ticks := xy*8 + z
	return float64(points) + float64(ticks)/TicksPerPoint, nil
}

// Format converts a decimal price to fractional notation, rounding to the
// nearest tick. Prices on the tick lattice round-trip exactly.
func Format(p float64) string {
	points := int64(math.Floor(p))
	ticks := int64(math.Round((p - float64(points)) * TicksPerPoint))
	if ticks == TicksPerPoint {
		points++
		ticks = 0
	}

	xy := ticks / 8
	z := ticks % 8

	buf := make([]byte, 0, 8)
	buf = strconv.AppendInt(buf, points, 10)
	buf = append(buf, '-')
	if xy < 10 {
		buf = append(buf, '0')
	}
	buf = strconv.AppendInt(buf, xy, 10)
	buf = strconv.AppendInt(buf, z, 10)
	return string(buf)
}
