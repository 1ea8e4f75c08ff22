// Package duration provides exact rational note durations. All arithmetic
// stays in integers; there is no floating point anywhere in comparisons.
package duration

import (
	"fmt"

	"github.com/tmakinen/partwise/errs"
)

// Duration is a rational fraction of a whole note, kept in lowest terms.
// The zero value is not a valid duration; construct through New.
type Duration struct {
	num int
	den int
}

// Common durations.
var (
	Whole        = mustNew(1, 1)
	Half         = mustNew(1, 2)
	Quarter      = mustNew(1, 4)
	Eighth       = mustNew(1, 8)
	Sixteenth    = mustNew(1, 16)
	ThirtySecond = mustNew(1, 32)
)

// New returns the duration num/den reduced to lowest terms. Both parts
// must be positive.
func New(num, den int) (Duration, error) {
	if num <= 0 || den <= 0 {
		return Duration{}, fmt.Errorf("%w: duration %d/%d must have positive numerator and denominator",
			errs.ErrInvalidArgument, num, den)
	}
	g := gcd(num, den)
	return Duration{num: num / g, den: den / g}, nil
}

func mustNew(num, den int) Duration {
	d, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return d
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Numerator returns the numerator of the reduced fraction.
func (d Duration) Numerator() int { return d.num }

// Denominator returns the denominator of the reduced fraction.
func (d Duration) Denominator() int { return d.den }

// IsZero reports whether d is the invalid zero value.
func (d Duration) IsZero() bool { return d.den == 0 }

// Add returns the exact sum of two durations.
func (d Duration) Add(o Duration) Duration {
	num := d.num*o.den + o.num*d.den
	den := d.den * o.den
	g := gcd(num, den)
	return Duration{num: num / g, den: den / g}
}

// Dotted returns the duration lengthened by half of itself.
func (d Duration) Dotted() Duration {
	num := d.num * 3
	den := d.den * 2
	g := gcd(num, den)
	return Duration{num: num / g, den: den / g}
}

// Cmp returns -1, 0 or 1 as d is shorter than, equal to or longer than o.
func (d Duration) Cmp(o Duration) int {
	// cross multiplication keeps the comparison exact
	lhs := d.num * o.den
	rhs := o.num * d.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Equal reports exact equality of the reduced fractions.
func (d Duration) Equal(o Duration) bool {
	return d == o
}

// Sum returns the exact sum of the given durations and false when the
// slice is empty.
func Sum(ds []Duration) (Duration, bool) {
	if len(ds) == 0 {
		return Duration{}, false
	}
	total := ds[0]
	for _, d := range ds[1:] {
		total = total.Add(d)
	}
	return total, true
}

func (d Duration) String() string {
	return fmt.Sprintf("%d/%d", d.num, d.den)
}
