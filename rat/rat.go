// package rat provides small rationals and finds them for arbitrary floats.
package rat

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	ErrZeroDenominator = errors.New("zero denominator")
	ErrNonFinite       = errors.New("not finite")
	ErrOutOfRange      = errors.New("does not fit in 32 bits")
	ErrBadBound        = errors.New("denominator bound must be at least 1")
)

// Rat is a rational with 32 bit numerator and denominator. Rats returned from
// New and Approximate are in lowest terms, and the denominator is positive
// unless moving the sign would overflow (for example New(1, math.MinInt32)).
type Rat struct {
	Num, Den int32
}

// New returns num/den in lowest terms. The only failure is a zero
// denominator.
func New(num, den int32) (Rat, error) {
	if den == 0 {
		return Rat{}, fmt.Errorf("%d/%d: %w", num, den, ErrZeroDenominator)
	}
	return reduce(int64(num), int64(den)), nil
}

func (r Rat) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Float converts a Rat to a float, dividing in T's precision.
func Float[T constraints.Float](r Rat) T {
	return T(r.Num) / T(r.Den)
}

// reduce divides out the common factors of n and d, both of which must fit in
// an int32 and d must not be zero.
func reduce(n, d int64) Rat {
	g := gcd(abs(n), abs(d))
	n, d = n/g, d/g
	if d < 0 && n != math.MinInt32 && d != math.MinInt32 {
		n, d = -n, -d
	}
	return Rat{Num: int32(n), Den: int32(d)}
}

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
