package rat

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// MaxDenominator is the largest denominator Approximate will return.
	MaxDenominator int32 = 200

	// Epsilon is the difference between 1 and the next float64.
	Epsilon = 0x1p-52
	// MinNormal is the smallest positive normal float64.
	MinNormal = 0x1p-1022
)

// Approximate finds the closest rational to x with a denominator of at most
// MaxDenominator.
func Approximate[T constraints.Float](x T) (Rat, error) {
	return ApproximateBounded(x, MaxDenominator)
}

// ApproximateBounded finds the closest rational to x with a denominator of
// at most maxDen. Only the fractional part of x is searched, the integer part
// is added back on afterwards. The search walks down the Stern-Brocot tree so
// takes O(maxDen) steps in the worst case.
//
// Fails if x is NaN or infinite, or if the result doesn't fit in a Rat.
func ApproximateBounded[T constraints.Float](x T, maxDen int32) (Rat, error) {
	if maxDen < 1 {
		return Rat{}, fmt.Errorf("%d: %w", maxDen, ErrBadBound)
	}
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, fmt.Errorf("approximating %v: %w", f, ErrNonFinite)
	}
	whole := math.Floor(f)
	if whole < math.MinInt32 || whole > math.MaxInt32 {
		return Rat{}, fmt.Errorf("approximating %v: %w", f, ErrOutOfRange)
	}
	r := farey(f-whole, int64(maxDen), nil)
	// r is already in lowest terms, and adding an integer keeps it there.
	num := r.num + int64(whole)*r.den
	if num < math.MinInt32 || num > math.MaxInt32 {
		return Rat{}, fmt.Errorf("approximating %v: %d/%d %w", f, num, r.den, ErrOutOfRange)
	}
	return Rat{Num: int32(num), Den: int32(r.den)}, nil
}

// frac is a fraction mid-search. The sums can exceed 32 bits for large
// bounds.
type frac struct {
	num, den int64
}

func (f frac) float() float64 { return float64(f.num) / float64(f.den) }

// farey finds the closest fraction to x, which must be in [0, 1], with
// denominator at most maxDen. It keeps a bracket lo <= x <= hi, starting with
// 0/1 and 1/1, and replaces one side with the mediant until the next mediant's
// denominator would be too big. The two bounds are then neighbours in the
// Farey sequence of order maxDen, so the nearer one is the answer.
//
// If visit is not nil it is called with the bracket before every step.
func farey(x float64, maxDen int64, visit func(lo, hi frac)) frac {
	lo, hi := frac{0, 1}, frac{1, 1}
	for lo.den < maxDen && hi.den <= maxDen {
		if visit != nil {
			visit(lo, hi)
		}
		m := frac{lo.num + hi.num, lo.den + hi.den}
		if m.den > maxDen {
			break
		}
		mf := m.float()
		switch {
		case almostEqual(x, mf):
			return m
		case x > mf:
			lo = m
		default:
			hi = m
		}
	}
	return nearer(x, lo, hi)
}

// nearer picks whichever of lo and hi is closer to x. Ties go to the larger
// denominator, then to lo.
func nearer(x float64, lo, hi frac) frac {
	dl := math.Abs(x - lo.float())
	dh := math.Abs(hi.float() - x)
	switch {
	case dl < dh:
		return lo
	case dh < dl:
		return hi
	case hi.den > lo.den:
		return hi
	}
	return lo
}

// almostEqual is true for exact equality or a difference below the normal
// range, nothing looser.
func almostEqual(x, y float64) bool {
	delta := math.Abs(x - y)
	return delta <= Epsilon*delta || delta < MinNormal
}
