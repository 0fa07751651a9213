// package tuning models musical intervals, either as a size in cents or as a
// frequency ratio, and converts between the two.
package tuning

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/pfcm/tuning/rat"
)

// CentsPerOctave is the number of cents in a 2/1 frequency ratio.
const CentsPerOctave = 1200.0

var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrNonFiniteCents  = fmt.Errorf("%w: non-finite cents", ErrInvalidInterval)
	ErrZeroDenominator = fmt.Errorf("%w: %w", ErrInvalidInterval, rat.ErrZeroDenominator)

	// ErrNonPositiveProportion is returned when converting an interval
	// whose frequency multiplier is zero or negative, which has no size
	// in cents.
	ErrNonPositiveProportion = errors.New("non-positive proportion")
)

// Kind says which representation an Interval holds.
type Kind uint8

const (
	KindCents Kind = iota
	KindRatio
)

func (k Kind) String() string {
	switch k {
	case KindCents:
		return "cents"
	case KindRatio:
		return "ratio"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Interval is the distance between two pitches. It holds exactly one of a
// size in cents or a frequency ratio. Intervals are values: conversions return
// a new Interval. The zero Interval is unison, 0 cents.
type Interval struct {
	kind  Kind
	cents float64
	ratio rat.Rat
}

// NewCents makes an interval c cents wide. Fails if c is NaN or infinite.
func NewCents(c float64) (Interval, error) {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Interval{}, fmt.Errorf("%v: %w", c, ErrNonFiniteCents)
	}
	return Interval{kind: KindCents, cents: c}, nil
}

// NewRatio makes an interval with frequency ratio num/den, reduced to lowest
// terms. Fails only if den is zero; negative ratios are allowed here but can't
// be converted to cents.
func NewRatio(num, den int32) (Interval, error) {
	r, err := rat.New(num, den)
	if err != nil {
		return Interval{}, fmt.Errorf("%d/%d: %w", num, den, ErrZeroDenominator)
	}
	return Interval{kind: KindRatio, ratio: r}, nil
}

func (i Interval) Kind() Kind { return i.kind }

// Cents returns the size in cents, if i holds cents.
func (i Interval) Cents() (float64, bool) {
	return i.cents, i.kind == KindCents
}

// Ratio returns the frequency ratio, if i holds a ratio.
func (i Interval) Ratio() (rat.Rat, bool) {
	return i.ratio, i.kind == KindRatio
}

// Proportion is the frequency multiplier of the interval: 2^(cents/1200) or
// num/den.
func (i Interval) Proportion() float64 {
	if i.kind == KindRatio {
		return rat.Float[float64](i.ratio)
	}
	return math.Pow(2, i.cents/CentsPerOctave)
}

// ToCents returns the interval in cents. Intervals already in cents are
// returned as is. Ratios at or below zero fail with ErrNonPositiveProportion.
func (i Interval) ToCents() (Interval, error) {
	if i.kind == KindCents {
		return i, nil
	}
	p := i.Proportion()
	if p <= 0 {
		return Interval{}, fmt.Errorf("%v to cents: %w", i, ErrNonPositiveProportion)
	}
	return Interval{kind: KindCents, cents: math.Log2(p) * CentsPerOctave}, nil
}

// ToRatio returns the interval as the nearest ratio with a denominator of at
// most rat.MaxDenominator. Intervals already holding a ratio are returned as
// is. Fails if the interval is too wide to fit in a rat.Rat, or so narrow that
// it rounds to 0/1.
func (i Interval) ToRatio() (Interval, error) {
	if i.kind == KindRatio {
		return i, nil
	}
	r, err := rat.Approximate(i.Proportion())
	if err != nil {
		return Interval{}, fmt.Errorf("%v to ratio: %w", i, err)
	}
	if r.Num == 0 {
		return Interval{}, fmt.Errorf("%v to ratio: rounds to %v: %w", i, r, ErrNonPositiveProportion)
	}
	return Interval{kind: KindRatio, ratio: r}, nil
}

// String formats cents as, for example, "701.955c" and ratios as "3/2". The
// result can be read back with Parse.
func (i Interval) String() string {
	if i.kind == KindRatio {
		return i.ratio.String()
	}
	return strconv.FormatFloat(i.cents, 'g', -1, 64) + "c"
}
