package rat

import (
	"errors"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	for _, c := range []struct {
		num, den int32
		out      Rat
	}{
		{3, 2, Rat{3, 2}},
		{6, 4, Rat{3, 2}},
		{-6, 4, Rat{-3, 2}},
		{6, -4, Rat{-3, 2}},
		{-6, -4, Rat{3, 2}},
		{0, 5, Rat{0, 1}},
		{0, -5, Rat{0, 1}},
		{7, 1, Rat{7, 1}},
		{math.MaxInt32, math.MaxInt32, Rat{1, 1}},
		{math.MinInt32, math.MinInt32, Rat{1, 1}},
		{2, math.MinInt32, Rat{-1, 1 << 30}},
		// Negating either of these would overflow, so the sign stays put.
		{math.MinInt32, -1, Rat{math.MinInt32, -1}},
		{1, math.MinInt32, Rat{1, math.MinInt32}},
	} {
		got, err := New(c.num, c.den)
		if err != nil {
			t.Errorf("New(%d, %d): %v", c.num, c.den, err)
			continue
		}
		if got != c.out {
			t.Errorf("New(%d, %d) = %v, want: %v", c.num, c.den, got, c.out)
		}
	}
}

func TestNewZeroDenominator(t *testing.T) {
	for _, num := range []int32{0, 1, -1, 5, math.MaxInt32, math.MinInt32} {
		_, err := New(num, 0)
		if !errors.Is(err, ErrZeroDenominator) {
			t.Errorf("New(%d, 0): got err %v, want: %v", num, err, ErrZeroDenominator)
		}
	}
}

func TestFloat(t *testing.T) {
	for _, c := range []struct {
		r   Rat
		out float64
	}{
		{Rat{3, 2}, 1.5},
		{Rat{-1, 4}, -0.25},
		{Rat{0, 1}, 0},
		{Rat{math.MinInt32, -1}, 1 << 31},
	} {
		if got := Float[float64](c.r); got != c.out {
			t.Errorf("Float(%v) = %v, want: %v", c.r, got, c.out)
		}
		if got := Float[float32](c.r); got != float32(c.out) {
			t.Errorf("Float[float32](%v) = %v, want: %v", c.r, got, float32(c.out))
		}
	}
}

func TestString(t *testing.T) {
	for _, c := range []struct {
		r   Rat
		out string
	}{
		{Rat{3, 2}, "3/2"},
		{Rat{-3, 2}, "-3/2"},
		{Rat{0, 1}, "0/1"},
	} {
		if got := c.r.String(); got != c.out {
			t.Errorf("%#v.String() = %q, want: %q", c.r, got, c.out)
		}
	}
}
