package tuning

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads an interval written as a ratio ("3/2", "-5/4") or in cents
// ("701.955c", or just "701.955"). It accepts everything Interval.String
// produces.
func Parse(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 32)
		if err != nil {
			return Interval{}, fmt.Errorf("parsing %q: numerator: %w", s, err)
		}
		d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 32)
		if err != nil {
			return Interval{}, fmt.Errorf("parsing %q: denominator: %w", s, err)
		}
		return NewRatio(int32(n), int32(d))
	}
	c, err := strconv.ParseFloat(strings.TrimSuffix(s, "c"), 64)
	if err != nil {
		return Interval{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return NewCents(c)
}
