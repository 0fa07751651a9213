// show-interval shows an interval as both a ratio and in cents.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/tuning"
	"github.com/pfcm/tuning/rat"
)

var (
	digitsFlag = flag.Int("digits", 3, "number of `digits` after the decimal point when printing cents")
	denomFlag  = flag.Int("max-denom", 0, "if set, also show the closest ratio with at most this `denominator`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("show-interval: ")

	if flag.NArg() < 1 {
		fail("Need at least one interval.")
	}
	if *digitsFlag < 0 {
		fail("-digits can't be negative.")
	}

	var intervals []tuning.Interval
	for _, arg := range flag.Args() {
		i, err := tuning.Parse(arg)
		if err != nil {
			fail(err.Error())
		}
		intervals = append(intervals, i)
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)
	show(w, message.NewPrinter(language.English), intervals, *digitsFlag, int32(*denomFlag))
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// show writes a row per interval. Conversions that fail are shown in place of
// the value.
func show(w io.Writer, p *message.Printer, intervals []tuning.Interval, digits int, maxDen int32) {
	header := []string{"interval", "kind", "ratio", "cents", "proportion"}
	if maxDen > 0 {
		header = append(header, fmt.Sprintf("ratio/%d", maxDen))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	centsFmt := fmt.Sprintf("%%.%dfc", digits)
	for _, i := range intervals {
		row := []string{i.String(), i.Kind().String()}

		if r, err := i.ToRatio(); err != nil {
			row = append(row, err.Error())
		} else {
			row = append(row, r.String())
		}

		if c, err := i.ToCents(); err != nil {
			row = append(row, err.Error())
		} else {
			cents, _ := c.Cents()
			row = append(row, p.Sprintf(centsFmt, cents))
		}

		row = append(row, p.Sprintf("%.6f", i.Proportion()))

		if maxDen > 0 {
			if r, err := rat.ApproximateBounded(i.Proportion(), maxDen); err != nil {
				row = append(row, err.Error())
			} else {
				row = append(row, r.String())
			}
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprintln(os.Stderr, help)
	os.Exit(1)
}

const help = `show-interval shows intervals as frequency ratios and in cents.
Usage:
	show-interval [-digits n] [-max-denom d] interval [interval...]

Where interval is a ratio like 3/2 or a size in cents like 701.955c (the c is
optional). Cents are converted to the closest ratio with a denominator of at
most 200.
`
