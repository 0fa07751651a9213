// check-roundtrip converts every small ratio to cents and back again, and
// reports any that don't come back to the same frequency.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/tuning"
)

var (
	maxFlag       = flag.Int("max", 50, "check every n/d with 1 <= n, d <= `max`")
	workersFlag   = flag.Int("workers", runtime.NumCPU(), "maximum `number` of numerators to check at once")
	toleranceFlag = flag.Float64("tolerance", 1e-9, "relative `tolerance` when comparing proportions")
)

// maxLimit keeps -max well inside int32 and the run time reasonable.
const maxLimit = 1 << 14

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("check-roundtrip: ")

	if *maxFlag < 1 || *maxFlag > maxLimit {
		log.Fatalf("-max must be between 1 and %d, got %d", maxLimit, *maxFlag)
	}
	if *workersFlag < 1 {
		log.Fatalf("-workers must be positive, got %d", *workersFlag)
	}

	fails, err := check(interruptContext(), int32(*maxFlag), *workersFlag, *toleranceFlag)
	if err != nil {
		log.Fatal(err)
	}
	p := message.NewPrinter(language.English)
	for _, f := range fails {
		p.Printf("%v\t%v\t%v\n", f.in, f.via, f.reason())
	}
	log.Print(p.Sprintf("checked %d ratios, %d failed", (*maxFlag)*(*maxFlag), len(fails)))
	if len(fails) > 0 {
		os.Exit(1)
	}
}

// failure is a ratio that didn't survive the trip.
type failure struct {
	in, via, out tuning.Interval
	err          error
}

func (f failure) reason() string {
	if f.err != nil {
		return f.err.Error()
	}
	return fmt.Sprintf("came back as %v", f.out)
}

// check tries every n/d up to limit, one numerator per goroutine with at most
// workers running at once. Failures are returned in order of numerator then
// denominator.
func check(ctx context.Context, limit int32, workers int, tolerance float64) ([]failure, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([][]failure, limit)
	for n := int32(1); n <= limit; n++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[n-1] = checkNumerator(n, limit, tolerance)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var fails []failure
	for _, r := range results {
		fails = append(fails, r...)
	}
	return fails, nil
}

func checkNumerator(n, limit int32, tolerance float64) []failure {
	var fails []failure
	for d := int32(1); d <= limit; d++ {
		in, err := tuning.NewRatio(n, d)
		if err != nil {
			fails = append(fails, failure{err: err})
			continue
		}
		via, err := in.ToCents()
		if err != nil {
			fails = append(fails, failure{in: in, err: err})
			continue
		}
		out, err := via.ToRatio()
		if err != nil {
			fails = append(fails, failure{in: in, via: via, err: err})
			continue
		}
		want := in.Proportion()
		if math.Abs(out.Proportion()-want) > tolerance*want {
			fails = append(fails, failure{in: in, via: via, out: out})
		}
	}
	return fails
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
