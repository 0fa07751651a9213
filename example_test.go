package tuning_test

import (
	"fmt"
	"log"

	"github.com/pfcm/tuning"
)

func Example() {
	fifth, err := tuning.NewRatio(3, 2)
	if err != nil {
		log.Fatal(err)
	}
	c, err := fifth.ToCents()
	if err != nil {
		log.Fatal(err)
	}
	size, _ := c.Cents()
	fmt.Printf("%v is %.3f cents\n", fifth, size)

	third, err := tuning.NewCents(386.3137)
	if err != nil {
		log.Fatal(err)
	}
	r, err := third.ToRatio()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%v is %v\n", third, r)
	// Output:
	// 3/2 is 701.955 cents
	// 386.3137c is 5/4
}

func ExampleParse() {
	for _, s := range []string{"1200c", "7/4", "3/0"} {
		i, err := tuning.Parse(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(i.Kind(), i.Proportion())
	}
	// Output:
	// cents 2
	// ratio 1.75
	// 3/0: invalid interval: zero denominator
}
