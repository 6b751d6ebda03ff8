package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"

	"github.com/theflywheel/fhash"
)

func main() {
	cfg := fhash.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	suggested, err := fhash.SuggestSeed(cfg.Capacity)
	if err != nil {
		log.Fatalf("Failed to pick a prime seed: %v", err)
	}
	seed := env.Int("FHASH_PRIME_SEED", suggested)

	pt, err := fhash.NewPrimeTable(seed, cfg)
	if err != nil {
		log.Fatalf("Failed to create prime table: %v", err)
	}
	fmt.Printf("Prime table ready: capacity=%d seed=%d\n", pt.Capacity(), pt.Seed())

	for _, v := range []int{10, 17, 24, 3, 42, 99} {
		pt.Insert(v)
	}
	fmt.Printf("Inserted %d values\n", pt.Len())

	for _, v := range []int{10, 17, 5} {
		if e, found := pt.Find(v); found {
			fmt.Printf("Value %d => bucket %d, position %d\n", v, e.Bucket, e.Position)
		} else {
			fmt.Printf("Value %d not found\n", v)
		}
	}

	if err := pt.Delete(10); err != nil {
		log.Fatalf("Failed to delete 10: %v", err)
	}
	if err := pt.Delete(10); errors.Is(err, fhash.ErrNotFound) {
		fmt.Printf("Second delete rejected: %v\n", err)
	}

	if err := pt.Fprint(os.Stdout); err != nil {
		log.Fatalf("Failed to print table: %v", err)
	}

	bt, err := fhash.NewBkdrTable(env.Int("FHASH_BKDR_SEED", 31), cfg)
	if err != nil {
		log.Fatalf("Failed to create BKDR table: %v", err)
	}
	bt.Insert("abc")
	for _, s := range []string{"abc", "xyz", "ak"} {
		fmt.Printf("%q (index %d) present: %v\n", s, fhash.BkdrHash(bt.Seed(), s, bt.Capacity()), bt.Find(s))
	}

	fmt.Println("Example completed successfully")
}
