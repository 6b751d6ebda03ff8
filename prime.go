package fhash

import (
	"fmt"
	"io"
	"iter"

	"github.com/pkg/errors"
)

// PrimeTable stores integers chained under value mod seed
type PrimeTable struct {
	chains *ChainTable[int]
	seed   int
}

// NewPrimeTable creates an empty table hashing by seed
func NewPrimeTable(seed int, cfg Config) (*PrimeTable, error) {
	ct, err := NewChainTable[int](PrimeModulo{Seed: seed}, seed, cfg)
	if err != nil {
		return nil, err
	}
	return &PrimeTable{chains: ct, seed: seed}, nil
}

// PrimeHash returns value mod seed, never negative
func PrimeHash(seed, value int) (int, error) {
	if seed <= 0 {
		return 0, errors.WithMessagef(ErrInvalidSeed, "seed %d", seed)
	}
	return PrimeModulo{Seed: seed}.Index(value, seed), nil
}

// Init empties every chain and switches to a new seed.
// seed must lie in (0, Capacity()].
func (pt *PrimeTable) Init(seed int) error {
	if err := pt.chains.Reset(PrimeModulo{Seed: seed}, seed); err != nil {
		return err
	}
	pt.seed = seed
	return nil
}

// Insert appends value to the tail of its chain
func (pt *PrimeTable) Insert(value int) {
	pt.chains.Insert(value)
}

// Find returns the first occurrence of value
func (pt *PrimeTable) Find(value int) (Entry[int], bool) {
	return pt.chains.Find(value)
}

// Delete removes the first occurrence of value. It returns ErrNotFound when
// value is absent and leaves the table untouched.
func (pt *PrimeTable) Delete(value int) error {
	if err := pt.chains.Delete(value); err != nil {
		return errors.WithMessagef(err, "delete %d", value)
	}
	return nil
}

// All yields (index, values) for every bucket in [0, seed)
func (pt *PrimeTable) All() iter.Seq2[int, []int] {
	return pt.chains.All()
}

// Fprint writes one "index i: v, v, " line per bucket
func (pt *PrimeTable) Fprint(w io.Writer) error {
	for i, values := range pt.All() {
		if _, err := fmt.Fprintf(w, "index %d: ", i); err != nil {
			return err
		}
		for _, v := range values {
			if _, err := fmt.Fprintf(w, "%d, ", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Seed returns the modulus, which is also the number of addressed buckets
func (pt *PrimeTable) Seed() int { return pt.seed }

// Len returns the number of stored values, duplicates counted
func (pt *PrimeTable) Len() int { return pt.chains.Len() }

// Capacity returns the fixed bucket count
func (pt *PrimeTable) Capacity() int { return pt.chains.Capacity() }

// Stats summarises chain lengths over buckets [0, seed)
func (pt *PrimeTable) Stats() Stats { return pt.chains.Stats() }
