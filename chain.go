package fhash

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Entry locates one stored key
type Entry[K any] struct {
	Bucket   int // bucket index the key hashed to
	Position int // offset within the bucket's chain, 0 is the head
	Key      K
}

// ChainTable is a fixed-capacity hash table with separate chaining.
//
// Every bucket owns a slice of keys in insertion order. Only the first span
// buckets are addressed; the rest of the capacity stays empty. A ChainTable
// is not safe for concurrent use, see SyncChainTable.
type ChainTable[K comparable] struct {
	policy  Policy[K]
	buckets [][]K
	span    int
	count   int
}

// NewChainTable creates an empty table addressing buckets [0, span)
func NewChainTable[K comparable](policy Policy[K], span int, cfg Config) (*ChainTable[K], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ct := &ChainTable[K]{buckets: make([][]K, cfg.Capacity)}
	if err := ct.Reset(policy, span); err != nil {
		return nil, err
	}
	return ct, nil
}

// Reset empties every chain and installs a new policy and span.
// On error the table is left unchanged.
func (ct *ChainTable[K]) Reset(policy Policy[K], span int) error {
	if span <= 0 || span > len(ct.buckets) {
		return errors.WithMessagef(ErrInvalidSeed, "span %d outside (0, %d]", span, len(ct.buckets))
	}
	if err := validatePolicy(policy, span); err != nil {
		return err
	}
	for i := range ct.buckets {
		ct.buckets[i] = nil
	}
	ct.policy = policy
	ct.span = span
	ct.count = 0
	return nil
}

// Insert appends key at the tail of its bucket's chain. Duplicates are kept.
func (ct *ChainTable[K]) Insert(key K) {
	idx := ct.policy.Index(key, ct.span)
	ct.buckets[idx] = append(ct.buckets[idx], key)
	ct.count++
}

// Find returns the first entry equal to key in chain order
func (ct *ChainTable[K]) Find(key K) (Entry[K], bool) {
	idx := ct.policy.Index(key, ct.span)
	pos := slices.Index(ct.buckets[idx], key)
	if pos < 0 {
		return Entry[K]{}, false
	}
	return Entry[K]{Bucket: idx, Position: pos, Key: ct.buckets[idx][pos]}, true
}

// Delete removes the first entry equal to key, keeping the order of the rest
func (ct *ChainTable[K]) Delete(key K) error {
	idx := ct.policy.Index(key, ct.span)
	chain := ct.buckets[idx]
	pos := slices.Index(chain, key)
	if pos < 0 {
		return errors.WithMessagef(ErrNotFound, "key %v in bucket %d", key, idx)
	}
	chain = slices.Delete(chain, pos, pos+1)
	if len(chain) == 0 {
		chain = nil
	}
	ct.buckets[idx] = chain
	ct.count--
	return nil
}

// All yields every addressed bucket with a copy of its chain, empty buckets included
func (ct *ChainTable[K]) All() iter.Seq2[int, []K] {
	return func(yield func(int, []K) bool) {
		for i := 0; i < ct.span; i++ {
			if !yield(i, slices.Clone(ct.buckets[i])) {
				return
			}
		}
	}
}

// Len returns the number of stored keys, duplicates counted
func (ct *ChainTable[K]) Len() int { return ct.count }

// Span returns the number of addressed buckets
func (ct *ChainTable[K]) Span() int { return ct.span }

// Capacity returns the fixed bucket count
func (ct *ChainTable[K]) Capacity() int { return len(ct.buckets) }

// Stats summarises bucket occupancy over the addressed span
func (ct *ChainTable[K]) Stats() Stats {
	st := Stats{Buckets: ct.span, Entries: ct.count}
	for i := 0; i < ct.span; i++ {
		n := len(ct.buckets[i])
		if n > 0 {
			st.Occupied++
		}
		st.LongestChain = max(st.LongestChain, n)
	}
	st.LoadFactor = float64(st.Entries) / float64(st.Buckets)
	return st
}
