package fhash

// BkdrTable records string presence under the BKDR hash.
//
// Distinct strings with the same hash share a flag. Find may therefore
// report a string that was never inserted, and Delete of one string forgets
// every string in its bucket.
type BkdrTable struct {
	flags *FlagTable[string]
	seed  int
}

// NewBkdrTable creates a table with every flag cleared. Common seeds are 31, 131, 1313, 13131.
func NewBkdrTable(seed int, cfg Config) (*BkdrTable, error) {
	ft, err := NewFlagTable[string](BKDR{Seed: seed}, cfg)
	if err != nil {
		return nil, err
	}
	return &BkdrTable{flags: ft, seed: seed}, nil
}

// BkdrHash returns the BKDR index of s for a table of n buckets.
// n must be positive. A zero seed is legal: every string then hashes by its last byte.
func BkdrHash(seed int, s string, n int) int {
	return bkdrIndex(seed, s, n)
}

// Init clears every flag and switches to a new multiplier
func (bt *BkdrTable) Init(seed int) {
	// BKDR accepts every seed, so Reset cannot fail.
	_ = bt.flags.Reset(BKDR{Seed: seed})
	bt.seed = seed
}

// Insert flags the bucket of s
func (bt *BkdrTable) Insert(s string) { bt.flags.Insert(s) }

// Find reports whether the bucket of s is flagged. Colliding strings report true.
func (bt *BkdrTable) Find(s string) bool { return bt.flags.Find(s) }

// Delete clears the bucket of s, forgetting every string that shares it.
// Deleting an absent string is a no-op.
func (bt *BkdrTable) Delete(s string) { bt.flags.Delete(s) }

// Seed returns the hash multiplier
func (bt *BkdrTable) Seed() int { return bt.seed }

// Len returns the number of flagged buckets
func (bt *BkdrTable) Len() int { return bt.flags.Len() }

// Capacity returns the fixed bucket count
func (bt *BkdrTable) Capacity() int { return bt.flags.Capacity() }

// Stats summarises the flags
func (bt *BkdrTable) Stats() Stats { return bt.flags.Stats() }
