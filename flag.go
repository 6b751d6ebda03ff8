package fhash

// FlagTable records presence with one flag per bucket.
//
// Keys that hash to the same bucket are indistinguishable: inserting one
// makes all of them findable and deleting one clears all of them.
type FlagTable[K any] struct {
	policy Policy[K]
	flags  []bool
}

// NewFlagTable creates a table with every flag cleared
func NewFlagTable[K any](policy Policy[K], cfg Config) (*FlagTable[K], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validatePolicy(policy, cfg.Capacity); err != nil {
		return nil, err
	}
	return &FlagTable[K]{policy: policy, flags: make([]bool, cfg.Capacity)}, nil
}

// Reset clears every flag and installs a new policy.
// On error the table is left unchanged.
func (ft *FlagTable[K]) Reset(policy Policy[K]) error {
	if err := validatePolicy(policy, len(ft.flags)); err != nil {
		return err
	}
	clear(ft.flags)
	ft.policy = policy
	return nil
}

// Insert sets the flag of key's bucket
func (ft *FlagTable[K]) Insert(key K) {
	ft.flags[ft.policy.Index(key, len(ft.flags))] = true
}

// Find reports whether key's bucket is flagged
func (ft *FlagTable[K]) Find(key K) bool {
	return ft.flags[ft.policy.Index(key, len(ft.flags))]
}

// Delete clears the flag of key's bucket. Clearing an unset flag is a no-op.
func (ft *FlagTable[K]) Delete(key K) {
	ft.flags[ft.policy.Index(key, len(ft.flags))] = false
}

// Len returns the number of set flags
func (ft *FlagTable[K]) Len() int {
	n := 0
	for _, f := range ft.flags {
		if f {
			n++
		}
	}
	return n
}

// Capacity returns the fixed bucket count
func (ft *FlagTable[K]) Capacity() int { return len(ft.flags) }

// Stats summarises the flags; each set flag counts as a chain of one
func (ft *FlagTable[K]) Stats() Stats {
	n := ft.Len()
	st := Stats{Buckets: len(ft.flags), Entries: n, Occupied: n}
	if n > 0 {
		st.LongestChain = 1
	}
	st.LoadFactor = float64(n) / float64(st.Buckets)
	return st
}
