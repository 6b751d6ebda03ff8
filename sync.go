package fhash

import (
	"iter"
	"sync"
)

// SyncChainTable guards a ChainTable with a read/write mutex
type SyncChainTable[K comparable] struct {
	mu sync.RWMutex
	ct *ChainTable[K]
}

// NewSyncChainTable creates a locked table, see NewChainTable
func NewSyncChainTable[K comparable](policy Policy[K], span int, cfg Config) (*SyncChainTable[K], error) {
	ct, err := NewChainTable(policy, span, cfg)
	if err != nil {
		return nil, err
	}
	return &SyncChainTable[K]{ct: ct}, nil
}

// Reset empties every chain under the write lock, see ChainTable.Reset
func (s *SyncChainTable[K]) Reset(policy Policy[K], span int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ct.Reset(policy, span)
}

// Insert appends key to its chain under the write lock
func (s *SyncChainTable[K]) Insert(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ct.Insert(key)
}

// Find returns the first entry equal to key under the read lock
func (s *SyncChainTable[K]) Find(key K) (Entry[K], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ct.Find(key)
}

// Delete removes the first entry equal to key under the write lock
func (s *SyncChainTable[K]) Delete(key K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ct.Delete(key)
}

// All yields a copy of the table taken under the read lock, so the caller
// may mutate the table while ranging.
func (s *SyncChainTable[K]) All() iter.Seq2[int, []K] {
	s.mu.RLock()
	var chains [][]K
	for _, chain := range s.ct.All() {
		chains = append(chains, chain)
	}
	s.mu.RUnlock()

	return func(yield func(int, []K) bool) {
		for i, chain := range chains {
			if !yield(i, chain) {
				return
			}
		}
	}
}

// Len returns the number of stored keys
func (s *SyncChainTable[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ct.Len()
}

// Stats summarises bucket occupancy under the read lock
func (s *SyncChainTable[K]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ct.Stats()
}

// SyncFlagTable guards a FlagTable with a read/write mutex
type SyncFlagTable[K any] struct {
	mu sync.RWMutex
	ft *FlagTable[K]
}

// NewSyncFlagTable creates a locked table, see NewFlagTable
func NewSyncFlagTable[K any](policy Policy[K], cfg Config) (*SyncFlagTable[K], error) {
	ft, err := NewFlagTable(policy, cfg)
	if err != nil {
		return nil, err
	}
	return &SyncFlagTable[K]{ft: ft}, nil
}

// Reset clears every flag and installs a new policy
func (s *SyncFlagTable[K]) Reset(policy Policy[K]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ft.Reset(policy)
}

// Insert sets the flag of key's bucket under the write lock
func (s *SyncFlagTable[K]) Insert(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ft.Insert(key)
}

// Find reports whether key's bucket is flagged
func (s *SyncFlagTable[K]) Find(key K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ft.Find(key)
}

// Delete clears the flag of key's bucket under the write lock
func (s *SyncFlagTable[K]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ft.Delete(key)
}

// Len returns the number of set flags
func (s *SyncFlagTable[K]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ft.Len()
}

// Stats summarises the flags under the read lock
func (s *SyncFlagTable[K]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ft.Stats()
}
