package fhash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
	"github.com/pkg/errors"
)

// Policy maps a key to a bucket index in [0, n).
//
// n is always positive. Tables never call Index with a span larger than
// their capacity, so an implementation may return any index below n.
type Policy[K any] interface {
	Index(key K, n int) int
}

// Validator is implemented by policies that only work for some spans.
// Tables call Validate with the span they will pass to Index and refuse the
// policy when it returns an error.
type Validator interface {
	Validate(n int) error
}

func validatePolicy(policy any, n int) error {
	if v, ok := policy.(Validator); ok {
		return v.Validate(n)
	}
	return nil
}

// PrimeModulo hashes integers as value mod Seed.
//
// The result is the floored modulus, so negative values land in [0, Seed)
// like positive ones. Seed must lie in (0, n], which Validate enforces.
type PrimeModulo struct {
	Seed int
}

// Validate rejects a Seed that is not positive or exceeds the span n
func (p PrimeModulo) Validate(n int) error {
	if p.Seed <= 0 || p.Seed > n {
		return errors.WithMessagef(ErrInvalidSeed, "seed %d outside (0, %d]", p.Seed, n)
	}
	return nil
}

// Index returns value mod Seed. The result is below n whenever Validate(n) passed.
func (p PrimeModulo) Index(value, n int) int {
	idx := value % p.Seed
	if idx < 0 {
		idx += p.Seed
	}
	return idx
}

// BKDR is the polynomial string hash hash = hash*Seed + c.
type BKDR struct {
	Seed int
}

// Index computes the BKDR hash of s reduced into [0, n)
func (p BKDR) Index(s string, n int) int {
	return bkdrIndex(p.Seed, s, n)
}

// bkdrIndex accumulates in an int32 so that overflow wraps at 32 bits, and
// each byte is added as a signed char. The sign bit is cleared before the
// modulo.
func bkdrIndex(seed int, s string, n int) int {
	var hash int32
	m := int32(seed)
	for i := 0; i < len(s); i++ {
		hash = hash*m + int32(int8(s[i]))
	}
	return int(hash&0x7FFFFFFF) % n
}

// XXHash spreads strings with xxHash64.
type XXHash struct{}

// Index reduces the 64-bit digest of s into [0, n)
func (XXHash) Index(s string, n int) int {
	return int(xxhash.Sum64String(s) % uint64(n))
}

// Maphash hashes any comparable key with the runtime's map hasher.
// Indexes are stable for the life of one Maphash value only.
type Maphash[K comparable] struct {
	h maphash.Hasher[K]
}

// NewMaphash returns a policy with a fresh random seed
func NewMaphash[K comparable]() Maphash[K] {
	return Maphash[K]{h: maphash.NewHasher[K]()}
}

// Index reduces the runtime hash of key into [0, n)
func (p Maphash[K]) Index(key K, n int) int {
	return int(p.h.Hash(key) % uint64(n))
}
