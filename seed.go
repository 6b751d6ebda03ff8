package fhash

import (
	"github.com/kavehmz/prime"
	"github.com/pkg/errors"
)

// SuggestSeed returns the largest prime not above capacity, the usual
// choice of modulus for a PrimeTable of that capacity.
func SuggestSeed(capacity int) (int, error) {
	if capacity < 2 {
		return 0, errors.WithMessagef(ErrInvalidCapacity, "no prime seed fits capacity %d", capacity)
	}
	// SieveOfEratosthenes keeps no state between calls, unlike prime.Primes
	// whose segment pool is sized by its first caller.
	primes := prime.SieveOfEratosthenes(uint64(capacity))
	for i := len(primes) - 1; i >= 0; i-- {
		if primes[i] <= uint64(capacity) {
			return int(primes[i]), nil
		}
	}
	return 0, errors.WithMessagef(ErrInvalidCapacity, "no prime seed fits capacity %d", capacity)
}
