package fhash_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/pkg/errors"

	"github.com/theflywheel/fhash"
)

func newPrimeTable(t *testing.T, seed int) *fhash.PrimeTable {
	t.Helper()
	pt, err := fhash.NewPrimeTable(seed, fhash.DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create prime table with seed %d: %v", seed, err)
	}
	return pt
}

func TestPrimeHash(t *testing.T) {
	testCases := []struct {
		seed, value, want int
	}{
		{7, 10, 3},
		{7, 17, 3},
		{7, 0, 0},
		{7, 6, 6},
		{7, -3, 4},
		{59, 1000, 56},
		{1, 12345, 0},
	}
	for _, tc := range testCases {
		got, err := fhash.PrimeHash(tc.seed, tc.value)
		if err != nil {
			t.Fatalf("PrimeHash(%d, %d) failed: %v", tc.seed, tc.value, err)
		}
		if got != tc.want {
			t.Errorf("PrimeHash(%d, %d): expected %d, got %d", tc.seed, tc.value, tc.want, got)
		}
	}

	for _, seed := range []int{0, -7} {
		if _, err := fhash.PrimeHash(seed, 10); !errors.Is(err, fhash.ErrInvalidSeed) {
			t.Errorf("PrimeHash with seed %d: expected ErrInvalidSeed, got %v", seed, err)
		}
	}
}

func TestPrimeTableInvalidSeed(t *testing.T) {
	for _, seed := range []int{0, -1, fhash.DefaultCapacity + 1} {
		if _, err := fhash.NewPrimeTable(seed, fhash.DefaultConfig()); !errors.Is(err, fhash.ErrInvalidSeed) {
			t.Errorf("Seed %d: expected ErrInvalidSeed, got %v", seed, err)
		}
	}

	pt := newPrimeTable(t, fhash.DefaultCapacity)
	pt.Insert(5)
	if err := pt.Init(0); !errors.Is(err, fhash.ErrInvalidSeed) {
		t.Fatalf("Init(0): expected ErrInvalidSeed, got %v", err)
	}
	if pt.Seed() != fhash.DefaultCapacity {
		t.Errorf("Failed Init changed the seed to %d", pt.Seed())
	}
	if _, found := pt.Find(5); !found {
		t.Error("Failed Init dropped stored values")
	}

	if _, err := fhash.NewPrimeTable(7, fhash.Config{Capacity: 0}); !errors.Is(err, fhash.ErrInvalidCapacity) {
		t.Errorf("Capacity 0: expected ErrInvalidCapacity, got %v", err)
	}
}

func TestPrimeTableCollidingValues(t *testing.T) {
	pt := newPrimeTable(t, 7)
	pt.Insert(10)
	pt.Insert(17)

	for _, v := range []int{10, 17} {
		e, found := pt.Find(v)
		if !found {
			t.Fatalf("Value %d not found", v)
		}
		if e.Bucket != 3 || e.Key != v {
			t.Errorf("Value %d: expected bucket 3, got %+v", v, e)
		}
	}

	if err := pt.Delete(10); err != nil {
		t.Fatalf("Failed to delete 10: %v", err)
	}
	if _, found := pt.Find(10); found {
		t.Error("Value 10 still found after delete")
	}
	e, found := pt.Find(17)
	if !found {
		t.Fatal("Value 17 lost after deleting 10")
	}
	if e.Position != 0 {
		t.Errorf("Value 17 should be the chain head, got position %d", e.Position)
	}
}

func TestPrimeTableRoundTrip(t *testing.T) {
	pt := newPrimeTable(t, 13)
	values := []int{0, 1, 13, 26, 99, 1000, -5, -13, 42, 7}
	for _, v := range values {
		pt.Insert(v)
		if _, found := pt.Find(v); !found {
			t.Fatalf("Value %d not found right after insert", v)
		}
	}
	for _, v := range values {
		if _, found := pt.Find(v); !found {
			t.Errorf("Value %d not found", v)
		}
	}
	for _, v := range []int{2, 14, -1, 1001} {
		if _, found := pt.Find(v); found {
			t.Errorf("Value %d found but never inserted", v)
		}
	}
	if pt.Len() != len(values) {
		t.Errorf("Expected %d values, got %d", len(values), pt.Len())
	}
}

func TestPrimeTableDuplicates(t *testing.T) {
	pt := newPrimeTable(t, 7)
	pt.Insert(10)
	pt.Insert(10)

	if err := pt.Delete(10); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}
	if _, found := pt.Find(10); !found {
		t.Fatal("Second copy of 10 should survive one delete")
	}
	if err := pt.Delete(10); err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if _, found := pt.Find(10); found {
		t.Fatal("Value 10 found after deleting both copies")
	}

	err := pt.Delete(10)
	if !errors.Is(err, fhash.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if pt.Len() != 0 {
		t.Errorf("Expected empty table, got %d values", pt.Len())
	}
}

func TestPrimeTableFindReturnsFirstDuplicate(t *testing.T) {
	pt := newPrimeTable(t, 7)
	for _, v := range []int{10, 17, 10} {
		pt.Insert(v)
	}

	e, found := pt.Find(10)
	if !found {
		t.Fatal("Value 10 not found")
	}
	if e.Bucket != 3 || e.Position != 0 {
		t.Errorf("Expected the head copy of 10 at bucket 3 position 0, got %+v", e)
	}

	if err := pt.Delete(10); err != nil {
		t.Fatalf("Failed to delete 10: %v", err)
	}
	e, found = pt.Find(10)
	if !found {
		t.Fatal("Second copy of 10 lost")
	}
	if e.Position != 1 {
		t.Errorf("Expected surviving 10 at position 1 behind 17, got %d", e.Position)
	}
	if e17, _ := pt.Find(17); e17.Position != 0 {
		t.Errorf("Expected 17 at the chain head, got position %d", e17.Position)
	}
}

func TestPrimeTableChainOrder(t *testing.T) {
	pt := newPrimeTable(t, 7)
	for _, v := range []int{3, 10, 17, 24} {
		pt.Insert(v)
	}
	if err := pt.Delete(10); err != nil {
		t.Fatalf("Failed to delete 10: %v", err)
	}

	var chain []int
	for i, values := range pt.All() {
		if i == 3 {
			chain = values
		}
	}
	if want := []int{3, 17, 24}; !slices.Equal(chain, want) {
		t.Errorf("Expected chain %v, got %v", want, chain)
	}

	e, _ := pt.Find(24)
	if e.Position != 2 {
		t.Errorf("Expected 24 at position 2, got %d", e.Position)
	}
}

func TestPrimeTableAll(t *testing.T) {
	pt := newPrimeTable(t, 5)
	for _, v := range []int{1, 6, 4} {
		pt.Insert(v)
	}

	collect := func() map[int][]int {
		out := make(map[int][]int)
		for i, values := range pt.All() {
			out[i] = values
		}
		return out
	}
	first := collect()
	if len(first) != 5 {
		t.Fatalf("Expected 5 buckets, got %d", len(first))
	}
	if !slices.Equal(first[1], []int{1, 6}) || !slices.Equal(first[4], []int{4}) || len(first[0]) != 0 {
		t.Errorf("Unexpected buckets: %v", first)
	}

	// Restartable, and the yielded slices are copies.
	first[1][0] = 99
	second := collect()
	if !slices.Equal(second[1], []int{1, 6}) {
		t.Errorf("Second pass saw %v", second[1])
	}

	seen := 0
	for range pt.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("Early break visited %d buckets", seen)
	}
}

func TestPrimeTableFprint(t *testing.T) {
	pt := newPrimeTable(t, 3)
	for _, v := range []int{1, 4, 2} {
		pt.Insert(v)
	}

	var buf bytes.Buffer
	if err := pt.Fprint(&buf); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	want := "index 0: \nindex 1: 1, 4, \nindex 2: 2, \n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestPrimeTableInit(t *testing.T) {
	pt := newPrimeTable(t, 7)
	pt.Insert(10)
	pt.Insert(3)

	if err := pt.Init(11); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if pt.Len() != 0 || pt.Seed() != 11 {
		t.Fatalf("Expected empty table with seed 11, got len=%d seed=%d", pt.Len(), pt.Seed())
	}
	if _, found := pt.Find(10); found {
		t.Error("Value 10 survived Init")
	}

	pt.Insert(10)
	e, _ := pt.Find(10)
	if e.Bucket != 10 {
		t.Errorf("Expected bucket 10 under seed 11, got %d", e.Bucket)
	}
}

func TestPrimeTableStats(t *testing.T) {
	pt := newPrimeTable(t, 4)
	for _, v := range []int{1, 5, 9, 2} {
		pt.Insert(v)
	}
	st := pt.Stats()
	want := fhash.Stats{Buckets: 4, Entries: 4, Occupied: 2, LongestChain: 3, LoadFactor: 1}
	if st != want {
		t.Errorf("Expected %+v, got %+v", want, st)
	}
}
