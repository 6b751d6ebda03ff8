/*
Package fhash provides fixed-capacity hash tables with pluggable hashing policies.

Two ready-made tables cover the classic textbook cases. PrimeTable stores
integers chained under value mod seed; BkdrTable records the presence of
strings under the BKDR polynomial hash, one flag per bucket.

Basic usage:

	import "github.com/theflywheel/fhash"

	cfg := fhash.ConfigFromEnv() // FHASH_CAPACITY, default 60

	pt, err := fhash.NewPrimeTable(7, cfg)
	if err != nil {
		log.Fatal(err)
	}
	pt.Insert(10)
	pt.Insert(17) // 10 and 17 share bucket 3
	if e, ok := pt.Find(17); ok {
		fmt.Println("bucket", e.Bucket, "position", e.Position)
	}
	if err := pt.Delete(42); errors.Is(err, fhash.ErrNotFound) {
		fmt.Println("42 was never inserted")
	}

	bt, _ := fhash.NewBkdrTable(31, cfg)
	bt.Insert("abc")
	fmt.Println(bt.Find("abc")) // true

Features:

  - Capacity fixed at construction, no resizing
  - Separate chaining with insertion-ordered chains (ChainTable)
  - Presence flags with deliberate collision aliasing (FlagTable)
  - Hashing policies: PrimeModulo, BKDR, XXHash and Maphash
  - Checked preconditions: ErrInvalidSeed, ErrNotFound
  - Optional coarse locking with SyncChainTable and SyncFlagTable
  - Binary snapshots compressed with snappy

Implementation Details:

The BKDR hash accumulates in a 32-bit signed integer and wraps on overflow.
Each byte is added as a signed char, and the sign bit is cleared before the
result is reduced modulo the capacity, so indexes match the historical C
implementation on common platforms.

A snapshot is a 24-byte big-endian header (magic, version, table kind,
capacity, seed, payload length) followed by a snappy block. PrimeTable
payloads hold a count and the int64 values for each bucket; BkdrTable
payloads hold one byte per flag.
*/
package fhash
