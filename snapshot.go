package fhash

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

const (
	magicNumber uint32 = 0x46484153 // "FHAS"
	version     uint32 = 1
	headerSize         = 6 * 4 // 6 uint32 fields

	// Bounds applied before anything is allocated from header fields.
	maxCapacity    = 1 << 16
	maxPayloadSize = 1 << 26

	kindPrime uint32 = 1
	kindBkdr  uint32 = 2
)

type snapshotHeader struct {
	kind     uint32
	capacity uint32
	seed     int32
	length   uint32
}

func writeSnapshot(w io.Writer, kind uint32, capacity, seed int, payload []byte) error {
	if seed < math.MinInt32 || seed > math.MaxInt32 {
		return errors.WithMessagef(ErrInvalidSeed, "seed %d does not fit a snapshot", seed)
	}
	if capacity > maxCapacity || len(payload) > maxPayloadSize {
		return errors.WithMessagef(ErrInvalidCapacity, "table too large for a snapshot: capacity %d, %d payload bytes", capacity, len(payload))
	}
	compressed := snappy.Encode(nil, payload)

	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header[0:4], magicNumber)
	binary.BigEndian.PutUint32(header[4:8], version)
	binary.BigEndian.PutUint32(header[8:12], kind)
	binary.BigEndian.PutUint32(header[12:16], uint32(capacity))
	binary.BigEndian.PutUint32(header[16:20], uint32(int32(seed)))
	binary.BigEndian.PutUint32(header[20:24], uint32(len(compressed)))

	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	if _, err := w.Write(compressed); err != nil {
		return errors.Wrap(err, "failed to write payload")
	}
	return nil
}

func readSnapshot(r io.Reader, kind uint32) (snapshotHeader, []byte, error) {
	var h snapshotHeader
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "read header: %v", err)
	}
	if magic := binary.BigEndian.Uint32(header[0:4]); magic != magicNumber {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "invalid magic number %#x", magic)
	}
	if v := binary.BigEndian.Uint32(header[4:8]); v != version {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "unsupported version %d", v)
	}
	h.kind = binary.BigEndian.Uint32(header[8:12])
	if h.kind != kind {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "table kind %d, expected %d", h.kind, kind)
	}
	h.capacity = binary.BigEndian.Uint32(header[12:16])
	if h.capacity == 0 || h.capacity > maxCapacity {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "capacity %d", h.capacity)
	}
	h.seed = int32(binary.BigEndian.Uint32(header[16:20]))
	h.length = binary.BigEndian.Uint32(header[20:24])
	if int(h.length) > snappy.MaxEncodedLen(maxPayloadSize) {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "compressed payload of %d bytes", h.length)
	}

	compressed, err := io.ReadAll(io.LimitReader(r, int64(h.length)))
	if err != nil {
		return h, nil, errors.Wrap(err, "failed to read payload")
	}
	if len(compressed) != int(h.length) {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "payload has %d of %d bytes", len(compressed), h.length)
	}
	n, err := snappy.DecodedLen(compressed)
	if err != nil {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "decode payload: %v", err)
	}
	if n > maxPayloadSize {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "payload of %d bytes", n)
	}
	payload, err := snappy.Decode(nil, compressed)
	if err != nil {
		return h, nil, errors.WithMessagef(ErrCorruptSnapshot, "decode payload: %v", err)
	}
	return h, payload, nil
}

// Save writes the seed, capacity and every chain of the table to w
func (pt *PrimeTable) Save(w io.Writer) error {
	var payload []byte
	for _, values := range pt.All() {
		payload = binary.BigEndian.AppendUint32(payload, uint32(len(values)))
		for _, v := range values {
			payload = binary.BigEndian.AppendUint64(payload, uint64(int64(v)))
		}
	}
	return writeSnapshot(w, kindPrime, pt.Capacity(), pt.seed, payload)
}

// LoadPrimeTable rebuilds a table written by PrimeTable.Save.
// Chains keep their saved order.
func LoadPrimeTable(r io.Reader) (*PrimeTable, error) {
	h, payload, err := readSnapshot(r, kindPrime)
	if err != nil {
		return nil, err
	}
	pt, err := NewPrimeTable(int(h.seed), Config{Capacity: int(h.capacity)})
	if err != nil {
		return nil, errors.WithMessagef(ErrCorruptSnapshot, "%v", err)
	}

	policy := PrimeModulo{Seed: pt.seed}
	for bucket := 0; bucket < pt.seed; bucket++ {
		if len(payload) < 4 {
			return nil, errors.WithMessagef(ErrCorruptSnapshot, "bucket %d truncated", bucket)
		}
		count := int(binary.BigEndian.Uint32(payload))
		payload = payload[4:]
		if len(payload) < count*8 {
			return nil, errors.WithMessagef(ErrCorruptSnapshot, "bucket %d truncated", bucket)
		}
		for i := 0; i < count; i++ {
			v := int(int64(binary.BigEndian.Uint64(payload[i*8:])))
			if idx := policy.Index(v, pt.seed); idx != bucket {
				return nil, errors.WithMessagef(ErrCorruptSnapshot, "value %d stored in bucket %d, hashes to %d", v, bucket, idx)
			}
			pt.Insert(v)
		}
		payload = payload[count*8:]
	}
	if len(payload) != 0 {
		return nil, errors.WithMessagef(ErrCorruptSnapshot, "%d trailing bytes", len(payload))
	}
	return pt, nil
}

// Save writes the multiplier and the flag array to w
func (bt *BkdrTable) Save(w io.Writer) error {
	payload := make([]byte, len(bt.flags.flags))
	for i, f := range bt.flags.flags {
		if f {
			payload[i] = 1
		}
	}
	return writeSnapshot(w, kindBkdr, bt.Capacity(), bt.seed, payload)
}

// LoadBkdrTable rebuilds a table written by BkdrTable.Save
func LoadBkdrTable(r io.Reader) (*BkdrTable, error) {
	h, payload, err := readSnapshot(r, kindBkdr)
	if err != nil {
		return nil, err
	}
	if len(payload) != int(h.capacity) {
		return nil, errors.WithMessagef(ErrCorruptSnapshot, "%d flags for capacity %d", len(payload), h.capacity)
	}
	bt, err := NewBkdrTable(int(h.seed), Config{Capacity: int(h.capacity)})
	if err != nil {
		return nil, errors.WithMessagef(ErrCorruptSnapshot, "%v", err)
	}
	for i, b := range payload {
		switch b {
		case 0:
		case 1:
			bt.flags.flags[i] = true
		default:
			return nil, errors.WithMessagef(ErrCorruptSnapshot, "flag %d has value %d", i, b)
		}
	}
	return bt, nil
}
