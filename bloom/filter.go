package bloom

import (
	"github.com/bits-and-blooms/bitset"
)

// Filter is an insert-only Bloom filter of a fixed number of bits.
//
// A Filter is not safe for concurrent use. Callers sharing one must serialize
// Insert against every other method.
type Filter struct {
	mBits     uint32
	ratioBits uint32
	k         uint32

	// inserted is a best-effort counter; it is incremented per Insert call
	// whether or not the key was new.
	inserted uint64

	bits *bitset.BitSet
}

// New creates a filter of bitCapacity bits sized for ratio bytes per expected
// element. The number of hash rounds is derived from the ratio with
// HashRounds.
func New(bitCapacity uint32, ratio uint32) (*Filter, error) {
	if bitCapacity == 0 {
		return nil, ErrBadBitCapacity
	}
	ratioBits, err := ScaleRatio(ratio)
	if err != nil {
		return nil, err
	}

	return &Filter{
		mBits:     bitCapacity,
		ratioBits: ratioBits,
		k:         HashRounds(ratioBits),
		bits:      bitset.New(uint(bitCapacity)),
	}, nil
}

// Release drops the backing storage. Every later Insert, MaybeContains, IsSet
// or Dump reports ErrReleased.
func (f *Filter) Release() {
	if f == nil {
		return
	}
	f.bits = nil
}

// Insert adds key to the filter. Inserting the same key again leaves the bits
// unchanged.
func (f *Filter) Insert(key []byte) error {
	if err := f.check(); err != nil {
		return err
	}

	h1, h2 := hashPair(key)
	for round := uint32(0); round < f.k; round++ {
		f.bits.Set(uint(bitIndex(h1, h2, round, f.mBits)))
	}
	f.inserted++
	return nil
}

// MaybeContains checks membership for key.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func (f *Filter) MaybeContains(key []byte) (bool, error) {
	if err := f.check(); err != nil {
		return false, err
	}

	h1, h2 := hashPair(key)
	for round := uint32(0); round < f.k; round++ {
		if !f.bits.Test(uint(bitIndex(h1, h2, round, f.mBits))) {
			return false, nil
		}
	}
	return true, nil
}

// IsSet reports the raw value of the bit at index.
func (f *Filter) IsSet(index uint32) (bool, error) {
	if err := f.check(); err != nil {
		return false, err
	}
	if index >= f.mBits {
		return false, ErrBadIndex
	}
	return f.bits.Test(uint(index)), nil
}

// FalsePositiveEstimate returns FalsePositiveRate for the filter parameters,
// or 0 for a nil filter.
func (f *Filter) FalsePositiveEstimate() float64 {
	if f == nil {
		return 0
	}
	return FalsePositiveRate(f.k, f.ratioBits)
}

// The parameter accessors read immutable fields and panic on a nil filter.

func (f *Filter) BitCapacity() uint32    { return f.mBits }
func (f *Filter) RatioBits() uint32      { return f.ratioBits }
func (f *Filter) HashRounds() uint32     { return f.k }
func (f *Filter) Words() uint32          { return WordsFor(f.mBits) }
func (f *Filter) Inserted() uint64       { return f.inserted }
func (f *Filter) DesignCapacity() uint32 { return DesignCapacity(f.mBits, f.ratioBits) }

// SetBits returns the number of bits currently set, or 0 for a nil or released
// filter.
func (f *Filter) SetBits() uint32 {
	if f == nil || f.bits == nil {
		return 0
	}
	return uint32(f.bits.Count())
}

// FillRatio returns SetBits / BitCapacity, or 0 for a nil filter.
func (f *Filter) FillRatio() float64 {
	if f == nil {
		return 0
	}
	return float64(f.SetBits()) / float64(f.mBits)
}

// Report returns a snapshot of the filter parameters and fill state.
func (f *Filter) Report() (Report, error) {
	if err := f.check(); err != nil {
		return Report{}, err
	}
	return Report{
		BitCapacity:    f.mBits,
		RatioBits:      f.ratioBits,
		HashRounds:     f.k,
		Words:          f.Words(),
		Inserted:       f.inserted,
		SetBits:        f.SetBits(),
		FillRatio:      f.FillRatio(),
		DesignCapacity: f.DesignCapacity(),
		FalsePositive:  f.FalsePositiveEstimate(),
	}, nil
}

func (f *Filter) check() error {
	if f == nil {
		return ErrNilFilter
	}
	if f.bits == nil {
		return ErrReleased
	}
	return nil
}
