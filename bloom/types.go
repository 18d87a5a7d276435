package bloom

import "errors"

const (
	// WordBits is the width of a storage word in the packed bit vector.
	WordBits = 64

	// RatioScale converts the caller supplied ratio to bits per element.
	RatioScale = 8

	// DumpMaxBits is the largest filter for which Dump prints the raw bits.
	DumpMaxBits = 64 * 64

	// DumpWrap is the number of bits printed per Dump row.
	DumpWrap = 64
)

var (
	ErrNilFilter      = errors.New("bloom: nil filter")
	ErrReleased       = errors.New("bloom: filter has been released")
	ErrBadBitCapacity = errors.New("bloom: bitCapacity must be > 0")
	ErrBadRatio       = errors.New("bloom: ratio must be > 1")
	ErrBadIndex       = errors.New("bloom: bit index out of range")

	ErrRatioOverflow = errors.New("bloom: ratio overflows supported range")
)

// Report is a read-only snapshot of the filter parameters and fill state.
type Report struct {
	BitCapacity    uint32
	RatioBits      uint32
	HashRounds     uint32
	Words          uint32
	Inserted       uint64
	SetBits        uint32
	FillRatio      float64
	DesignCapacity uint32
	FalsePositive  float64
}
