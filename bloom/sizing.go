package bloom

import "math"

// ScaleRatio validates the caller supplied ratio and returns it in bits per
// element, ratio * RatioScale.
func ScaleRatio(ratio uint32) (uint32, error) {
	if ratio <= 1 {
		return 0, ErrBadRatio
	}
	if ratio > math.MaxUint32/RatioScale {
		return 0, ErrRatioOverflow
	}
	return ratio * RatioScale, nil
}

// HashRounds returns the number of bit positions set and checked per key:
//
//	k = round(log2(2 * ratioBits))
//
// This is not the textbook (m/n)·ln2. FalsePositiveRate is consistent with this
// choice of k, so the two must change together.
func HashRounds(ratioBits uint32) uint32 {
	k := math.Round(math.Log2(2 * float64(ratioBits)))
	if k < 1 {
		return 1
	}
	return uint32(k)
}

// FalsePositiveRate returns the estimated false positive probability
//
//	(1 - e^(-k/ratioBits))^k
//
// The estimate holds while the number of distinct inserted keys stays within
// DesignCapacity.
func FalsePositiveRate(k uint32, ratioBits uint32) float64 {
	if ratioBits == 0 {
		return 1
	}
	return math.Pow(1-math.Exp(-float64(k)/float64(ratioBits)), float64(k))
}

// DesignCapacity returns the number of distinct keys the false positive
// estimate assumes, bitCapacity / ratioBits (at least 1). It is not enforced.
func DesignCapacity(bitCapacity uint32, ratioBits uint32) uint32 {
	if ratioBits == 0 {
		return 0
	}
	n := bitCapacity / ratioBits
	if n == 0 {
		return 1
	}
	return n
}

// WordsFor returns ceil(bitCapacity/WordBits).
func WordsFor(bitCapacity uint32) uint32 {
	return uint32((uint64(bitCapacity) + WordBits - 1) / WordBits)
}
