package bloom

import "github.com/spaolacci/murmur3"

const djbInit = 5381

// HashDJB returns the djb2 hash of key: h = h*33 + b, starting from 5381.
// Bytes are treated as unsigned.
//
// The empty key hashes to 5381.
func HashDJB(key []byte) uint32 {
	var h uint32 = djbInit
	for _, b := range key {
		h = (h << 5) + h + uint32(b)
	}
	return h
}

// HashMurmur3 returns the 32 bit MurmurHash3 (x86) of key under seed.
//
// The filter seeds it with HashDJB of the same key to obtain the second digest
// for double hashing.
func HashMurmur3(key []byte, seed uint32) uint32 {
	return murmur3.Sum32WithSeed(key, seed)
}

// hashPair returns the two digests that seed the index sequence for key.
func hashPair(key []byte) (h1 uint32, h2 uint32) {
	h1 = HashDJB(key)
	h2 = HashMurmur3(key, h1)
	return h1, h2
}

// bitIndex returns the bit index probed in the given round. The arithmetic
// wraps at 32 bits before the reduction modulo mBits.
func bitIndex(h1, h2, round, mBits uint32) uint32 {
	return (h1 + round*h2) % mBits
}
