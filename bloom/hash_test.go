package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashDJB(t *testing.T) {
	require.Equal(t, uint32(5381), HashDJB(nil))
	require.Equal(t, uint32(5381), HashDJB([]byte{}))
	require.Equal(t, uint32(177638), HashDJB([]byte("A")))
	require.Equal(t, uint32(5862120), HashDJB([]byte("AB")))
	require.Equal(t, uint32(2088883627), HashDJB([]byte("ABBA")))

	// 32 bit wrap around.
	require.Equal(t, uint32(261238937), HashDJB([]byte("hello")))

	// Bytes are unsigned.
	require.Equal(t, uint32(5381*33+0xff), HashDJB([]byte{0xff}))
}

func TestHashMurmur3KnownVectors(t *testing.T) {
	tests := []struct {
		key  string
		seed uint32
		want uint32
	}{
		{"", 0, 0},
		{"", 1, 0x514e28b7},
		{"", 0xffffffff, 0x81f16f39},
		{"\x00\x00\x00\x00", 0, 0x2362f9de},
		{"A", 0, 0x54dcf7ce},
		{"abc", 0, 0xb3dd93fa},
		{"Hello, world!", 1234, 0xfaf6cdb3},
		{"The quick brown fox jumps over the lazy dog", 0, 0x2e4ff723},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q/%d", tt.key, tt.seed), func(t *testing.T) {
			require.Equal(t, tt.want, HashMurmur3([]byte(tt.key), tt.seed))
		})
	}
}

// The second digest is seeded with the first; cover every tail length.
func TestHashPairVectors(t *testing.T) {
	tests := []struct {
		key    string
		h1, h2 uint32
	}{
		{"A", 177638, 0xbf3737dd},
		{"AB", 5862120, 0xb756b91e},
		{"ABA", 193450025, 0x10b95b7c},
		{"ABBA", 2088883627, 0x351a7ebd},
		{"CADADDR", 3318752776, 0x803c1f59},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h1, h2 := hashPair([]byte(tt.key))
			require.Equal(t, tt.h1, h1)
			require.Equal(t, tt.h2, h2)
		})
	}
}

func TestHashesAreDeterministic(t *testing.T) {
	key := []byte("CADADDR")
	h1 := HashDJB(key)
	h2 := HashMurmur3(key, h1)
	for i := 0; i < 10; i++ {
		a, b := hashPair(key)
		require.Equal(t, h1, a)
		require.Equal(t, h2, b)
	}
}

func TestBitIndexWraps(t *testing.T) {
	// (h1 + round*h2) is computed modulo 2^32 before reduction by mBits.
	h1, h2 := uint32(0xffffffff), uint32(0x80000000)
	require.Equal(t, uint32(0xffffffff%100000), bitIndex(h1, h2, 0, 100000))
	require.Equal(t, uint32(0x7fffffff%100000), bitIndex(h1, h2, 1, 100000))
	require.Equal(t, uint32(0xffffffff%100000), bitIndex(h1, h2, 2, 100000))
	require.Equal(t, uint32(0), bitIndex(h1, h2, 3, 1))
}
