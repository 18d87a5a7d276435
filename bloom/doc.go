package bloom

/*

# Insert-only Bloom filter

This package provides a fixed capacity Bloom filter over arbitrary byte
sequences.

- If the filter says "definitely not present", then the key was never
  inserted.
- If the filter says "maybe present", then the key may or may not have been
  inserted (false positives are possible).

There are no false negatives. Keys cannot be removed and the filter never
grows; inserting far more keys than it was sized for only raises the false
positive rate, eventually towards 1.

## Sizing

A filter is created from its width in bits, m, and a ratio of bytes per
expected element. The ratio is scaled to bits per element, mn = 8 * ratio, and
the number of hash rounds is

	k = round(log2(2 * mn))

The false positive estimate reported by the filter is

	e = (1 - exp(-k / mn))^k

which holds while the number of distinct inserted keys stays within m / mn.

## Indexing

Each key is hashed twice:

	h1 = djb2(key)
	h2 = murmur3_x86_32(key, seed=h1)

and round i (0 <= i < k) probes bit

	(h1 + i*h2) mod m

with the sum computed in wrapping 32 bit arithmetic (Kirsch-Mitzenmacher
double hashing). The hashes are not cryptographic.

## Bit numbering

Bits are stored packed into 64 bit words; the storage holds ceil(m/64) words.

## Concurrency

A Filter does no locking. Callers sharing one must serialize Insert against
every other operation.

*/
