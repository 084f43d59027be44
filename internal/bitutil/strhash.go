package bitutil

import "github.com/cespare/xxhash/v2"

// JavaStringHash reproduces java.lang.String.hashCode(): h = 31*h + b for
// each byte, wrapping at 32 bits, interpreted as signed. The SMILE spec
// mandates this exact function as the bucket key for the shared-string
// tables, since the format was designed to interoperate with the Jackson
// (Java) reference implementation's table layout.
func JavaStringHash(s string) int32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = 31*h + uint32(s[i])
	}

	return int32(h)
}

// Fingerprint returns a 64-bit xxHash of s. The shared-string tables use
// JavaStringHash as their bucket key (mandated by the wire format) but pair
// every bucket entry with this fingerprint — two different strings landing
// in the same bucket will, with overwhelming probability, have different
// fingerprints, letting the table reject a mismatch in O(1) before paying
// for a full byte-by-byte compare. Equality is still decided by the raw
// bytes; the fingerprint is purely a fast-reject hint.
func Fingerprint(s string) uint64 {
	return xxhash.Sum64String(s)
}
