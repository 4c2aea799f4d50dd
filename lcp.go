package packedidx

import (
	"encoding/binary"
	"math/bits"
)

// lcp returns the length of the longest common prefix of a[aofs:] and
// b[bofs:], capped at maxLen. It compares eight bytes per step while
// both slices have a full word left, locating the differing byte from
// the trailing zeros of the xor, and finishes byte-wise so callers need
// no trailing padding.
func lcp(a []byte, aofs int32, b []byte, bofs int32, maxLen int32) int32 {
	n := int32(0)
	for n+8 <= maxLen && int(aofs+n)+8 <= len(a) && int(bofs+n)+8 <= len(b) {
		x := binary.LittleEndian.Uint64(a[aofs+n:])
		y := binary.LittleEndian.Uint64(b[bofs+n:])
		if x != y {
			return n + int32(bits.TrailingZeros64(x^y)>>3)
		}
		n += 8
	}
	for n < maxLen && int(aofs+n) < len(a) && int(bofs+n) < len(b) && a[aofs+n] == b[bofs+n] {
		n++
	}
	return n
}
