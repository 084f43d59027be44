package bitutil

// ZigZagEncode maps a signed 64-bit integer to an unsigned one so that
// small-magnitude values (positive or negative) produce small unsigned
// results, which is what makes VarInt encoding of signed quantities compact.
func ZigZagEncode(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// ZigZagDecode inverts ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// ZigZagEncode32 is the 32-bit form used for the int32 fast path.
func ZigZagEncode32(n int32) uint32 {
	return uint32(n<<1) ^ uint32(n>>31)
}

// ZigZagDecode32 inverts ZigZagEncode32.
func ZigZagDecode32(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}
