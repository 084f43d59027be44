package bitutil

// PackSevenBit repacks data's bits into ceil(len(data)*8/7) bytes, each with
// its high bit clear. Concatenating the low 7 bits of every output byte
// reproduces the original bit stream, left-aligned, with the unused tail
// bits of the final output byte set to zero. This is SMILE's "7-bit safe"
// encoding, used for BINARY_7BIT payloads and for BigInteger/BigDecimal
// magnitudes so that none of the 128 forbidden high-bit-set byte values can
// appear in a stretch of binary data.
func PackSevenBit(data []byte) []byte {
	totalBits := len(data) * 8
	n := (totalBits + 6) / 7
	out := make([]byte, n)

	bitPos := 0
	for i := range out {
		out[i] = extractBits(data, bitPos, 7)
		bitPos += 7
	}

	return out
}

// UnpackSevenBit is the inverse of PackSevenBit: given the packed bytes and
// the known original length outLen, it reconstructs the original bytes.
func UnpackSevenBit(packed []byte, outLen int) []byte {
	out := make([]byte, outLen)

	bitPos := 0
	for _, p := range packed {
		for i := 6; i >= 0; i-- {
			byteIdx := bitPos / 8
			if byteIdx >= outLen {
				return out
			}
			bit := (p >> uint(i)) & 1
			bitIdx := bitPos % 8
			out[byteIdx] |= bit << uint(7-bitIdx)
			bitPos++
		}
	}

	return out
}

// extractBits reads n bits (n <= 8) from data starting at bit offset
// bitPos, treating data as a big-endian bit stream and padding with zero
// bits past the end of data. The result is right-aligned in the returned
// byte (i.e. bit 0 of the result is the last bit read).
func extractBits(data []byte, bitPos, n int) byte {
	var v byte
	for i := 0; i < n; i++ {
		pos := bitPos + i
		byteIdx := pos / 8
		var bit byte
		if byteIdx < len(data) {
			bitIdx := pos % 8
			bit = (data[byteIdx] >> uint(7-bitIdx)) & 1
		}
		v = (v << 1) | bit
	}

	return v
}
