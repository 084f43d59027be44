package bitutil

import "math/big"

// TwosComplementBytes returns the minimal big-endian two's-complement byte
// representation of n, matching java.math.BigInteger.toByteArray(): for a
// non-negative n whose natural magnitude's leading byte already has its
// high bit set, a leading zero byte is inserted so the representation
// cannot be misread as negative.
func TwosComplementBytes(n *big.Int) []byte {
	if n.Sign() >= 0 {
		b := n.Bytes()
		if len(b) == 0 {
			return []byte{0x00}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	mag := new(big.Int).Abs(n)
	nBytes := new(big.Int).Sub(mag, big.NewInt(1)).BitLen()/8 + 1

	mod := new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8))
	twosComp := new(big.Int).Sub(mod, mag)

	b := twosComp.Bytes()
	if len(b) < nBytes {
		pad := make([]byte, nBytes-len(b))
		for i := range pad {
			pad[i] = 0xFF
		}
		b = append(pad, b...)
	}

	return b
}

// BigIntFromTwosComplement is the inverse of TwosComplementBytes.
func BigIntFromTwosComplement(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}
	if b[0]&0x80 == 0 {
		return new(big.Int).SetBytes(b)
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8))
	val := new(big.Int).SetBytes(b)

	return new(big.Int).Sub(val, mod)
}
