package reader

import (
	"math/big"

	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/internal/bitutil"
	"github.com/jhosmer/gosmile/internal/varint"
)

func (r *Reader) readSignedVarint() (int64, error) {
	n, used, err := varint.ReadSigned(r.buf[r.pos:])
	if err != nil {
		return 0, r.fail(err)
	}
	r.pos += used
	return n, nil
}

func (r *Reader) readUnsignedVarint() (uint64, error) {
	n, used, err := varint.ReadUnsigned(r.buf[r.pos:])
	if err != nil {
		return 0, r.fail(err)
	}
	r.pos += used
	return n, nil
}

func (r *Reader) readSevenBitPacked(unpackedLen int) ([]byte, error) {
	packedLen := (unpackedLen*8 + 6) / 7
	packed, ok := r.readN(packedLen)
	if !ok {
		return nil, r.fail(errs.ErrUnexpectedEOF)
	}
	for _, b := range packed {
		if b&0x80 != 0 {
			return nil, r.fail(errs.ErrUnknownToken)
		}
	}
	return bitutil.UnpackSevenBit(packed, unpackedLen), nil
}

func (r *Reader) readBigIntMagnitude() (*big.Int, error) {
	length, err := r.readUnsignedVarint()
	if err != nil {
		return nil, err
	}
	magnitude, err := r.readSevenBitPacked(int(length))
	if err != nil {
		return nil, err
	}
	return bitutil.BigIntFromTwosComplement(magnitude), nil
}

func (r *Reader) readBigDecimal() (int32, *big.Int, error) {
	scale, err := r.readSignedVarint()
	if err != nil {
		return 0, nil, err
	}
	unscaled, err := r.readBigIntMagnitude()
	if err != nil {
		return 0, nil, err
	}
	return int32(scale), unscaled, nil
}

func (r *Reader) readFloat32() (float32, error) {
	raw, ok := r.readN(5)
	if !ok {
		return 0, r.fail(errs.ErrUnexpectedEOF)
	}
	var bits uint32
	for i := 0; i < 5; i++ {
		if raw[i]&0x80 != 0 {
			return 0, r.fail(errs.ErrUnknownToken)
		}
		bits |= uint32(raw[i]) << (7 * i)
	}
	return bitutil.BitsToFloat32(bits), nil
}

func (r *Reader) readFloat64() (float64, error) {
	raw, ok := r.readN(9)
	if !ok {
		return 0, r.fail(errs.ErrUnexpectedEOF)
	}
	var bits uint64
	for i := 0; i < 9; i++ {
		if raw[i]&0x80 != 0 {
			return 0, r.fail(errs.ErrUnknownToken)
		}
		bits |= uint64(raw[i]) << (7 * i)
	}
	return bitutil.BitsToFloat64(bits), nil
}
