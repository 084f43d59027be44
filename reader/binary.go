package reader

import "github.com/jhosmer/gosmile/errs"

func (r *Reader) readBinary7Bit() ([]byte, error) {
	length, err := r.readUnsignedVarint()
	if err != nil {
		return nil, err
	}
	return r.readSevenBitPacked(int(length))
}

func (r *Reader) readBinaryRaw() ([]byte, error) {
	length, err := r.readUnsignedVarint()
	if err != nil {
		return nil, err
	}
	raw, ok := r.readN(int(length))
	if !ok {
		return nil, r.fail(errs.ErrUnexpectedEOF)
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}
