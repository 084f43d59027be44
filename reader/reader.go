// Package reader implements the SMILE token reader: a pull-based decoder
// that yields one Event per call to Next, maintaining the two shared-string
// tables and a container-balance stack as it goes. Like package writer, it
// has no knowledge of a host value tree; package value builds that on top.
package reader

import (
	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/internal/options"
	"github.com/jhosmer/gosmile/internal/sharedstring"
	"github.com/jhosmer/gosmile/token"
)

type state uint8

const (
	stateHead state = iota
	stateValue
	stateKey
	stateDone
	stateBad
)

// Reader decodes a SMILE byte stream one token at a time. It is not safe
// for concurrent use.
type Reader struct {
	*Config

	buf []byte
	pos int

	names  *sharedstring.ReaderTable
	values *sharedstring.ReaderTable
	stack  containerStack

	st  state
	err error
}

// New creates a Reader over buf. Unless WithExpectHeader(false) was passed,
// the header is not consumed until the first call to Next.
func New(buf []byte, opts ...Option) (*Reader, error) {
	cfg := DefaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, errs.NewDecodeError(err, 0, nil)
	}

	r := &Reader{
		Config: cfg,
		buf:    buf,
		names:  sharedstring.NewReaderTable(),
		values: sharedstring.NewReaderTable(),
	}

	if cfg.ExpectHeader {
		r.st = stateHead
	} else {
		r.st = stateValue
		r.SharedNames, r.SharedValues, r.Raw7Bit = cfg.SharedNames, cfg.SharedValues, cfg.Raw7Bit
	}

	return r, nil
}

// Err returns the error that put this Reader into the BAD state, if any.
func (r *Reader) Err() error { return r.err }

// Offset returns the current byte offset into the input buffer.
func (r *Reader) Offset() int { return r.pos }

// Depth returns the current container nesting depth.
func (r *Reader) Depth() int { return r.stack.depth() }

func (r *Reader) fail(err error) error {
	r.st = stateBad
	if r.err == nil {
		r.err = errs.NewDecodeError(err, r.pos, nil)
	}
	return r.err
}

func (r *Reader) readByte() (byte, bool) {
	if r.pos >= len(r.buf) {
		return 0, false
	}
	b := r.buf[r.pos]
	r.pos++
	return b, true
}

func (r *Reader) readN(n int) ([]byte, bool) {
	if r.pos+n > len(r.buf) {
		return nil, false
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

func (r *Reader) readHeader() error {
	hdr, ok := r.readN(4)
	if !ok {
		return r.fail(errs.ErrUnexpectedEOF)
	}
	if hdr[0] != token.HeaderByte1 || hdr[1] != token.HeaderByte2 || hdr[2] != token.HeaderByte3 {
		return r.fail(errs.ErrInvalidHeader)
	}

	version := hdr[3] >> 4
	if version != token.HeaderVersion0 {
		return r.fail(errs.ErrUnsupportedVersion)
	}

	r.SharedNames = hdr[3]&token.HeaderBitSharedNames != 0
	r.SharedValues = hdr[3]&token.HeaderBitSharedValues != 0
	r.Raw7Bit = hdr[3]&token.HeaderBitRawBinary == 0

	r.names.Reset()
	r.values.Reset()
	r.st = stateValue

	return nil
}

// Next decodes and returns the next token. Once an error has occurred,
// Next keeps returning an EOF Event with that same error; once
// EndOfContent has been returned, Next returns an EOF Event with a nil
// error until NextDocument is called. Neither advances further.
func (r *Reader) Next() (Event, error) {
	if r.st == stateBad {
		return Event{Kind: EOF}, r.err
	}
	if r.st == stateDone {
		return Event{Kind: EOF}, nil
	}

	if r.st == stateHead {
		if err := r.readHeader(); err != nil {
			return Event{Kind: EOF}, err
		}
	}

	if f := r.stack.top(); f != nil && f.kind == frameObject && f.expectKey {
		return r.nextKey()
	}

	return r.nextValue()
}

// NextDocument arms the Reader to parse another SMILE document beginning
// at the current offset, immediately after the 0xFF end-of-content marker
// Next just returned. It is only valid to call once Next has returned an
// EndOfContent event (r.st is stateDone).
func (r *Reader) NextDocument() error {
	if r.st != stateDone {
		return r.fail(errs.ErrUnexpectedToken)
	}
	r.st = stateHead
	return nil
}

func (r *Reader) nextKey() (Event, error) {
	b, ok := r.readByte()
	if !ok {
		return Event{Kind: EOF}, r.fail(errs.ErrUnexpectedEOF)
	}

	switch {
	case b == token.KeyEmptyString:
		r.stack.top().expectKey = false
		return Event{Kind: FieldName, Str: ""}, nil

	case b == token.EndObject:
		if !r.stack.popObject() {
			return Event{Kind: EOF}, r.fail(errs.ErrUnbalancedContainer)
		}
		r.afterValue()
		return Event{Kind: EndObject}, nil

	case b >= token.KeySharedLongBase && b <= token.KeySharedLongEnd:
		low8, ok := r.readByte()
		if !ok {
			return Event{Kind: EOF}, r.fail(errs.ErrUnexpectedEOF)
		}
		idx := (int(b&0x03) << 8) | int(low8)
		s, ok := r.names.Lookup(idx)
		if !ok {
			return Event{Kind: EOF}, r.fail(errs.ErrBackReferenceOutOfRange)
		}
		r.stack.top().expectKey = false
		return Event{Kind: FieldName, Str: s}, nil

	case b == token.KeyLongLiteral:
		s, err := r.readTerminatedString()
		if err != nil {
			return Event{Kind: EOF}, err
		}
		r.insertName(s)
		r.stack.top().expectKey = false
		return Event{Kind: FieldName, Str: s}, nil

	case b >= token.KeySharedShortBase && b <= token.KeySharedShortEnd:
		idx := int(b - token.KeySharedShortBase)
		s, ok := r.names.Lookup(idx)
		if !ok {
			return Event{Kind: EOF}, r.fail(errs.ErrBackReferenceOutOfRange)
		}
		r.stack.top().expectKey = false
		return Event{Kind: FieldName, Str: s}, nil

	case b >= token.KeyShortASCIIBase && b <= token.KeyShortASCIIEnd:
		n := int(b&0x3F) + 1
		raw, ok := r.readN(n)
		if !ok {
			return Event{Kind: EOF}, r.fail(errs.ErrUnexpectedEOF)
		}
		s := string(raw)
		r.insertName(s)
		r.stack.top().expectKey = false
		return Event{Kind: FieldName, Str: s}, nil

	case b >= token.KeyShortUnicodeBase && b <= token.KeyShortUnicodeEnd:
		n := int(b-token.KeyShortUnicodeBase) + 2
		raw, ok := r.readN(n)
		if !ok {
			return Event{Kind: EOF}, r.fail(errs.ErrUnexpectedEOF)
		}
		s := string(raw)
		r.insertName(s)
		r.stack.top().expectKey = false
		return Event{Kind: FieldName, Str: s}, nil

	case b == token.EndOfContent:
		// Only reachable mid-object, which always means the container is
		// unbalanced: an end-of-content marker can never stand in for a key.
		return Event{Kind: EOF}, r.fail(errs.ErrUnbalancedContainer)

	default:
		return Event{Kind: EOF}, r.fail(errs.ErrUnknownToken)
	}
}

func (r *Reader) insertName(s string) {
	if r.SharedNames && sharedstring.Eligible(s) {
		r.names.Insert(s)
	}
}

func (r *Reader) insertValue(s string) {
	if r.SharedValues && sharedstring.Eligible(s) {
		r.values.Insert(s)
	}
}

func (r *Reader) afterValue() {
	if f := r.stack.top(); f != nil && f.kind == frameObject {
		f.expectKey = true
	}
}

func (r *Reader) nextValue() (Event, error) {
	for {
		b, ok := r.readByte()
		if !ok {
			return Event{Kind: EOF}, r.fail(errs.ErrUnexpectedEOF)
		}

		switch {
		case b == token.Padding:
			continue

		case b >= token.SharedValueShortBase && b <= token.SharedValueShortMax:
			idx := int(b - token.SharedValueShortBase)
			s, ok := r.values.Lookup(idx)
			if !ok {
				return Event{Kind: EOF}, r.fail(errs.ErrBackReferenceOutOfRange)
			}
			r.afterValue()
			return Event{Kind: String, Str: s}, nil

		case b == token.EmptyString:
			r.afterValue()
			return Event{Kind: String, Str: ""}, nil

		case b == token.LiteralNull:
			r.afterValue()
			return Event{Kind: Null}, nil
		case b == token.LiteralFalse:
			r.afterValue()
			return Event{Kind: Bool, BoolVal: false}, nil
		case b == token.LiteralTrue:
			r.afterValue()
			return Event{Kind: Bool, BoolVal: true}, nil

		case b == token.Int32 || b == token.Int64:
			n, err := r.readSignedVarint()
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.afterValue()
			return Event{Kind: Int, IntVal: n}, nil

		case b == token.BigInteger:
			n, err := r.readBigIntMagnitude()
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.afterValue()
			return Event{Kind: BigInt, BigIntVal: n}, nil

		case b == token.IntReserved || b == token.FPReserved:
			return Event{Kind: EOF}, r.fail(errs.ErrReservedToken)

		case b == token.Float32:
			f, err := r.readFloat32()
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.afterValue()
			return Event{Kind: Float, FloatVal: float64(f)}, nil

		case b == token.Float64:
			f, err := r.readFloat64()
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.afterValue()
			return Event{Kind: Float, FloatVal: f}, nil

		case b == token.BigDecimal:
			scale, unscaled, err := r.readBigDecimal()
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.afterValue()
			return Event{Kind: BigDecimal, DecimalScale: scale, DecimalUnscaled: unscaled}, nil

		case b >= token.ShortASCIIBase && b <= token.ShortUnicodeEnd:
			s, err := r.readShortString(b)
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.insertValue(s)
			r.afterValue()
			return Event{Kind: String, Str: s}, nil

		case b >= token.SmallIntBase && b <= token.SmallIntBase+token.SmallIntMask:
			n := zigZagDecodeSmall(b & token.SmallIntMask)
			r.afterValue()
			return Event{Kind: Int, IntVal: n}, nil

		case b >= token.LongASCII && b <= token.LongUnicodeEnd:
			s, err := r.readTerminatedString()
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.afterValue()
			return Event{Kind: String, Str: s}, nil

		case b >= token.Binary7Bit && b <= token.Binary7BitEnd:
			data, err := r.readBinary7Bit()
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.afterValue()
			return Event{Kind: Binary, BinaryVal: data}, nil

		case b >= token.SharedValueLongBase && b <= token.SharedValueLongEnd:
			low8, ok := r.readByte()
			if !ok {
				return Event{Kind: EOF}, r.fail(errs.ErrUnexpectedEOF)
			}
			idx := (int(b&0x03) << 8) | int(low8)
			s, ok := r.values.Lookup(idx)
			if !ok {
				return Event{Kind: EOF}, r.fail(errs.ErrBackReferenceOutOfRange)
			}
			r.afterValue()
			return Event{Kind: String, Str: s}, nil

		case b == token.StartArray:
			if r.stack.depth()+1 > r.MaxDepth {
				return Event{Kind: EOF}, r.fail(errs.ErrMaxDepthExceeded)
			}
			r.stack.pushArray()
			return Event{Kind: StartArray}, nil

		case b == token.EndArray:
			if !r.stack.popArray() {
				return Event{Kind: EOF}, r.fail(errs.ErrUnbalancedContainer)
			}
			r.afterValue()
			return Event{Kind: EndArray}, nil

		case b == token.StartObject:
			if r.stack.depth()+1 > r.MaxDepth {
				return Event{Kind: EOF}, r.fail(errs.ErrMaxDepthExceeded)
			}
			r.stack.pushObject()
			return Event{Kind: StartObject}, nil

		case b == token.ReservedMisc:
			return Event{Kind: EOF}, r.fail(errs.ErrReservedToken)

		case b == token.BinaryRaw:
			if r.Raw7Bit {
				return Event{Kind: EOF}, r.fail(errs.ErrUnsupportedFeature)
			}
			data, err := r.readBinaryRaw()
			if err != nil {
				return Event{Kind: EOF}, err
			}
			r.afterValue()
			return Event{Kind: Binary, BinaryVal: data}, nil

		case b == token.EndOfContent:
			if r.stack.depth() != 0 {
				return Event{Kind: EOF}, r.fail(errs.ErrUnbalancedContainer)
			}
			r.st = stateDone
			return Event{Kind: EndOfContent}, nil

		default:
			return Event{Kind: EOF}, r.fail(errs.ErrUnknownToken)
		}
	}
}

func zigZagDecodeSmall(low5 byte) int64 {
	u := uint64(low5)
	return int64(u>>1) ^ -int64(u&1)
}
