package value

import (
	"math/big"
	"reflect"

	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/writer"
)

// EncodeValue walks v in document order, issuing one writer call per node.
// Supported types: nil, bool, every signed/unsigned integer width, float32,
// float64, string, *big.Int, *big.Rat (as a BigDecimal, when it has a
// finite decimal form — see encodeBigRat), []byte and Binary, []any,
// map[string]any, and *Object. Any other type is
// an errs.ErrUnsupportedType EncodeError.
func EncodeValue(w *writer.Writer, v any) error {
	return encodeValue(w, v, make(map[uintptr]struct{}))
}

func encodeValue(w *writer.Writer, v any, seen map[uintptr]struct{}) error {
	switch x := v.(type) {
	case nil:
		return w.WriteNull()
	case bool:
		return w.WriteBoolean(x)
	case int:
		return w.WriteInt64(int64(x))
	case int8:
		return w.WriteInt64(int64(x))
	case int16:
		return w.WriteInt64(int64(x))
	case int32:
		return w.WriteInt64(int64(x))
	case int64:
		return w.WriteInt64(x)
	case uint:
		return encodeUint64(w, uint64(x))
	case uint8:
		return w.WriteInt64(int64(x))
	case uint16:
		return w.WriteInt64(int64(x))
	case uint32:
		return w.WriteInt64(int64(x))
	case uint64:
		return encodeUint64(w, x)
	case float32:
		return w.WriteFloat(float64(x))
	case float64:
		return w.WriteFloat(x)
	case string:
		return w.WriteString(x)
	case []byte:
		return w.WriteBinary7Bit(x)
	case Binary:
		return encodeBinary(w, x)
	case *big.Int:
		return w.WriteBigInt(x)
	case *big.Rat:
		return encodeBigRat(w, x)
	case []any:
		return encodeArray(w, x, seen)
	case map[string]any:
		return encodeMap(w, x, seen)
	case *Object:
		return encodeObject(w, x, seen)
	default:
		return w.Fail(errs.NewEncodeError(errs.ErrUnsupportedType, reflect.TypeOf(v).String()))
	}
}

func encodeUint64(w *writer.Writer, u uint64) error {
	if u <= 1<<63-1 {
		return w.WriteInt64(int64(u))
	}
	return w.WriteBigInt(new(big.Int).SetUint64(u))
}

func encodeBinary(w *writer.Writer, b Binary) error {
	if b.Raw {
		return w.WriteBinaryRaw(b.Data)
	}
	return w.WriteBinary7Bit(b.Data)
}

func encodeBigRat(w *writer.Writer, r *big.Rat) error {
	if r == nil {
		return w.WriteNull()
	}
	// BigDecimal's scale is "digits after the decimal point". A Rat is kept
	// in lowest terms (NewBigDecimal(12345, 2) holds 2469/20), so the scale
	// is the smallest power of ten the denominator divides, and the unscaled
	// value is the numerator multiplied up to that power. A denominator with
	// a prime factor other than 2 or 5 has no finite decimal form and is an
	// errs.ErrUnsupportedType EncodeError.
	num := r.Num()
	den := r.Denom()

	scale := int32(0)
	pow := big.NewInt(1)
	ten := big.NewInt(10)
	rem := new(big.Int)
	for rem.Mod(pow, den).Sign() != 0 {
		if int(scale) > den.BitLen() {
			return w.Fail(errs.NewEncodeError(errs.ErrUnsupportedType, "*big.Rat without a finite decimal form"))
		}
		pow.Mul(pow, ten)
		scale++
	}

	return w.WriteBigDecimal(new(big.Int).Mul(num, new(big.Int).Quo(pow, den)), scale)
}

// NewBigDecimal builds the *big.Rat carrier EncodeValue expects for
// BigDecimal values: unscaled * 10^-scale.
func NewBigDecimal(unscaled *big.Int, scale int32) *big.Rat {
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	return new(big.Rat).SetFrac(unscaled, den)
}

func encodeArray(w *writer.Writer, arr []any, seen map[uintptr]struct{}) error {
	if len(arr) > 0 {
		ptr := reflect.ValueOf(arr).Pointer()
		if _, dup := seen[ptr]; dup {
			return errs.NewEncodeError(errs.ErrCyclicValue, "array")
		}
		seen[ptr] = struct{}{}
		defer delete(seen, ptr)
	}

	if err := w.WriteStartArray(); err != nil {
		return err
	}
	for _, elem := range arr {
		if err := encodeValue(w, elem, seen); err != nil {
			return err
		}
	}
	return w.WriteEndArray()
}

func encodeMap(w *writer.Writer, m map[string]any, seen map[uintptr]struct{}) error {
	ptr := reflect.ValueOf(m).Pointer()
	if _, dup := seen[ptr]; dup {
		return errs.NewEncodeError(errs.ErrCyclicValue, "map")
	}
	seen[ptr] = struct{}{}
	defer delete(seen, ptr)

	if err := w.WriteStartObject(); err != nil {
		return err
	}
	for k, elem := range m {
		if err := w.WriteFieldName(k); err != nil {
			return err
		}
		if err := encodeValue(w, elem, seen); err != nil {
			return err
		}
	}
	return w.WriteEndObject()
}

func encodeObject(w *writer.Writer, o *Object, seen map[uintptr]struct{}) error {
	ptr := reflect.ValueOf(o).Pointer()
	if _, dup := seen[ptr]; dup {
		return errs.NewEncodeError(errs.ErrCyclicValue, "object")
	}
	seen[ptr] = struct{}{}
	defer delete(seen, ptr)

	if err := w.WriteStartObject(); err != nil {
		return err
	}

	var outerErr error
	o.Range(func(k string, v any) bool {
		if err := w.WriteFieldName(k); err != nil {
			outerErr = err
			return false
		}
		if err := encodeValue(w, v, seen); err != nil {
			outerErr = err
			return false
		}
		return true
	})
	if outerErr != nil {
		return outerErr
	}

	return w.WriteEndObject()
}
