package value

import (
	"errors"

	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/reader"
)

// withPartial attaches the caller's best-effort accumulated value to err's
// DecodeError.Partial, unless it is already set by a more specific failure
// point closer to the actual error. This keeps the documented "Partial is
// the best-effort tree decoded before failure" contract true for every
// decode failure path, not just the ones that happen to construct their
// own DecodeError.
func withPartial(err error, partial any) error {
	var de *errs.DecodeError
	if errors.As(err, &de) && de.Partial == nil {
		return errs.NewDecodeError(de.Err, de.Offset, partial)
	}
	return err
}

// DecodeValue reads exactly one top-level value from r and returns it as a
// plain Go value: nil, bool, int64, *big.Int, float64, *big.Rat (for
// BigDecimal, via NewBigDecimal), string, []byte, []any, or map[string]any.
// Object field order is not preserved; use DecodeObject when it must be.
func DecodeValue(r *reader.Reader) (any, error) {
	ev, err := r.Next()
	if err != nil {
		return nil, err
	}
	return decodeEvent(r, ev, false)
}

// DecodeObject is like DecodeValue but decodes every object (including the
// top-level one, if present) into an *Object instead of a map[string]any,
// preserving field order.
func DecodeObject(r *reader.Reader) (any, error) {
	ev, err := r.Next()
	if err != nil {
		return nil, err
	}
	return decodeEvent(r, ev, true)
}

func decodeEvent(r *reader.Reader, ev reader.Event, ordered bool) (any, error) {
	switch ev.Kind {
	case reader.Null:
		return nil, nil
	case reader.Bool:
		return ev.BoolVal, nil
	case reader.Int:
		return ev.IntVal, nil
	case reader.BigInt:
		return ev.BigIntVal, nil
	case reader.Float:
		return ev.FloatVal, nil
	case reader.BigDecimal:
		return NewBigDecimal(ev.DecimalUnscaled, ev.DecimalScale), nil
	case reader.String:
		return ev.Str, nil
	case reader.Binary:
		return ev.BinaryVal, nil
	case reader.StartArray:
		return decodeArray(r, ordered)
	case reader.StartObject:
		if ordered {
			return decodeObjectOrdered(r)
		}
		return decodeMap(r)
	default:
		return nil, errs.NewDecodeError(errs.ErrUnexpectedToken, r.Offset(), nil)
	}
}

func decodeArray(r *reader.Reader, ordered bool) (any, error) {
	arr := make([]any, 0)
	for {
		ev, err := r.Next()
		if err != nil {
			return arr, withPartial(err, arr)
		}
		if ev.Kind == reader.EndArray {
			return arr, nil
		}
		v, err := decodeEvent(r, ev, ordered)
		if err != nil {
			return arr, withPartial(err, arr)
		}
		arr = append(arr, v)
	}
}

func decodeMap(r *reader.Reader) (any, error) {
	m := make(map[string]any)
	for {
		ev, err := r.Next()
		if err != nil {
			return m, withPartial(err, m)
		}
		if ev.Kind == reader.EndObject {
			return m, nil
		}
		if ev.Kind != reader.FieldName {
			return m, withPartial(errs.NewDecodeError(errs.ErrUnexpectedToken, r.Offset(), nil), m)
		}
		key := ev.Str

		vev, err := r.Next()
		if err != nil {
			return m, withPartial(err, m)
		}
		v, err := decodeEvent(r, vev, false)
		if err != nil {
			return m, withPartial(err, m)
		}
		m[key] = v
	}
}

func decodeObjectOrdered(r *reader.Reader) (any, error) {
	o := NewObject()
	for {
		ev, err := r.Next()
		if err != nil {
			return o, withPartial(err, o)
		}
		if ev.Kind == reader.EndObject {
			return o, nil
		}
		if ev.Kind != reader.FieldName {
			return o, withPartial(errs.NewDecodeError(errs.ErrUnexpectedToken, r.Offset(), nil), o)
		}
		key := ev.Str

		vev, err := r.Next()
		if err != nil {
			return o, withPartial(err, o)
		}
		v, err := decodeEvent(r, vev, true)
		if err != nil {
			return o, withPartial(err, o)
		}
		o.Set(key, v)
	}
}
