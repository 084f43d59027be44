package value

import (
	"math"
	"math/big"
	"strconv"

	"github.com/jhosmer/gosmile/errs"
)

// stringifyKey converts a non-string map key into the field name SMILE
// requires, following the distilled spec's Design Notes rules: booleans
// and null get their literal spelling, integers print as decimal, and
// floats use Go's shortest round-trip textual form with JSON's NaN/Infinity
// spellings for the non-finite cases.
func stringifyKey(v any) (string, error) {
	switch k := v.(type) {
	case string:
		return k, nil
	case nil:
		return "null", nil
	case bool:
		if k {
			return "true", nil
		}
		return "false", nil
	case int:
		return strconv.FormatInt(int64(k), 10), nil
	case int8:
		return strconv.FormatInt(int64(k), 10), nil
	case int16:
		return strconv.FormatInt(int64(k), 10), nil
	case int32:
		return strconv.FormatInt(int64(k), 10), nil
	case int64:
		return strconv.FormatInt(k, 10), nil
	case uint:
		return strconv.FormatUint(uint64(k), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(k), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(k), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(k), 10), nil
	case uint64:
		return strconv.FormatUint(k, 10), nil
	case float32:
		return formatFloatKey(float64(k)), nil
	case float64:
		return formatFloatKey(k), nil
	case *big.Int:
		if k == nil {
			return "null", nil
		}
		return k.String(), nil
	default:
		return "", errs.NewEncodeError(errs.ErrUnstringifiableKey, "stringifyKey")
	}
}

func formatFloatKey(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
