package reader

import "math/big"

// Kind identifies what an Event carries.
type Kind int

const (
	// None is the zero value; never returned from Next.
	None Kind = iota
	StartArray
	EndArray
	StartObject
	EndObject
	FieldName
	Null
	Bool
	Int
	BigInt
	Float
	BigDecimal
	String
	Binary
	EndOfContent
	EOF
)

func (k Kind) String() string {
	switch k {
	case StartArray:
		return "StartArray"
	case EndArray:
		return "EndArray"
	case StartObject:
		return "StartObject"
	case EndObject:
		return "EndObject"
	case FieldName:
		return "FieldName"
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case BigInt:
		return "BigInt"
	case Float:
		return "Float"
	case BigDecimal:
		return "BigDecimal"
	case String:
		return "String"
	case Binary:
		return "Binary"
	case EndOfContent:
		return "EndOfContent"
	case EOF:
		return "EOF"
	default:
		return "None"
	}
}

// Event is one decoded token, with the payload field matching Kind
// populated; everything else is left zero.
type Event struct {
	Kind Kind

	Str             string
	BoolVal         bool
	IntVal          int64
	FloatVal        float64
	BigIntVal       *big.Int
	DecimalScale    int32
	DecimalUnscaled *big.Int
	BinaryVal       []byte
}
