// Package token defines the byte-exact SMILE v0 wire grammar: the four-byte
// header, the literal and structural token bytes, and the byte ranges each
// of the writer and reader dispatch on. It holds no logic, only the shared
// vocabulary both sides of the codec must agree on bit-for-bit.
package token

// Header is the four-byte SMILE document header: ':' ')' '\n' <version+flags>.
const (
	HeaderByte1 = 0x3A
	HeaderByte2 = 0x29
	HeaderByte3 = 0x0A

	// HeaderVersion0 is the only version this package understands.
	HeaderVersion0 = 0x00

	// Feature bits packed into the low nibble of the fourth header byte.
	HeaderBitSharedNames  = 0x01
	HeaderBitSharedValues = 0x02
	HeaderBitRawBinary    = 0x04
)

// Literal, non-structured value tokens.
const (
	EmptyString = 0x20 // also the empty field-name token
	LiteralNull = 0x21
	LiteralFalse = 0x22
	LiteralTrue  = 0x23
)

// Numeric tokens (value context). TOKEN_PREFIX_INTEGER family.
const (
	Int32       = 0x24
	Int64       = 0x25
	BigInteger  = 0x26
	IntReserved = 0x27 // reserved, must be rejected

	Float32    = 0x28
	Float64    = 0x29
	BigDecimal = 0x2A
	FPReserved = 0x2B // reserved, must be rejected
)

// Small integer range: 0xC0..0xDF, value = zigzag_decode(b & 0x1F).
const (
	SmallIntBase = 0xC0
	SmallIntMask = 0x1F
)

// Shared value back-reference, short form: 0x01..0x1F, index = b-1.
// 0x00 is not a back-reference; it is the Padding byte below.
const (
	SharedValueShortBase = 0x01
	SharedValueShortMax  = 0x1F
)

// Shared value back-reference, long form: 0xEC..0xEF, next byte is low8,
// index = ((b & 0x03) << 8) | low8.
const (
	SharedValueLongBase = 0xEC
	SharedValueLongEnd  = 0xEF
)

// String value tokens (value context).
const (
	ShortASCIIBase      = 0x40 // 0x40..0x5F, len = (b&0x1F)+1, 1..32 bytes
	ShortASCIIEnd       = 0x5F
	MediumASCIIBase     = 0x60 // 0x60..0x7F, len = (b&0x1F)+33, 33..64 bytes
	MediumASCIIEnd      = 0x7F
	TinyUnicodeBase     = 0x80 // 0x80..0x9F, len = (b&0x1F)+2, 2..33 bytes
	TinyUnicodeEnd      = 0x9F
	ShortUnicodeBase    = 0xA0 // 0xA0..0xBF, len = (b&0x1F)+34, 34..64 bytes
	ShortUnicodeEnd     = 0xBF

	LongASCII       = 0xE0 // 0xE0..0xE3, low 2 bits reserved (must be 0)
	LongASCIIEnd    = 0xE3
	LongUnicode     = 0xE4 // 0xE4..0xE7, low 2 bits reserved (must be 0)
	LongUnicodeEnd  = 0xE7
	EndOfString     = 0xFC // terminator for long ASCII/Unicode/name literals
)

// Binary tokens.
const (
	Binary7Bit = 0xE8 // 0xE8..0xEB, low 2 bits reserved (must be 0)
	Binary7BitEnd = 0xEB
	BinaryRaw  = 0xFD // requires HeaderBitRawBinary
)

// Container and framing tokens.
const (
	StartArray    = 0xF8
	EndArray      = 0xF9
	StartObject   = 0xFA
	EndObject     = 0xFB
	ReservedMisc  = 0xF7 // reserved, must be rejected
	EndOfContent  = 0xFF // optional document separator / framing marker
	Padding       = 0x00 // value-context padding byte, silently skipped
)

// Key-context tokens. Distinct token space from value context: the same
// byte value can mean something else depending on which state the reader
// is in.
const (
	KeyEmptyString = 0x20

	// Long shared name reference: 0x30..0x33, next byte is low8,
	// index = ((b & 0x03) << 8) | low8. Covers indices 64..1023.
	KeySharedLongBase = 0x30
	KeySharedLongEnd  = 0x33

	// Long name literal, UTF-8 bytes terminated by EndOfString.
	KeyLongLiteral = 0x34

	// Short shared name reference: 0x40..0x7F, index = b-0x40 (0..63).
	KeySharedShortBase = 0x40
	KeySharedShortEnd  = 0x7F

	// Short ASCII name literal: 0x80..0xBF, len = (b&0x3F)+1 (1..64 bytes).
	KeyShortASCIIBase = 0x80
	KeyShortASCIIEnd  = 0xBF

	// Short Unicode name literal: 0xC0..0xF7, len = (b-0xC0)+2 (2..57 bytes).
	KeyShortUnicodeBase = 0xC0
	KeyShortUnicodeEnd  = 0xF7
)

// MaxShortStringBytes is the largest UTF-8 length eligible for the short
// value-string forms and for shared-table insertion.
const MaxShortStringBytes = 64

// MaxShortNameUnicodeBytes is the largest UTF-8 length eligible for the
// short Unicode key form (0xC0..0xF7 covers 2..57 bytes only).
const MaxShortNameUnicodeBytes = 57

// MaxSharedEntries bounds both shared-string tables; reaching it triggers
// a reset before the next insert.
const MaxSharedEntries = 1024

// MaxVarintBytes bounds how many bytes a VarInt may occupy before the
// reader gives up and reports a decode error.
const MaxVarintBytes = 10
