package bitutil

import "math"

// Float32ToBits returns the raw IEEE-754 bit pattern of f.
func Float32ToBits(f float32) uint32 { return math.Float32bits(f) }

// BitsToFloat32 reconstructs a float32 from its raw IEEE-754 bit pattern.
// NaN and infinities round-trip through this path exactly. writer.WriteFloat
// uses the 32-bit form for every finite double whose narrowing does not
// overflow, even when precision is lost; non-finite doubles are always
// written as Float64.
func BitsToFloat32(bits uint32) float32 { return math.Float32frombits(bits) }

// Float64ToBits returns the raw IEEE-754 bit pattern of f, used directly for
// NaN/±Inf since those have no alternate textual or integer representation.
func Float64ToBits(f float64) uint64 { return math.Float64bits(f) }

// BitsToFloat64 reconstructs a float64 from its raw IEEE-754 bit pattern.
func BitsToFloat64(bits uint64) float64 { return math.Float64frombits(bits) }
