// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

import (
	"math"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// FromUint returns the bit pattern held by a native unsigned integer.
func FromUint[T constraints.Unsigned](v T) Bits {
	return uint128.From64(uint64(v))
}

// FromFloat16 returns the Binary16 bit pattern of f.
func FromFloat16(f float16.Float16) Bits {
	return FromUint(f.Bits())
}

// Float16 returns the low 16 bits of b as a half precision number.
func Float16(b Bits) float16.Float16 {
	return float16.Frombits(uint16(b.Lo))
}

// FromFloat32 returns the Binary32 bit pattern of f.
func FromFloat32(f float32) Bits {
	return FromUint(math.Float32bits(f))
}

// Float32 returns the low 32 bits of b as a float32.
func Float32(b Bits) float32 {
	return math.Float32frombits(uint32(b.Lo))
}

// FromFloat64 returns the Binary64 bit pattern of f.
func FromFloat64(f float64) Bits {
	return FromUint(math.Float64bits(f))
}

// Float64 returns the low 64 bits of b as a float64.
func Float64(b Bits) float64 {
	return math.Float64frombits(b.Lo)
}
