// Copyright 2024 Aleksandr Demakin. All rights reserved.

// Package floatrep implements a bit-level codec for binary floating-point
// encodings: IEEE-754 binary16, binary32, binary64, binary128 and the x86
// 80-bit extended precision format.
//
// A raw value is always carried in a 128-bit container (Bits). Only the low
// StorageBits of a format take part in computations, and only the low
// TotalBits carry meaning.
//
// Decomposition maps a raw value to a (sign, exponent, significand) triple,
// where the significand is an integer: value = significand * 2^exponent.
// Number does the opposite for an arbitrary significand magnitude.
// Excess significand bits are truncated, not rounded.
package floatrep

import (
	"fmt"
	"strings"

	"lukechampine.com/uint128"
)

// Bits is a raw floating-point bit pattern.
type Bits = uint128.Uint128

// Type is a floating-point format.
type Type uint8

const (
	// Binary16 is IEEE-754 half precision.
	Binary16 Type = iota
	// Binary32 is IEEE-754 single precision.
	Binary32
	// Binary64 is IEEE-754 double precision.
	Binary64
	// Binary128 is IEEE-754 quadruple precision.
	Binary128
	// Extended80 is the x86 80-bit extended precision format.
	// It has an explicit leading significand bit and is stored in 128 bits.
	Extended80

	numTypes = iota
)

// Encoding tells how the leading significand bit is stored.
type Encoding uint8

const (
	// IEEE754 formats do not store the leading significand bit.
	IEEE754 Encoding = iota
	// X86ExtendedPrecision stores the leading significand bit explicitly.
	X86ExtendedPrecision
)

// widths: total, significand, exponent, storage.
const (
	binary16Total, binary16Sig, binary16Exp, binary16Storage         = 16, 10, 5, 16
	binary32Total, binary32Sig, binary32Exp, binary32Storage         = 32, 23, 8, 32
	binary64Total, binary64Sig, binary64Exp, binary64Storage         = 64, 52, 11, 64
	binary128Total, binary128Sig, binary128Exp, binary128Storage     = 128, 112, 15, 128
	extended80Total, extended80Sig, extended80Exp, extended80Storage = 80, 64, 15, 128
)

// sign, exponent and significand fields must exactly cover the total width.
var (
	_ = [1]struct{}{}[1+binary16Exp+binary16Sig-binary16Total]
	_ = [1]struct{}{}[1+binary32Exp+binary32Sig-binary32Total]
	_ = [1]struct{}{}[1+binary64Exp+binary64Sig-binary64Total]
	_ = [1]struct{}{}[1+binary128Exp+binary128Sig-binary128Total]
	_ = [1]struct{}{}[1+extended80Exp+extended80Sig-extended80Total]
)

// the storage must hold the whole format.
const (
	_ uint = binary16Storage - binary16Total
	_ uint = binary32Storage - binary32Total
	_ uint = binary64Storage - binary64Total
	_ uint = binary128Storage - binary128Total
	_ uint = extended80Storage - extended80Total
)

// the bias is positive.
const (
	_ uint = 1<<(binary16Exp-1) - 2
	_ uint = 1<<(binary32Exp-1) - 2
	_ uint = 1<<(binary64Exp-1) - 2
	_ uint = 1<<(binary128Exp-1) - 2
	_ uint = 1<<(extended80Exp-1) - 2
)

// Descriptor holds the constants of a format.
type Descriptor struct {
	TotalBits   int
	SigBits     int
	ExpBits     int
	StorageBits int
	Bias        int32
	Encoding    Encoding
}

func newDescriptor(total, sig, exp, storage int, enc Encoding) Descriptor {
	return Descriptor{
		TotalBits:   total,
		SigBits:     sig,
		ExpBits:     exp,
		StorageBits: storage,
		Bias:        1<<(exp-1) - 1,
		Encoding:    enc,
	}
}

var (
	descriptors = [numTypes]Descriptor{
		Binary16:   newDescriptor(binary16Total, binary16Sig, binary16Exp, binary16Storage, IEEE754),
		Binary32:   newDescriptor(binary32Total, binary32Sig, binary32Exp, binary32Storage, IEEE754),
		Binary64:   newDescriptor(binary64Total, binary64Sig, binary64Exp, binary64Storage, IEEE754),
		Binary128:  newDescriptor(binary128Total, binary128Sig, binary128Exp, binary128Storage, IEEE754),
		Extended80: newDescriptor(extended80Total, extended80Sig, extended80Exp, extended80Storage, X86ExtendedPrecision),
	}

	typeNames = [numTypes]string{
		Binary16:   "binary16",
		Binary32:   "binary32",
		Binary64:   "binary64",
		Binary128:  "binary128",
		Extended80: "extended80",
	}
)

// HasImplicitBit returns true if the leading significand bit is not stored.
func (d Descriptor) HasImplicitBit() bool {
	return d.Encoding == IEEE754
}

// HiddenBits returns 1 for formats with an implicit leading bit, 0 otherwise.
func (d Descriptor) HiddenBits() int {
	if d.HasImplicitBit() {
		return 1
	}
	return 0
}

// ExpDenorm returns the unbiased exponent encoded by an all-zero exponent field.
func (d Descriptor) ExpDenorm() int32 {
	return -d.Bias
}

// ExpMin returns the minimum unbiased exponent of a normal number.
func (d Descriptor) ExpMin() int32 {
	return d.ExpDenorm() + 1
}

// ExpMax returns the maximum unbiased exponent of a normal number.
func (d Descriptor) ExpMax() int32 {
	return d.Bias
}

// Types returns all supported formats.
func Types() []Type {
	return []Type{Binary16, Binary32, Binary64, Binary128, Extended80}
}

// Descriptor returns the constants of the format.
func (t Type) Descriptor() Descriptor {
	return descriptors[t]
}

// String returns the name of the format.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType returns a format by its name, case-insensitive.
// Aliases half, single, double, quad and x87 are accepted.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	switch name {
	case "half", "f16", "float16":
		return Binary16, nil
	case "single", "f32", "float32":
		return Binary32, nil
	case "double", "f64", "float64":
		return Binary64, nil
	case "quad", "f128", "float128":
		return Binary128, nil
	case "x87", "x86", "f80", "float80", "extended":
		return Extended80, nil
	}
	return 0, fmt.Errorf("unknown floating-point type %q", s)
}

// MustParseType is like ParseType, but panics on error.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}
