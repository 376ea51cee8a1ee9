// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

import (
	"fmt"
)

// Class is a floating-point category. Every bit pattern belongs to exactly one class.
type Class uint8

const (
	// ClassZero is a positive or negative zero.
	ClassZero Class = iota
	// ClassDenormal is a subnormal number.
	ClassDenormal
	// ClassNormal is a normal number.
	ClassNormal
	// ClassInfinity is a positive or negative infinity.
	ClassInfinity
	// ClassNaN is a not-a-number.
	ClassNaN
)

var classNames = [...]string{
	ClassZero:     "zero",
	ClassDenormal: "denormal",
	ClassNormal:   "normal",
	ClassInfinity: "infinity",
	ClassNaN:      "nan",
}

// String returns the name of the class.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// IsFinite returns true for zeros, denormals and normals.
func (c Class) IsFinite() bool {
	return c <= ClassNormal
}

func (l *layout) expAllZeros(b Bits) bool {
	return b.And(l.expMask).IsZero()
}

func (l *layout) expAllOnes(b Bits) bool {
	return b.And(l.expMask) == l.expMask
}

func (l *layout) sigAllZeros(b Bits) bool {
	return b.And(l.sigMask).IsZero()
}

func (l *layout) isDenormal(b Bits) bool {
	return l.expAllZeros(b) && !l.sigAllZeros(b)
}

func (l *layout) isInfinity(b Bits) bool {
	// an explicit leading bit is not inspected.
	return l.expAllOnes(b) && b.And(l.infSigMask).IsZero()
}

// IsZero returns true if b is a positive or negative zero.
func (t Type) IsZero(b Bits) bool {
	l := t.layout()
	return l.expAllZeros(b) && l.sigAllZeros(b)
}

// IsDenormal returns true if b is a subnormal number.
func (t Type) IsDenormal(b Bits) bool {
	return t.layout().isDenormal(b)
}

// IsNormal returns true if b is a normal number.
// For Extended80 the explicit leading bit is not inspected.
func (t Type) IsNormal(b Bits) bool {
	l := t.layout()
	return !l.expAllZeros(b) && !l.expAllOnes(b)
}

// IsInfinity returns true if b is a positive or negative infinity.
func (t Type) IsInfinity(b Bits) bool {
	return t.layout().isInfinity(b)
}

// IsNaN returns true if b is a not-a-number.
func (t Type) IsNaN(b Bits) bool {
	l := t.layout()
	return l.expAllOnes(b) && !l.isInfinity(b)
}

// Classify returns the class of b.
func (t Type) Classify(b Bits) Class {
	l := t.layout()
	switch {
	case l.expAllZeros(b):
		if l.sigAllZeros(b) {
			return ClassZero
		}
		return ClassDenormal
	case !l.expAllOnes(b):
		return ClassNormal
	case l.isInfinity(b):
		return ClassInfinity
	default:
		return ClassNaN
	}
}

// Sign returns true if the sign bit of b is set.
func (t Type) Sign(b Bits) bool {
	return !t.SignField(b).IsZero()
}

// Exponent returns the unbiased exponent of b, adjusted so that the
// significand is an integer: value = Significand(b) * 2^Exponent(b).
// For infinities and NaNs the result is derived from the bits only.
func (t Type) Exponent(b Bits) int32 {
	l := t.layout()
	return t.BiasedExponent(b) - l.Bias - int32(l.SigBits)
}

// Significand returns the significand of b with the implicit leading bit
// inserted for normal numbers of IEEE-754 formats.
func (t Type) Significand(b Bits) Bits {
	l := t.layout()
	sig := b.And(l.sigMask)
	if l.HasImplicitBit() && !l.isDenormal(b) {
		return sig.Or(l.hiddenBit)
	}
	return sig
}
