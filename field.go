// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

import (
	mu "github.com/avdva/floatrep/internal/mathutil"
)

// layout holds the masks derived from a Descriptor.
type layout struct {
	Descriptor

	sigMask  Bits
	expMask  Bits
	signMask Bits
	fpMask   Bits

	// explicitBit is the stored leading significand bit of explicit formats, zero otherwise.
	explicitBit Bits
	// quietBit is the default NaN payload.
	quietBit Bits
	// infSigMask covers the significand bits that must be zero in an infinity.
	infSigMask Bits
	hiddenBit  Bits

	// working significand bounds used by Number.
	workingExtraBits int
	minWorkingSig    Bits
	maxWorkingSig    Bits
}

var layouts [numTypes]layout

func init() {
	for _, t := range Types() {
		layouts[t] = newLayout(t.Descriptor())
	}
}

func newLayout(d Descriptor) layout {
	l := layout{
		Descriptor: d,
		sigMask:    mu.MaskTrailingOnes(d.SigBits),
		expMask:    mu.MaskTrailingOnes(d.ExpBits).Lsh(uint(d.SigBits)),
		signMask:   mu.Bit(d.SigBits + d.ExpBits),
		fpMask:     mu.MaskTrailingOnes(d.TotalBits),
		hiddenBit:  mu.Bit(d.SigBits),
	}
	l.infSigMask = l.sigMask
	l.quietBit = mu.Bit(d.SigBits - 1)
	if !d.HasImplicitBit() {
		l.explicitBit = mu.Bit(d.SigBits - 1)
		l.infSigMask = mu.MaskTrailingOnes(d.SigBits - 1)
		l.quietBit = mu.Bit(d.SigBits - 2)
	}
	l.workingExtraBits = d.StorageBits - d.SigBits - d.HiddenBits()
	l.minWorkingSig = mu.MaskTrailingOnes(l.workingExtraBits)
	l.maxWorkingSig = mu.MaskTrailingZeros(d.StorageBits, l.workingExtraBits)
	return l
}

func (t Type) layout() *layout {
	return &layouts[t]
}

// SignMask returns the mask of the sign bit.
func (t Type) SignMask() Bits {
	return t.layout().signMask
}

// ExponentMask returns the mask of the exponent field.
func (t Type) ExponentMask() Bits {
	return t.layout().expMask
}

// SignificandMask returns the mask of the significand field.
func (t Type) SignificandMask() Bits {
	return t.layout().sigMask
}

// Mask returns the mask of all the bits of the format.
func (t Type) Mask() Bits {
	return t.layout().fpMask
}

// SignField returns the sign bit of b, in place.
func (t Type) SignField(b Bits) Bits {
	return b.And(t.layout().signMask)
}

// ExponentField returns the exponent field of b, in place.
func (t Type) ExponentField(b Bits) Bits {
	return b.And(t.layout().expMask)
}

// SignificandField returns the significand field of b.
func (t Type) SignificandField(b Bits) Bits {
	return b.And(t.layout().sigMask)
}

// BiasedExponent returns the exponent field of b shifted down to bit zero.
func (t Type) BiasedExponent(b Bits) int32 {
	l := t.layout()
	return int32(b.And(l.expMask).Rsh(uint(l.SigBits)).Lo)
}
