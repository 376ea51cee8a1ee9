// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

import (
	"lukechampine.com/uint128"

	mu "github.com/avdva/floatrep/internal/mathutil"
)

// Zero returns a zero with the given sign.
func (t Type) Zero(sign bool) Bits {
	if sign {
		return t.layout().signMask
	}
	return uint128.Zero
}

// Infinity returns an infinity with the given sign.
// For Extended80 the explicit leading bit is set.
func (t Type) Infinity(sign bool) Bits {
	l := t.layout()
	return t.Zero(sign).Or(l.expMask).Or(l.explicitBit)
}

// NaN returns a NaN with the given sign and payload.
// A zero payload is replaced with the quiet bit: the highest significand bit,
// or for Extended80 the one below the explicit leading bit.
// Other payloads are masked to the significand field and used as is;
// a payload that leaves all the non-explicit significand bits zero gives an infinity.
func (t Type) NaN(sign bool, payload Bits) Bits {
	l := t.layout()
	if payload.IsZero() {
		payload = l.quietBit
	} else {
		payload = payload.And(l.sigMask)
	}
	return t.Infinity(sign).Or(payload)
}

// Pack assembles a bit pattern from a sign, a biased exponent and a significand
// without any checks. The significand is masked to the significand field,
// the biased exponent must fit the exponent field, otherwise the result is garbage.
func (t Type) Pack(sign bool, biasedExponent int32, significand Bits) Bits {
	l := t.layout()
	exp := uint128.From64(uint64(uint32(biasedExponent))).Lsh(uint(l.SigBits))
	return mu.Truncate(l.StorageBits, t.Zero(sign).Or(exp).Or(significand.And(l.sigMask)))
}
