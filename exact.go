// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// ErrNotFinite is returned by Exact for infinities and NaNs.
var ErrNotFinite = errors.New("floatrep: value is not finite")

var five = big.NewInt(5)

// Exact returns the exact decimal value of a finite bit pattern.
// Unlike the Exponent/Significand pair, it uses the true scaling of the
// format: denormals share the exponent of the smallest normal, and the
// leading bit of Extended80 is the integer bit.
// The sign of a negative zero is lost.
func (t Type) Exact(b Bits) (decimal.Decimal, error) {
	if !t.Classify(b).IsFinite() {
		return decimal.Decimal{}, ErrNotFinite
	}
	l := t.layout()
	sig := t.SignificandField(b)
	unbiased := int64(l.ExpMin())
	if t.IsNormal(b) {
		unbiased = int64(t.BiasedExponent(b)) - int64(l.Bias)
		if l.HasImplicitBit() {
			sig = sig.Or(l.hiddenBit)
		}
	}
	fracBits := int64(l.SigBits)
	if !l.HasImplicitBit() {
		fracBits--
	}
	scale := unbiased - fracBits
	mag := sig.Big()
	var d decimal.Decimal
	if scale >= 0 {
		d = decimal.NewFromBigInt(mag.Lsh(mag, uint(scale)), 0)
	} else {
		// m * 2^-k == m * 5^k * 10^-k
		p := new(big.Int).Exp(five, big.NewInt(-scale), nil)
		d = decimal.NewFromBigInt(mag.Mul(mag, p), int32(scale))
	}
	if t.Sign(b) {
		d = d.Neg()
	}
	return d, nil
}
