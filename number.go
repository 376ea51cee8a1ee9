// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

import (
	"errors"
	"log/slog"

	mu "github.com/avdva/floatrep/internal/mathutil"
)

var (
	// ErrOverflow is returned by Number if the value exceeds the largest finite number of the format.
	ErrOverflow = errors.New("floatrep: overflow")
	// ErrUnderflow is returned by Number if the value is below the smallest denormal of the format.
	ErrUnderflow = errors.New("floatrep: underflow")
)

// Assembler builds bit patterns from arbitrary (sign, exponent, significand) triples.
// It is immutable and safe for concurrent use.
type Assembler struct {
	t      Type
	logger *slog.Logger
}

// NewAssembler returns an assembler for the given format.
func NewAssembler(t Type, opts ...Option) *Assembler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Assembler{t: t, logger: o.logger}
}

// Type returns the format of the assembler.
func (a *Assembler) Type() Type {
	return a.t
}

// Number normalizes the significand and the exponent and packs them
// into a bit pattern, see Assembler.Number.
func (t Type) Number(sign bool, exponent int32, significand Bits) (Bits, error) {
	a := Assembler{t: t}
	return a.Number(sign, exponent, significand)
}

// Number returns the bit pattern for significand * 2^exponent with the given sign.
// The significand may have any magnitude, bits above the storage width are ignored.
// A zero significand gives a zero regardless of the exponent.
// Significand bits that do not fit the format are truncated.
// Returns ErrOverflow or ErrUnderflow if the value is out of the format's range.
// Just above the underflow threshold a nonzero value may still come back as a
// signed zero with a nil error, like Binary16 (-15, 1).
// The result is always normalized, so an Extended80 unnormal (a nonzero exponent
// field with the explicit bit clear) does not survive a Decompose/Number round trip.
func (a *Assembler) Number(sign bool, exponent int32, significand Bits) (Bits, error) {
	t, l := a.t, a.t.layout()
	significand = mu.Truncate(l.StorageBits, significand)
	tracing := a.tracing()
	if tracing {
		a.trace("number: arguments",
			slog.String("type", t.String()),
			slog.Bool("sign", sign),
			slog.Int64("exponent", int64(exponent)),
			a.bitsAttr("significand", significand))
	}
	if significand.IsZero() {
		if tracing {
			a.trace("number: zero significand")
		}
		return t.Zero(sign), nil
	}
	expMin, expMax := int64(l.ExpMin()), int64(l.ExpMax())
	if tracing {
		a.trace("number: constants",
			slog.Int("storage_bits", l.StorageBits),
			slog.Int("hidden_bits", l.HiddenBits()),
			slog.Int("sig_bits", l.SigBits),
			slog.Int("exp_bits", l.ExpBits),
			slog.Int("extra_bits", l.workingExtraBits),
			a.bitsAttr("min_working_sig", l.minWorkingSig),
			a.bitsAttr("max_working_sig", l.maxWorkingSig),
			slog.Int64("bias", int64(l.Bias)),
			slog.Int64("exp_min", expMin),
			slog.Int64("exp_max", expMax))
	}
	// the working significand has its leading bit moved to the top of the storage,
	// the bits below the format's significand detect overflow and underflow.
	shl := mu.LeadingZeros(l.StorageBits, significand)
	workingSig := mu.Truncate(l.StorageBits, significand.Lsh(uint(shl)))
	workingExp := int64(exponent) - int64(shl) + int64(l.StorageBits) - int64(l.HiddenBits())
	if tracing {
		a.trace("number: normalized",
			slog.Int("shift", shl),
			a.bitsAttr("working_sig", workingSig),
			slog.Int64("working_exp", workingExp))
	}
	if workingExp < expMin {
		sigUnderflow := workingSig.Cmp(l.minWorkingSig) <= 0
		shr := expMin - workingExp - 1
		if shr > int64(l.SigBits) || (shr == int64(l.SigBits) && sigUnderflow) {
			if tracing {
				a.trace("number: underflow", slog.Int64("shr", shr), slog.Bool("sig_underflow", sigUnderflow))
			}
			return Bits{}, ErrUnderflow
		}
		result := a.pack(sign, 0, workingSig.Rsh(uint(shr)+uint(l.workingExtraBits)))
		if tracing {
			a.trace("number: denormal", slog.Int64("shr", shr), a.bitsAttr("result", result))
		}
		return result, nil
	}
	sigOverflow := workingSig.Cmp(l.maxWorkingSig) > 0
	if workingExp > expMax || (workingExp == expMax && sigOverflow) {
		if tracing {
			a.trace("number: overflow", slog.Bool("sig_overflow", sigOverflow))
		}
		return Bits{}, ErrOverflow
	}
	result := a.pack(sign, int32(workingExp)+l.Bias, workingSig.Rsh(uint(l.workingExtraBits)))
	if tracing {
		a.trace("number: normal", a.bitsAttr("result", result))
	}
	return result, nil
}

func (a *Assembler) pack(sign bool, biasedExponent int32, significand Bits) Bits {
	if a.tracing() {
		a.trace("number: pack",
			slog.Bool("sign", sign),
			slog.Int64("biased_exponent", int64(biasedExponent)),
			a.bitsAttr("significand", a.t.SignificandField(significand)))
	}
	return a.t.Pack(sign, biasedExponent, significand)
}
