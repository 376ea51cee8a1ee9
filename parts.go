// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

import (
	"fmt"
	"strconv"
	"strings"

	mu "github.com/avdva/floatrep/internal/mathutil"
)

// Parts is a decomposed bit pattern.
type Parts struct {
	Type        Type
	Sign        bool
	Exponent    int32
	Significand Bits
	Class       Class
}

// Decompose splits b into its sign, exponent and significand, see Exponent and Significand.
// Parts.Bits restores every finite pattern except Extended80 unnormals,
// which come back normalized.
func (t Type) Decompose(b Bits) Parts {
	return Parts{
		Type:        t,
		Sign:        t.Sign(b),
		Exponent:    t.Exponent(b),
		Significand: t.Significand(b),
		Class:       t.Classify(b),
	}
}

// Bits assembles the parts back into a bit pattern.
// Finite values go through Number, infinities and NaNs are rebuilt with
// Infinity and NaN, so that the NaN payload is kept.
// For Extended80 the explicit leading bit of infinities and NaNs is always set.
func (p Parts) Bits() (Bits, error) {
	switch p.Class {
	case ClassInfinity:
		return p.Type.Infinity(p.Sign), nil
	case ClassNaN:
		return p.Type.NaN(p.Sign, p.Type.SignificandField(p.Significand)), nil
	default:
		return p.Type.Number(p.Sign, p.Exponent, p.Significand)
	}
}

// String returns a short representation, like `-0x400p-10 (binary16 normal)`.
func (p Parts) String() string {
	var builder strings.Builder
	if p.Sign {
		builder.WriteRune('-')
	}
	builder.WriteString(mu.FormatHex(0, p.Significand))
	builder.WriteRune('p')
	builder.WriteString(strconv.FormatInt(int64(p.Exponent), 10))
	builder.WriteString(" (")
	builder.WriteString(p.Type.String())
	builder.WriteRune(' ')
	builder.WriteString(p.Class.String())
	builder.WriteRune(')')
	return builder.String()
}

// GoString returns debug string representation.
func (p Parts) GoString() string {
	return fmt.Sprintf("floatrep.Parts{Type: %v, Sign: %v, Exponent: %d, Significand: %s, Class: %v}",
		p.Type, p.Sign, p.Exponent, mu.FormatHex(p.Type.layout().StorageBits, p.Significand), p.Class)
}

// MarshalJSON marshals parts as an object, like
// `{"type":"binary16","sign":false,"exp":-10,"sig":"0x0400","class":"normal"}`.
func (p Parts) MarshalJSON() ([]byte, error) {
	var builder strings.Builder
	builder.WriteString(`{"type":`)
	builder.WriteString(strconv.Quote(p.Type.String()))
	builder.WriteString(`,"sign":`)
	builder.WriteString(strconv.FormatBool(p.Sign))
	builder.WriteString(`,"exp":`)
	builder.WriteString(strconv.FormatInt(int64(p.Exponent), 10))
	builder.WriteString(`,"sig":`)
	builder.WriteString(strconv.Quote(mu.FormatHex(p.Type.layout().StorageBits, p.Significand)))
	builder.WriteString(`,"class":`)
	builder.WriteString(strconv.Quote(p.Class.String()))
	builder.WriteRune('}')
	return []byte(builder.String()), nil
}

// ParseBits parses a hex bit pattern, like "0x3C00". Underscores are ignored.
func ParseBits(s string) (Bits, error) {
	return mu.ParseHex(s)
}

// MustParseBits is like ParseBits, but panics on error.
func MustParseBits(s string) Bits {
	b, err := ParseBits(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FormatBits formats b as a hex number padded to the width of the format.
func (t Type) FormatBits(b Bits) string {
	return mu.FormatHex(t.layout().TotalBits, b)
}
