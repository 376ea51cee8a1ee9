// Copyright 2024 Aleksandr Demakin. All rights reserved.

// Package mathutil contains bit helpers shared by the floating-point codec.
// All values are carried in a 128-bit container; the width arguments tell
// which low bits are meaningful.
package mathutil

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// MaxWidth is the widest supported container, in bits.
const MaxWidth = 128

// LeadingZeros returns the number of leading zero bits in v viewed as a
// width-bit unsigned integer. The result is width for v == 0.
// Bits of v above width must be zero.
// The narrowest hardware primitive covering width is used; for 128 bits the
// high half is consulted first.
func LeadingZeros(width int, v uint128.Uint128) int {
	switch {
	case width <= 16:
		return bits.LeadingZeros16(uint16(v.Lo)) - (16 - width)
	case width <= 32:
		return bits.LeadingZeros32(uint32(v.Lo)) - (32 - width)
	case width <= 64:
		return bits.LeadingZeros64(v.Lo) - (64 - width)
	default:
		if v.Hi != 0 {
			return bits.LeadingZeros64(v.Hi) - (MaxWidth - width)
		}
		return 64 + bits.LeadingZeros64(v.Lo) - (MaxWidth - width)
	}
}

// MaskTrailingOnes returns a value with the count lowest bits set.
func MaskTrailingOnes(count int) uint128.Uint128 {
	switch {
	case count <= 0:
		return uint128.Zero
	case count >= MaxWidth:
		return uint128.Max
	}
	return uint128.Max.Rsh(uint(MaxWidth - count))
}

// MaskLeadingOnes returns a value with the count highest bits of a width-bit
// integer set.
func MaskLeadingOnes(width, count int) uint128.Uint128 {
	return MaskTrailingOnes(width).Xor(MaskTrailingOnes(width - count))
}

// MaskTrailingZeros returns a width-bit value with all bits set except the
// count lowest ones.
func MaskTrailingZeros(width, count int) uint128.Uint128 {
	return MaskLeadingOnes(width, width-count)
}

// Bit returns a value with only the bit at pos set.
func Bit(pos int) uint128.Uint128 {
	return uint128.From64(1).Lsh(uint(pos))
}

// Truncate drops all bits of v above width.
func Truncate(width int, v uint128.Uint128) uint128.Uint128 {
	return v.And(MaskTrailingOnes(width))
}

// HexDigits returns the number of hex digits needed to show a width-bit integer.
func HexDigits(width int) int {
	return (width + 3) / 4
}

// FormatHex formats v as a 0x-prefixed upper case hex number,
// zero-padded to the width.
func FormatHex(width int, v uint128.Uint128) string {
	s := fmt.Sprintf("%016X%016X", v.Hi, v.Lo)
	n := HexDigits(width)
	if n > len(s) {
		n = len(s)
	}
	if trimmed := strings.TrimLeft(s, "0"); len(trimmed) > n {
		n = len(trimmed)
	}
	if n == 0 {
		n = 1
	}
	return "0x" + s[len(s)-n:]
}

// ParseHex parses a hex number of up to 128 bits. The 0x prefix is optional,
// underscores are ignored.
func ParseHex(s string) (uint128.Uint128, error) {
	orig := s
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	s = strings.ReplaceAll(s, "_", "")
	if len(s) == 0 {
		return uint128.Zero, fmt.Errorf("empty hex number %q", orig)
	}
	if len(s) > 32 {
		if s = strings.TrimLeft(s, "0"); len(s) > 32 {
			return uint128.Zero, fmt.Errorf("hex number %q exceeds 128 bits", orig)
		}
	}
	var hiStr, loStr string
	if len(s) > 16 {
		hiStr, loStr = s[:len(s)-16], s[len(s)-16:]
	} else {
		loStr = s
	}
	var hi, lo uint64
	var err error
	if len(hiStr) > 0 {
		if hi, err = strconv.ParseUint(hiStr, 16, 64); err != nil {
			return uint128.Zero, fmt.Errorf("bad hex number %q: %w", orig, err)
		}
	}
	if len(loStr) > 0 {
		if lo, err = strconv.ParseUint(loStr, 16, 64); err != nil {
			return uint128.Zero, fmt.Errorf("bad hex number %q: %w", orig, err)
		}
	}
	return uint128.New(lo, hi), nil
}
