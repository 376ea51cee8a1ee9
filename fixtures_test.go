// Copyright 2024 Aleksandr Demakin. All rights reserved.

package floatrep

type value uint8

const (
	posInf value = iota
	posLargestNormal
	pos1
	posTenth
	posSmallestNormal
	posLargestDenormal
	posSmallestDenormal
	pos0
	neg0
	negSmallestDenormal
	negLargestDenormal
	negSmallestNormal
	negTenth
	neg1
	negLargestNormal
	negInf
	quietNaN
	signalingNaN
)

func (v value) class() Class {
	switch v {
	case posInf, negInf:
		return ClassInfinity
	case posLargestNormal, pos1, posTenth, posSmallestNormal,
		negSmallestNormal, negTenth, neg1, negLargestNormal:
		return ClassNormal
	case posLargestDenormal, posSmallestDenormal, negSmallestDenormal, negLargestDenormal:
		return ClassDenormal
	case pos0, neg0:
		return ClassZero
	default:
		return ClassNaN
	}
}

type fixture struct {
	v   value
	rep string
}

// known bit patterns of every format.
var fixtures = map[Type][]fixture{
	Binary16: {
		{posInf, "0x7C00"},
		{posLargestNormal, "0x7BFF"},
		{pos1, "0x3C00"},
		{posTenth, "0x2E66"},
		{posSmallestNormal, "0x0400"},
		{posLargestDenormal, "0x03FF"},
		{posSmallestDenormal, "0x0001"},
		{pos0, "0x0000"},
		{neg0, "0x8000"},
		{negSmallestDenormal, "0x8001"},
		{negLargestDenormal, "0x83FF"},
		{negSmallestNormal, "0x8400"},
		{negTenth, "0xAE66"},
		{neg1, "0xBC00"},
		{negLargestNormal, "0xFBFF"},
		{negInf, "0xFC00"},
		{quietNaN, "0x7E00"},
		{signalingNaN, "0x7D00"},
	},
	Binary32: {
		{posInf, "0x7F800000"},
		{posLargestNormal, "0x7F7FFFFF"},
		{pos1, "0x3F800000"},
		{posTenth, "0x3DCCCCCD"},
		{posSmallestNormal, "0x00800000"},
		{posLargestDenormal, "0x007FFFFF"},
		{posSmallestDenormal, "0x00000001"},
		{pos0, "0x00000000"},
		{neg0, "0x80000000"},
		{negSmallestDenormal, "0x80000001"},
		{negLargestDenormal, "0x807FFFFF"},
		{negSmallestNormal, "0x80800000"},
		{negTenth, "0xBDCCCCCD"},
		{neg1, "0xBF800000"},
		{negLargestNormal, "0xFF7FFFFF"},
		{negInf, "0xFF800000"},
		{quietNaN, "0x7FC00000"},
		{signalingNaN, "0x7FA00000"},
	},
	Binary64: {
		{posInf, "0x7FF0000000000000"},
		{posLargestNormal, "0x7FEFFFFFFFFFFFFF"},
		{pos1, "0x3FF0000000000000"},
		{posTenth, "0x3FB999999999999A"},
		{posSmallestNormal, "0x0010000000000000"},
		{posLargestDenormal, "0x000FFFFFFFFFFFFF"},
		{posSmallestDenormal, "0x0000000000000001"},
		{pos0, "0x0000000000000000"},
		{neg0, "0x8000000000000000"},
		{negSmallestDenormal, "0x8000000000000001"},
		{negLargestDenormal, "0x800FFFFFFFFFFFFF"},
		{negSmallestNormal, "0x8010000000000000"},
		{negTenth, "0xBFB999999999999A"},
		{neg1, "0xBFF0000000000000"},
		{negLargestNormal, "0xFFEFFFFFFFFFFFFF"},
		{negInf, "0xFFF0000000000000"},
		{quietNaN, "0x7FF8000000000000"},
		{signalingNaN, "0x7FF4000000000000"},
	},
	Binary128: {
		{posInf, "0x7FFF0000000000000000000000000000"},
		{posLargestNormal, "0x7FFEFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
		{pos1, "0x3FFF0000000000000000000000000000"},
		{posTenth, "0x3FFB999999999999A000000000000000"},
		{posSmallestNormal, "0x00010000000000000000000000000000"},
		{posLargestDenormal, "0x0000FFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
		{posSmallestDenormal, "0x00000000000000000000000000000001"},
		{pos0, "0x00000000000000000000000000000000"},
		{neg0, "0x80000000000000000000000000000000"},
		{negSmallestDenormal, "0x80000000000000000000000000000001"},
		{negLargestDenormal, "0x8000FFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
		{negSmallestNormal, "0x80010000000000000000000000000000"},
		{negTenth, "0xBFFB999999999999A000000000000000"},
		{neg1, "0xBFFF0000000000000000000000000000"},
		{negLargestNormal, "0xFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
		{negInf, "0xFFFF0000000000000000000000000000"},
		{quietNaN, "0x7FFF8000000000000000000000000000"},
		{signalingNaN, "0x7FFF4000000000000000000000000000"},
	},
	Extended80: {
		{posInf, "0x7FFF8000000000000000"},
		{posLargestNormal, "0x7FFEFFFFFFFFFFFFFFFF"},
		{pos1, "0x3FFF8000000000000000"},
		{posTenth, "0x3FFBCCCCCCCCCCCCD000"},
		{posSmallestNormal, "0x00018000000000000000"},
		{posLargestDenormal, "0x00007FFFFFFFFFFFFFFF"},
		{posSmallestDenormal, "0x00000000000000000001"},
		{pos0, "0x00000000000000000000"},
		{neg0, "0x80000000000000000000"},
		{negSmallestDenormal, "0x80000000000000000001"},
		{negLargestDenormal, "0x80007FFFFFFFFFFFFFFF"},
		{negSmallestNormal, "0x80018000000000000000"},
		{negTenth, "0xBFFBCCCCCCCCCCCCD000"},
		{neg1, "0xBFFF8000000000000000"},
		{negLargestNormal, "0xFFFEFFFFFFFFFFFFFFFF"},
		{negInf, "0xFFFF8000000000000000"},
		{quietNaN, "0x7FFFC000000000000000"},
		{signalingNaN, "0x7FFFA000000000000000"},
	},
}

func fixtureBits(t Type, v value) Bits {
	for _, f := range fixtures[t] {
		if f.v == v {
			return MustParseBits(f.rep)
		}
	}
	panic("no fixture")
}
