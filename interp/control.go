// This file is part of rp2040-interpolator.
//
// rp2040-interpolator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rp2040-interpolator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rp2040-interpolator.  If not, see <https://www.gnu.org/licenses/>.

package interp

// Control is the structured view of a 32bit interpolator control register.
// Bits 26-31 are reserved and always read back as zero; Control never
// stores them.
type Control struct {
	Shift       uint32
	MaskLSB     uint32
	MaskMSB     uint32
	IsSigned    bool
	CrossInput  bool
	CrossResult bool
	AddRaw      bool
	ForceMSB    uint32
	Blend       bool
	Clamp       bool
	Overf0      bool
	Overf1      bool
	Overf       bool
}

// bit positions and widths of the control word, see spec.md section 3.
const (
	shiftBit       = 0
	shiftWidth     = 5
	maskLSBBit     = 5
	maskLSBWidth   = 5
	maskMSBBit     = 10
	maskMSBWidth   = 5
	isSignedBit    = 15
	crossInputBit  = 16
	crossResultBit = 17
	addRawBit      = 18
	forceMSBBit    = 19
	forceMSBWidth  = 2
	blendBit       = 21
	clampBit       = 22
	overf0Bit      = 23
	overf1Bit      = 24
	overfBit       = 25
)

func bitfield(v uint32, pos, width uint32) uint32 {
	return (v >> pos) & ((1 << width) - 1)
}

func bitflag(v uint32, pos uint32) bool {
	return (v>>pos)&1 == 1
}

func setBitfield(v *uint32, field, pos, width uint32) {
	*v |= (field & ((1 << width) - 1)) << pos
}

func setBitflag(v *uint32, flag bool, pos uint32) {
	if flag {
		*v |= 1 << pos
	}
}

// DecodeControl converts a packed 32bit control word into a structured
// Control view.
func DecodeControl(v uint32) Control {
	return Control{
		Shift:       bitfield(v, shiftBit, shiftWidth),
		MaskLSB:     bitfield(v, maskLSBBit, maskLSBWidth),
		MaskMSB:     bitfield(v, maskMSBBit, maskMSBWidth),
		IsSigned:    bitflag(v, isSignedBit),
		CrossInput:  bitflag(v, crossInputBit),
		CrossResult: bitflag(v, crossResultBit),
		AddRaw:      bitflag(v, addRawBit),
		ForceMSB:    bitfield(v, forceMSBBit, forceMSBWidth),
		Blend:       bitflag(v, blendBit),
		Clamp:       bitflag(v, clampBit),
		Overf0:      bitflag(v, overf0Bit),
		Overf1:      bitflag(v, overf1Bit),
		Overf:       bitflag(v, overfBit),
	}
}

// EncodeControl packs a Control view back into a 32bit control word. Bits
// 26-31 are always zero in the result.
func EncodeControl(c Control) uint32 {
	var v uint32
	setBitfield(&v, c.Shift, shiftBit, shiftWidth)
	setBitfield(&v, c.MaskLSB, maskLSBBit, maskLSBWidth)
	setBitfield(&v, c.MaskMSB, maskMSBBit, maskMSBWidth)
	setBitflag(&v, c.IsSigned, isSignedBit)
	setBitflag(&v, c.CrossInput, crossInputBit)
	setBitflag(&v, c.CrossResult, crossResultBit)
	setBitflag(&v, c.AddRaw, addRawBit)
	setBitfield(&v, c.ForceMSB, forceMSBBit, forceMSBWidth)
	setBitflag(&v, c.Blend, blendBit)
	setBitflag(&v, c.Clamp, clampBit)
	setBitflag(&v, c.Overf0, overf0Bit)
	setBitflag(&v, c.Overf1, overf1Bit)
	setBitflag(&v, c.Overf, overfBit)
	return v
}
