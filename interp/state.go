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

import "fmt"

// State is a full snapshot of one interpolator: the primary (restorable)
// fields plus the derived fields exposed by peek/peekraw. It is what save()
// returns and restore() consumes, and it is the value the hardware proxy
// diffs against a live device.
type State struct {
	Accum   [2]uint32
	Base    [3]uint32
	Ctrl    [2]uint32
	Peek    [3]uint32
	PeekRaw [2]uint32
}

// XOR returns the componentwise exclusive-or of s and other. A XOR of two
// equal states is the zero State.
func (s State) XOR(other State) State {
	var d State
	for i := range s.Accum {
		d.Accum[i] = s.Accum[i] ^ other.Accum[i]
	}
	for i := range s.Base {
		d.Base[i] = s.Base[i] ^ other.Base[i]
	}
	for i := range s.Ctrl {
		d.Ctrl[i] = s.Ctrl[i] ^ other.Ctrl[i]
	}
	for i := range s.Peek {
		d.Peek[i] = s.Peek[i] ^ other.Peek[i]
	}
	for i := range s.PeekRaw {
		d.PeekRaw[i] = s.PeekRaw[i] ^ other.PeekRaw[i]
	}
	return d
}

// IsZero returns true if every component of s is zero, eg. the result of
// XOR-ing two identical states.
func (s State) IsZero() bool {
	for _, v := range s.Accum {
		if v != 0 {
			return false
		}
	}
	for _, v := range s.Base {
		if v != 0 {
			return false
		}
	}
	for _, v := range s.Ctrl {
		if v != 0 {
			return false
		}
	}
	for _, v := range s.Peek {
		if v != 0 {
			return false
		}
	}
	for _, v := range s.PeekRaw {
		if v != 0 {
			return false
		}
	}
	return true
}

// String renders every component of the state as lowercase 0x-prefixed hex,
// as required by spec.md section 6.
func (s State) String() string {
	return fmt.Sprintf(
		"State(accum=[%#x, %#x], base=[%#x, %#x, %#x], ctrl=[%#x, %#x], peek=[%#x, %#x, %#x], peekraw=[%#x, %#x])",
		s.Accum[0], s.Accum[1],
		s.Base[0], s.Base[1], s.Base[2],
		s.Ctrl[0], s.Ctrl[1],
		s.Peek[0], s.Peek[1], s.Peek[2],
		s.PeekRaw[0], s.PeekRaw[1],
	)
}
