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

// InterpolatorOps is the full register-level operation set of one
// interpolator, as specified in spec.md section 4.2. *Engine implements it
// directly (pure simulation); the hwproxy package implements it again by
// delegating to an embedded *Engine for the simulated half and mirroring
// every call onto a remote device (spec.md section 4.3 / 9: "dynamic
// dispatch in the source... re-express as a trait/interface implemented by
// both the pure engine and the proxy").
type InterpolatorOps interface {
	SetAccum(i int, v uint32) error
	SetBase(i int, v uint32) error
	SetCtrl(i int, v uint32) error
	Add(i int, v uint32) error
	Base01(v uint32) error
	Peek(i int) (uint32, error)
	PeekRaw(i int) (uint32, error)
	Pop(i int) (uint32, error)
	Save() State
	Restore(s State) error
}
