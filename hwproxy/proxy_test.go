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

package hwproxy_test

import (
	"testing"

	"github.com/Ferdi265/rp2040-interpolator/hwproxy"
	"github.com/Ferdi265/rp2040-interpolator/interp"
	"github.com/Ferdi265/rp2040-interpolator/test"
)

func newProxy(t *testing.T, n int, generation interp.Generation) (*hwproxy.Proxy, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice(generation)
	p, err := hwproxy.NewProxy(n, generation, dev)
	test.Equate(t, err, nil)
	return p, dev
}

func TestProxyMirrorsMutations(t *testing.T) {
	p, _ := newProxy(t, 0, interp.RP2040)

	test.Equate(t, p.SetAccum(0, 0x1234_5678), nil)
	test.Equate(t, p.SetCtrl(0, 0), nil)

	got, err := p.Peek(0)
	test.Equate(t, err, nil)

	sw := p.SaveSim()
	test.Equate(t, got, sw.Peek[0])
}

func TestProxyDiffAgreesWhenInSync(t *testing.T) {
	p, _ := newProxy(t, 0, interp.RP2350)

	test.Equate(t, p.SetAccum(0, 42), nil)
	test.Equate(t, p.SetBase(1, 99), nil)
	test.Equate(t, p.SetCtrl(0, 0x12345), nil)

	diff := p.Diff()
	test.Equate(t, diff.IsZero(), true)
}

func TestProxyRestoreRoundTrip(t *testing.T) {
	p, _ := newProxy(t, 1, interp.RP2040)

	s := interp.State{
		Accum: [2]uint32{1, 2},
		Base:  [3]uint32{3, 4, 5},
		Ctrl:  [2]uint32{0, 0},
	}
	test.Equate(t, p.Restore(s), nil)

	diff := p.Diff()
	test.Equate(t, diff.IsZero(), true)
}

func TestProxyQueryGeneration(t *testing.T) {
	p, _ := newProxy(t, 0, interp.RP2350)
	g, err := p.QueryGeneration()
	test.Equate(t, err, nil)
	test.Equate(t, g, interp.RP2350)
}

func TestProxyProtocolSyntaxError(t *testing.T) {
	p, dev := newProxy(t, 0, interp.RP2040)
	dev.forceReply = "syntax bad register"

	_, err := p.Peek(0)
	test.ExpectFailure(t, err)
}

func TestProxyProtocolShapeError(t *testing.T) {
	p, dev := newProxy(t, 0, interp.RP2040)
	dev.forceReply = "ok"

	_, err := p.Peek(0)
	test.ExpectFailure(t, err)
}
