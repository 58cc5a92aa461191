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
	"fmt"
	"strconv"
	"strings"

	"github.com/Ferdi265/rp2040-interpolator/interp"
)

// fakeDevice is a Transport double that behaves like a perfectly compliant
// hardware device, backed by its own independent *interp.Engine. It lets
// proxy tests exercise the wire protocol without any real serial I/O.
type fakeDevice struct {
	engines    [2]*interp.Engine
	generation interp.Generation
	lastReply  string
	forceReply string // when non-empty, overrides the next reply verbatim
}

func newFakeDevice(generation interp.Generation) *fakeDevice {
	e0, _ := interp.NewEngine(0, generation)
	e1, _ := interp.NewEngine(1, generation)
	return &fakeDevice{engines: [2]*interp.Engine{e0, e1}, generation: generation}
}

// Write implements io.Writer: it's the host's command line.
func (d *fakeDevice) Write(p []byte) (int, error) {
	cmd := strings.TrimRight(string(p), "\n")
	d.lastReply = d.handle(cmd)
	return len(p), nil
}

// ReadLine implements hwproxy.Transport.
func (d *fakeDevice) ReadLine() (string, error) {
	if d.forceReply != "" {
		r := d.forceReply
		d.forceReply = ""
		return r, nil
	}
	return d.lastReply, nil
}

func parseHex(s string) uint32 {
	v, _ := strconv.ParseUint(s, 0, 32)
	return uint32(v)
}

func (d *fakeDevice) handle(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return "syntax empty command"
	}

	switch fields[0] {
	case "generation":
		return fmt.Sprintf("generation %s", d.generation)

	case "write":
		n := parseHex(fields[1])
		reg := fields[2]
		v := parseHex(fields[3])
		if err := d.write(int(n), reg, v); err != nil {
			return "syntax " + err.Error()
		}
		return "ok"

	case "read":
		n := parseHex(fields[1])
		reg := fields[2]
		v, err := d.read(int(n), reg)
		if err != nil {
			return "syntax " + err.Error()
		}
		return fmt.Sprintf("data %s", hexOf(v))

	case "dump":
		n := parseHex(fields[1])
		s := d.engines[n].Save()
		return fmt.Sprintf("data %s %s %s %s %s %s %s %s %s %s %s %s",
			hexOf(s.Accum[0]), hexOf(s.Accum[1]),
			hexOf(s.Base[0]), hexOf(s.Base[1]), hexOf(s.Base[2]),
			hexOf(s.Ctrl[0]), hexOf(s.Ctrl[1]),
			hexOf(s.Peek[0]), hexOf(s.Peek[1]), hexOf(s.Peek[2]),
			hexOf(s.PeekRaw[0]), hexOf(s.PeekRaw[1]))

	case "state":
		n := parseHex(fields[1])
		var s interp.State
		s.Accum[0] = parseHex(fields[2])
		s.Accum[1] = parseHex(fields[3])
		s.Base[0] = parseHex(fields[4])
		s.Base[1] = parseHex(fields[5])
		s.Base[2] = parseHex(fields[6])
		s.Ctrl[0] = parseHex(fields[7])
		s.Ctrl[1] = parseHex(fields[8])
		d.engines[n].Restore(s)
		return "ok"

	default:
		return "syntax unknown command"
	}
}

func hexOf(v uint32) string {
	return fmt.Sprintf("%#x", v)
}

func (d *fakeDevice) write(n int, reg string, v uint32) error {
	e := d.engines[n]
	switch {
	case reg == "accum0":
		return e.SetAccum(0, v)
	case reg == "accum1":
		return e.SetAccum(1, v)
	case reg == "base0":
		return e.SetBase(0, v)
	case reg == "base1":
		return e.SetBase(1, v)
	case reg == "base2":
		return e.SetBase(2, v)
	case reg == "base01":
		return e.Base01(v)
	case reg == "ctrl0":
		return e.SetCtrl(0, v)
	case reg == "ctrl1":
		return e.SetCtrl(1, v)
	case reg == "add0":
		return e.Add(0, v)
	case reg == "add1":
		return e.Add(1, v)
	default:
		return fmt.Errorf("unknown register '%s'", reg)
	}
}

func (d *fakeDevice) read(n int, reg string) (uint32, error) {
	e := d.engines[n]
	switch reg {
	case "pop0":
		return e.Pop(0)
	case "pop1":
		return e.Pop(1)
	case "pop2":
		return e.Pop(2)
	case "peek0":
		return e.Peek(0)
	case "peek1":
		return e.Peek(1)
	case "peek2":
		return e.Peek(2)
	case "peekraw0":
		return e.PeekRaw(0)
	case "peekraw1":
		return e.PeekRaw(1)
	default:
		return 0, fmt.Errorf("unknown register '%s'", reg)
	}
}
