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

// Package hwproxy implements the hardware-proxy collaborator of spec.md
// section 4.3: a façade that mirrors every interp.Engine operation onto a
// physical device over the line protocol of section 6, and a Diff()
// operation comparing simulated and hardware state.
package hwproxy

import (
	"fmt"
	"os"

	"github.com/Ferdi265/rp2040-interpolator/errors"
	"github.com/Ferdi265/rp2040-interpolator/interp"
	"github.com/Ferdi265/rp2040-interpolator/logger"
)

// Proxy implements interp.InterpolatorOps by delegating the simulated half
// to an embedded *interp.Engine and mirroring every mutation onto a remote
// device through a Transport.
type Proxy struct {
	n         int
	sim       *interp.Engine
	transport Transport
	debug     bool
}

var _ interp.InterpolatorOps = (*Proxy)(nil)

// NewProxy creates a proxy for interpolator n of the given generation,
// driving sim as the local simulation and t as the remote transport.
func NewProxy(n int, generation interp.Generation, t Transport) (*Proxy, error) {
	sim, err := interp.NewEngine(n, generation)
	if err != nil {
		return nil, err
	}
	return &Proxy{n: n, sim: sim, transport: t}, nil
}

// SetDebug toggles echoing each "<< cmd" / ">> response" pair to stderr,
// matching spec.md section 6's CLI debug flag.
func (p *Proxy) SetDebug(debug bool) {
	p.debug = debug
}

func (p *Proxy) send(cmd string) (response, error) {
	if p.debug {
		fmt.Fprintf(os.Stderr, "<< %s\n", cmd)
	}
	logger.Log("hwproxy", "<< %s", cmd)

	if err := writeCmd(p.transport, cmd); err != nil {
		return response{}, err
	}

	line, err := p.transport.ReadLine()
	if err != nil {
		return response{}, err
	}

	if p.debug {
		fmt.Fprintf(os.Stderr, ">> %s\n", line)
	}
	logger.Log("hwproxy", ">> %s", line)

	return parseResponse(line)
}

func (p *Proxy) sendOK(cmd string) error {
	r, err := p.send(cmd)
	if err != nil {
		return err
	}
	return r.expectWord("ok", 0)
}

func (p *Proxy) sendData(cmd string, n int) ([]uint32, error) {
	r, err := p.send(cmd)
	if err != nil {
		return nil, err
	}
	if err := r.expectWord("data", n); err != nil {
		return nil, err
	}
	return r.parseValues()
}

// QueryGeneration asks the device for its generation, per spec.md section 6.
func (p *Proxy) QueryGeneration() (interp.Generation, error) {
	r, err := p.send("generation 0")
	if err != nil {
		return 0, err
	}
	if r.word != "generation" || len(r.args) != 1 {
		return 0, errors.Errorf(errors.ProtocolShape, fmt.Sprintf("expected 'generation <name>', got '%s'", r.word))
	}
	return interp.ParseGeneration(r.args[0])
}

// SetAccum implements interp.InterpolatorOps.
func (p *Proxy) SetAccum(i int, v uint32) error {
	if err := p.sim.SetAccum(i, v); err != nil {
		return err
	}
	return p.sendOK(fmt.Sprintf("write %d %s %s", p.n, registerName("accum", i), hex32(v)))
}

// SetBase implements interp.InterpolatorOps.
func (p *Proxy) SetBase(i int, v uint32) error {
	if err := p.sim.SetBase(i, v); err != nil {
		return err
	}
	return p.sendOK(fmt.Sprintf("write %d %s %s", p.n, registerName("base", i), hex32(v)))
}

// SetCtrl implements interp.InterpolatorOps.
func (p *Proxy) SetCtrl(i int, v uint32) error {
	if err := p.sim.SetCtrl(i, v); err != nil {
		return err
	}
	return p.sendOK(fmt.Sprintf("write %d %s %s", p.n, registerName("ctrl", i), hex32(v)))
}

// Add implements interp.InterpolatorOps.
func (p *Proxy) Add(i int, v uint32) error {
	if err := p.sim.Add(i, v); err != nil {
		return err
	}
	return p.sendOK(fmt.Sprintf("write %d %s %s", p.n, registerName("add", i), hex32(v)))
}

// Base01 implements interp.InterpolatorOps.
func (p *Proxy) Base01(v uint32) error {
	if err := p.sim.Base01(v); err != nil {
		return err
	}
	return p.sendOK(fmt.Sprintf("write %d base01 %s", p.n, hex32(v)))
}

// Peek implements interp.InterpolatorOps, returning the remote's value.
func (p *Proxy) Peek(i int) (uint32, error) {
	if _, err := p.sim.Peek(i); err != nil {
		return 0, err
	}
	values, err := p.sendData(fmt.Sprintf("read %d %s", p.n, registerName("peek", i)), 1)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// PeekRaw implements interp.InterpolatorOps, returning the remote's value.
func (p *Proxy) PeekRaw(i int) (uint32, error) {
	if _, err := p.sim.PeekRaw(i); err != nil {
		return 0, err
	}
	values, err := p.sendData(fmt.Sprintf("read %d %s", p.n, registerName("peekraw", i)), 1)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// Pop implements interp.InterpolatorOps, returning the remote's value.
func (p *Proxy) Pop(i int) (uint32, error) {
	if _, err := p.sim.Pop(i); err != nil {
		return 0, err
	}
	values, err := p.sendData(fmt.Sprintf("read %d %s", p.n, registerName("pop", i)), 1)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// Save implements interp.InterpolatorOps, returning the remote's state. Use
// SaveSim for the simulated half only (used by Diff).
func (p *Proxy) Save() interp.State {
	s, err := p.readRemoteState()
	if err != nil {
		// the InterpolatorOps contract has no error return for Save; a
		// transport failure here is reported through the zero State, which
		// Diff will never mistake for agreement unless the simulation is
		// also all-zero.
		logger.Log("hwproxy", "save: %v", err)
		return interp.State{}
	}
	return s
}

// SaveSim returns the simulated (software-only) state, without consulting
// the remote device. This is the "sw=true" branch of the teacher source's
// save(include_derived=true).
func (p *Proxy) SaveSim() interp.State {
	return p.sim.Save()
}

func (p *Proxy) readRemoteState() (interp.State, error) {
	values, err := p.sendData(fmt.Sprintf("dump %d", p.n), 12)
	if err != nil {
		return interp.State{}, err
	}
	var s interp.State
	copy(s.Accum[:], values[0:2])
	copy(s.Base[:], values[2:5])
	copy(s.Ctrl[:], values[5:7])
	copy(s.Peek[:], values[7:10])
	copy(s.PeekRaw[:], values[10:12])
	return s, nil
}

// Restore implements interp.InterpolatorOps.
func (p *Proxy) Restore(s interp.State) error {
	if err := p.sim.Restore(s); err != nil {
		return err
	}
	cmd := fmt.Sprintf("state %d %s %s %s %s %s %s %s", p.n,
		hex32(s.Accum[0]), hex32(s.Accum[1]),
		hex32(s.Base[0]), hex32(s.Base[1]), hex32(s.Base[2]),
		hex32(s.Ctrl[0]), hex32(s.Ctrl[1]))
	return p.sendOK(cmd)
}

// Diff returns the bitwise XOR of the simulated and hardware states; a
// zero-valued State means the two have agreed.
func (p *Proxy) Diff() interp.State {
	sw := p.SaveSim()
	hw := p.Save()
	return sw.XOR(hw)
}
