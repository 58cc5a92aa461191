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

package main

import (
	"github.com/Ferdi265/rp2040-interpolator/hwproxy"
	"github.com/Ferdi265/rp2040-interpolator/interp"
)

// dialProxy opens a raw-mode serial connection to port and wraps it in a
// hwproxy.Proxy for lane, expecting the given generation.
func dialProxy(port string, lane int, generation interp.Generation, debug bool) (*hwproxy.Proxy, error) {
	serial, err := hwproxy.OpenSerial(port)
	if err != nil {
		return nil, err
	}

	proxy, err := hwproxy.NewProxy(lane, generation, serial)
	if err != nil {
		return nil, err
	}
	proxy.SetDebug(debug)

	return proxy, nil
}
