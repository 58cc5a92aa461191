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

//go:build !linux

package hwproxy

import (
	"github.com/Ferdi265/rp2040-interpolator/errors"
)

// SerialTransport is unavailable outside Linux: the raw-mode termios ioctls
// configureRaw115200 relies on (TCGETS/TCSETS) are Linux-specific.
type SerialTransport struct{}

// OpenSerial always fails on non-Linux platforms.
func OpenSerial(path string) (*SerialTransport, error) {
	return nil, errors.Errorf(errors.TransportError, "serial transport is only supported on linux")
}

func (s *SerialTransport) Write(p []byte) (int, error) {
	return 0, errors.Errorf(errors.TransportError, "serial transport is only supported on linux")
}

func (s *SerialTransport) ReadLine() (string, error) {
	return "", errors.Errorf(errors.TransportError, "serial transport is only supported on linux")
}

func (s *SerialTransport) Close() error {
	return nil
}
