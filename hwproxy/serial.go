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

//go:build linux

package hwproxy

import (
	"bufio"
	"os"

	"golang.org/x/sys/unix"

	"github.com/Ferdi265/rp2040-interpolator/errors"
)

// SerialTransport opens a real device path (default "/dev/ttyACM0" per
// spec.md section 6) and configures it for raw 115200-8N1 operation via
// termios ioctls, then frames reads/writes as newline-terminated lines.
type SerialTransport struct {
	f *os.File
	r *bufio.Scanner
}

// OpenSerial opens path and puts it into raw mode at 115200 baud.
func OpenSerial(path string) (*SerialTransport, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_NOCTTY, 0)
	if err != nil {
		return nil, errors.Errorf(errors.TransportError, err)
	}

	if err := configureRaw115200(int(f.Fd())); err != nil {
		f.Close()
		return nil, errors.Errorf(errors.TransportError, err)
	}

	return &SerialTransport{f: f, r: bufio.NewScanner(f)}, nil
}

// configureRaw115200 puts fd into raw, non-canonical mode at 115200 baud,
// 8 data bits, no parity, one stop bit (8N1) -- the wire format spec.md
// section 6 specifies for the line protocol.
func configureRaw115200(fd int) error {
	t, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return err
	}

	// cfmakeraw equivalent
	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB | unix.CSTOPB | unix.CBAUD
	t.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL | unix.B115200

	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0

	t.Ispeed = unix.B115200
	t.Ospeed = unix.B115200

	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}

// Write implements io.Writer.
func (s *SerialTransport) Write(p []byte) (int, error) {
	n, err := s.f.Write(p)
	if err != nil {
		return n, errors.Errorf(errors.TransportError, err)
	}
	return n, nil
}

// ReadLine implements Transport.
func (s *SerialTransport) ReadLine() (string, error) {
	if !s.r.Scan() {
		if err := s.r.Err(); err != nil {
			return "", errors.Errorf(errors.TransportError, err)
		}
		return "", errors.Errorf(errors.TransportError, "device closed the line")
	}
	return s.r.Text(), nil
}

// Close releases the underlying file descriptor.
func (s *SerialTransport) Close() error {
	return s.f.Close()
}
