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

package hwproxy

import (
	"bufio"
	"io"

	"github.com/Ferdi265/rp2040-interpolator/errors"
)

// Transport is the narrow interface the Proxy needs from whatever carries
// the line protocol of spec.md section 6 to a device: write a command line,
// read a response line. Everything else (how the bytes actually get to the
// device) is a collaborator concern, per spec.md section 1.
type Transport interface {
	io.Writer
	ReadLine() (string, error)
}

// LineTransport adapts any io.ReadWriter (a net.Conn, an os.File opened on a
// tty, a test double, ...) to Transport using newline-delimited framing.
type LineTransport struct {
	w io.Writer
	r *bufio.Scanner
}

// NewLineTransport wraps rw for line-oriented reads and writes.
func NewLineTransport(rw io.ReadWriter) *LineTransport {
	return &LineTransport{
		w: rw,
		r: bufio.NewScanner(rw),
	}
}

// Write implements io.Writer.
func (t *LineTransport) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

// ReadLine reads a single newline-terminated response line, with the
// trailing newline stripped.
func (t *LineTransport) ReadLine() (string, error) {
	if !t.r.Scan() {
		if err := t.r.Err(); err != nil {
			return "", errors.Errorf(errors.TransportError, err)
		}
		return "", errors.Errorf(errors.TransportError, io.EOF)
	}
	return t.r.Text(), nil
}
