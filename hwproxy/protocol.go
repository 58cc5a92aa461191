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
	"fmt"
	"strconv"
	"strings"

	"github.com/Ferdi265/rp2040-interpolator/errors"
)

// response is a parsed reply line: a leading keyword plus whitespace
// separated arguments (spec.md section 6).
type response struct {
	word string
	args []string
}

func parseResponse(line string) (response, error) {
	parts := strings.SplitN(line, " ", 2)
	word := parts[0]
	if word == "syntax" {
		msg := ""
		if len(parts) == 2 {
			msg = parts[1]
		}
		return response{}, errors.Errorf(errors.ProtocolSyntax, msg)
	}
	if len(parts) == 1 {
		return response{word: word}, nil
	}
	return response{word: word, args: strings.Fields(parts[1])}, nil
}

// expectWord checks the response keyword and argument count, matching the
// ProtocolShape error of spec.md section 7.
func (r response) expectWord(word string, nargs int) error {
	if r.word != word || len(r.args) != nargs {
		return errors.Errorf(errors.ProtocolShape, fmt.Sprintf("expected '%s' with %d argument(s), got '%s %s'", word, nargs, r.word, strings.Join(r.args, " ")))
	}
	return nil
}

// parseValues converts the response's arguments to uint32s, accepting any
// of decimal/0x/0b/0o notation (strconv.ParseUint with base 0 autodetects).
func (r response) parseValues() ([]uint32, error) {
	values := make([]uint32, len(r.args))
	for i, a := range r.args {
		v, err := strconv.ParseUint(a, 0, 32)
		if err != nil {
			return nil, errors.Errorf(errors.ProtocolShape, fmt.Sprintf("expected integer, got '%s'", a))
		}
		values[i] = uint32(v)
	}
	return values, nil
}

func hex32(v uint32) string {
	return fmt.Sprintf("%#x", v)
}

func writeCmd(t Transport, cmd string) error {
	_, err := t.Write([]byte(cmd + "\n"))
	if err != nil {
		return errors.Errorf(errors.TransportError, err)
	}
	return nil
}

// registerName returns the wire name of an indexed register, for both
// write and read commands (spec.md section 6's register name table).
func registerName(kind string, i int) string {
	return fmt.Sprintf("%s%d", kind, i)
}
