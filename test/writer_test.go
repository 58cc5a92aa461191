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

package test_test

import (
	"testing"

	"github.com/Ferdi265/rp2040-interpolator/test"
)

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(10)
	test.Equate(t, err, nil)

	test.Equate(t, c.String(), "")

	c.Write([]byte("a"))
	test.Equate(t, c.String(), "a")

	c.Write([]byte("bcd"))
	test.Equate(t, c.String(), "abcd")

	c.Write([]byte("efghij"))
	test.Equate(t, c.String(), "abcdefghij")

	// beyond capacity is silently dropped
	c.Write([]byte("klm"))
	test.Equate(t, c.String(), "abcdefghij")

	c.Reset()
	test.Equate(t, c.String(), "")

	c.Write([]byte("abcdefghijklm"))
	test.Equate(t, c.String(), "abcdefghij")
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.Equate(t, err, nil)

	test.Equate(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.Equate(t, r.String(), "abcde")

	r.Write([]byte("fgh"))
	test.Equate(t, r.String(), "abcdefgh")

	r.Write([]byte("ij"))
	test.Equate(t, r.String(), "abcdefghij")

	// writing beyond capacity drops the oldest bytes first
	r.Write([]byte("kl"))
	test.Equate(t, r.String(), "cdefghijkl")

	r.Write([]byte("1234567890"))
	test.Equate(t, r.String(), "1234567890")

	r.Reset()
	r.Write([]byte("1234567890ABC"))
	test.Equate(t, r.String(), "4567890ABC")
}

func TestExpectations(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectSuccess(t, true)
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectApproximate(t, 10, 10.05, 0.1)
}
