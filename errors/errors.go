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

// Package errors implements a small curated-error type, modelled on the
// teacher project's own errors package: every error raised by this module
// carries an Errno so that callers can switch on error category without
// string matching, while still reading as a normal formatted error message.
package errors

import "fmt"

// Values is the type used to specify arguments for a curated error.
type Values []interface{}

// curated is an error associated with a specific Errno, so that callers can
// test the category of an error with Is() without string matching.
type curated struct {
	errno  Errno
	values Values
}

// Errorf creates a new curated error for the given Errno.
func Errorf(errno Errno, values ...interface{}) error {
	return curated{errno: errno, values: values}
}

// Error implements the go language error interface.
func (er curated) Error() string {
	msg, ok := messages[er.errno]
	if !ok {
		msg = "%v"
	}
	return fmt.Sprintf(msg, er.values...)
}

// Is returns true if err is a curated error of the given Errno, and false
// otherwise, including when err was not created by Errorf.
func Is(err error, errno Errno) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	return er.errno == errno
}
