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

// Package test provides small generic assertion helpers shared by the
// module's test suites, so that table-driven tests can read as a sequence of
// expectations rather than a forest of if-t.Fatalf blocks.
package test

import (
	"math"
	"reflect"
	"testing"
)

// Equate fails the test unless got and want are equal, as determined by
// reflect.DeepEqual.
func Equate(t *testing.T, got, want interface{}) {
	t.Helper()
	if !equal(got, want) {
		t.Errorf("unexpected value: got %v, want %v", got, want)
	}
}

// ExpectEquality is an alias of Equate, kept for callers that prefer the more
// explicit name.
func ExpectEquality(t *testing.T, got, want interface{}) {
	t.Helper()
	Equate(t, got, want)
}

// ExpectInequality fails the test if got and want are equal.
func ExpectInequality(t *testing.T, got, want interface{}) {
	t.Helper()
	if equal(got, want) {
		t.Errorf("unexpected equality: %v", got)
	}
}

// ExpectApproximate fails the test unless got and want are within tolerance
// of one another.
func ExpectApproximate(t *testing.T, got, want float64, tolerance float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("value not within tolerance: got %v, want %v (+/- %v)", got, want, tolerance)
	}
}

// ExpectSuccess fails the test if v is a non-nil error, or the boolean false.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if !isOk(v) {
		t.Errorf("expected success, got %v", v)
	}
}

// ExpectFailure fails the test unless v is a non-nil error, or the boolean false.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if isOk(v) {
		t.Errorf("expected failure, got %v", v)
	}
}

func isOk(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return x
	case error:
		return x == nil
	default:
		return true
	}
}

func equal(got, want interface{}) bool {
	return reflect.DeepEqual(got, want)
}
