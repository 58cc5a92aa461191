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

package errors

// Errno enumerates the error taxonomy of the engine and the hardware proxy.
type Errno int

// list of error numbers
const (
	// Engine
	InvalidIndex Errno = iota

	// Proxy / transport
	InvalidGeneration
	ProtocolSyntax
	ProtocolShape
	TransportError
)
