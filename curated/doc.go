// This file is part of miniGPU.
//
// miniGPU is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// miniGPU is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with miniGPU.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error. Unlike fmt.Errorf() the pattern is kept
// alongside the values, which allows the question "was this error created
// from that pattern?" to be answered later.
//
// The Is() function answers that question for the outermost error in a
// chain. The Has() function answers it for any error in the chain. Sentinel
// patterns should be stored as const strings, suitably named and commented,
// and shared between the site that creates the error and the site that
// tests for it.
//
// The Error() function implementation normalises the error chain so that
// adjacent duplicate parts are removed. Parts are separated by the
// sub-string ": ", as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan). This alleviates the problem of deciding when and
// where in the call stack an error should be wrapped.
package curated
