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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. The pattern argument serves the same
// purpose as the format argument of fmt.Errorf() but, unlike fmt.Errorf(),
// the pattern is retained and can be tested for with the Is() and Has()
// functions.
func Errorf(pattern string, values ...interface{}) error {
	// formatting of the pattern is deferred until Error() is called. all we
	// do here is store the arguments
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. The returned string is normalised
// such that adjacent duplicate parts of the error chain appear only once.
func (e curated) Error() string {
	s := fmt.Errorf(e.pattern, e.values...).Error()

	// de-duplicate adjacent parts of the error chain
	p := strings.SplitN(s, ": ", -1)
	if len(p) > 1 {
		c := make([]string, 0, len(p))
		c = append(c, p[0])
		for i := 1; i < len(p); i++ {
			if p[i] != p[i-1] {
				c = append(c, p[i])
			}
		}
		s = strings.Join(c, ": ")
	}

	return s
}

// IsAny checks if the error is a curated error, regardless of pattern.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is checks if the error is a curated error with the specified pattern.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	e, ok := err.(curated)
	if !ok {
		return false
	}

	return e.pattern == pattern
}

// Has checks if the specified pattern appears anywhere in the error chain.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	e, ok := err.(curated)
	if !ok {
		return false
	}

	for i := range e.values {
		if v, ok := e.values[i].(curated); ok {
			if Has(v, pattern) {
				return true
			}
		}
	}

	return false
}
