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

package logger_test

import (
	"strings"
	"testing"

	"github.com/Yaswanth2747/miniGPU/logger"
	"github.com/Yaswanth2747/miniGPU/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	test.ExpectFailure(t, logger.Write(s))
	test.ExpectEquality(t, s.String(), "")

	logger.Log("test", "this is a test")
	test.ExpectSuccess(t, logger.Write(s))
	test.ExpectEquality(t, s.String(), "test: this is a test\n")
}

func TestLoggerRepeats(t *testing.T) {
	logger.Clear()

	// identical entries are folded into a repeat count rather than appended
	logger.Log("test", "this is a test")
	logger.Log("test", "this is a test")

	s := &strings.Builder{}
	test.ExpectSuccess(t, logger.Write(s))
	test.ExpectEquality(t, s.String(), "test: this is a test (repeat x2)\n")

	logger.Log("test", "something different")

	s.Reset()
	test.ExpectSuccess(t, logger.Write(s))
	test.ExpectEquality(t, s.String(), "test: this is a test (repeat x2)\ntest: something different\n")
}
