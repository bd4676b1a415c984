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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios calls in functions with friendlier names and keeps a copy of
// the terminal attributes from before the program changed them.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// Initialise the Terminal with the files to be used for input and output.
// The current terminal attributes are saved for CleanUp() to restore.
func (pt *Terminal) Initialise(input, output *os.File) error {
	if input == nil || output == nil {
		return fmt.Errorf("easyterm: terminal requires an input and an output file")
	}
	pt.input = input
	pt.output = output

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %v", err)
	}

	// raw mode with output processing left on so newlines behave
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)
	pt.rawAttr.Oflag = pt.canAttr.Oflag

	return nil
}

// CleanUp restores the terminal attributes saved during Initialise().
func (pt *Terminal) CleanUp() {
	pt.CanonicalMode()
}

// TermPrint writes the formatted string to the output file.
func (pt *Terminal) TermPrint(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
}

// CanonicalMode puts the terminal into normal, everyday cooked mode.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts the terminal into raw mode: input is available byte by byte
// and no special characters are processed.
func (pt *Terminal) RawMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// Read one byte from the input file.
func (pt *Terminal) Read() (byte, error) {
	b := make([]byte, 1)
	n, err := pt.input.Read(b)
	if err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, fmt.Errorf("easyterm: no input")
	}
	return b[0], nil
}
