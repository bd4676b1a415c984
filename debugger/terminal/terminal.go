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

// Package terminal defines the operations required by the command line
// interface of the debugger. Two implementations are provided: plainterm,
// which works with any input/output stream, and colorterm, which requires a
// posix terminal and offers line editing, history and colourised output.
package terminal

import "github.com/Yaswanth2747/miniGPU/curated"

// sentinel error pattern returned by TermRead() when the user has
// interrupted input (with ctrl-c for example).
const UserInterrupt = "user interrupt"

// UserInterruptError is a convenience for terminal implementations.
func UserInterruptError() error {
	return curated.Errorf(UserInterrupt)
}

// Style is used to hint at how a line of output should be presented.
type Style int

// List of valid Style values.
const (
	// the result of a command
	StyleFeedback Style = iota

	// a disassembled instruction
	StyleInstruction

	// help text
	StyleHelp

	// error messages. a terminal should still display these when silenced
	StyleError
)

// Input defines the operations required for user input.
type Input interface {
	// TermRead reads one line of input, displaying the prompt first unless
	// the terminal is silenced
	TermRead(prompt string) (string, error)

	// IsInteractive is true for implementations that expect a user at a
	// keyboard
	IsInteractive() bool
}

// Output defines the operations required for output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do anything
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible
	CleanUp()

	// Silence all output except error messages
	Silence(silenced bool)
}
