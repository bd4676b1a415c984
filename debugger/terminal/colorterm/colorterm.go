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

// Package colorterm implements the Terminal interface for the debugger. It
// provides colourised output, a command history and basic line editing. It
// requires a posix terminal.
package colorterm

import (
	"io"
	"os"

	"github.com/Yaswanth2747/miniGPU/debugger/terminal"
	"github.com/Yaswanth2747/miniGPU/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the terminal.Terminal interface.
type ColorTerminal struct {
	easyterm.Terminal

	history  []string
	silenced bool
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.history = make([]string, 0)
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	ct.Terminal.CleanUp()
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(penDim)
	case terminal.StyleInstruction:
		ct.TermPrint(penYellow)
	case terminal.StyleError:
		ct.TermPrint(penRed)
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(penOff)
	ct.TermPrint("\n")
}

// TermRead implements the terminal.Input interface. Input is read in raw
// mode, giving us backspace handling, ctrl-c interruption and a command
// history on the up/down cursor keys.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]byte, 0, 255)
	historyIdx := len(ct.history)

	showInput := func() {
		ct.TermPrint("\r%s%s%s%s", penBold, prompt, penOff, ansiEraseLine)
		ct.TermPrint("%s", string(input))
	}
	showInput()

	for {
		b, err := ct.Read()
		if err != nil {
			return "", err
		}

		switch b {
		case ctrlC:
			ct.TermPrint("\n")
			return "", terminal.UserInterruptError()

		case ctrlD:
			ct.TermPrint("\n")
			return "", io.EOF

		case '\r', '\n':
			ct.TermPrint("\n")
			s := string(input)
			if s != "" {
				ct.history = append(ct.history, s)
			}
			return s, nil

		case backspace, rubout:
			if len(input) > 0 {
				input = input[:len(input)-1]
				showInput()
			}

		case escape:
			// cursor keys arrive as a three byte escape sequence
			b, err = ct.Read()
			if err != nil {
				return "", err
			}
			if b != '[' {
				continue
			}
			b, err = ct.Read()
			if err != nil {
				return "", err
			}

			switch b {
			case cursorUp:
				if historyIdx > 0 {
					historyIdx--
					input = append(input[:0], ct.history[historyIdx]...)
					showInput()
				}
			case cursorDown:
				if historyIdx < len(ct.history)-1 {
					historyIdx++
					input = append(input[:0], ct.history[historyIdx]...)
					showInput()
				} else {
					historyIdx = len(ct.history)
					input = input[:0]
					showInput()
				}
			}

		default:
			if b >= 32 && b < 127 {
				input = append(input, b)
				ct.TermPrint("%c", b)
			}
		}
	}
}
