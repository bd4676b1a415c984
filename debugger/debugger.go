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

// Package debugger is the interactive front-end to the simulation. It wires
// a terminal implementation to a GPU instance and steps the machine under
// user control.
package debugger

import (
	"io"
	"strings"

	"github.com/Yaswanth2747/miniGPU/curated"
	"github.com/Yaswanth2747/miniGPU/debugger/terminal"
	"github.com/Yaswanth2747/miniGPU/disassembly"
	"github.com/Yaswanth2747/miniGPU/hardware"
	"github.com/Yaswanth2747/miniGPU/kernelloader"
)

// Debugger is the main container for the interactive simulation session.
type Debugger struct {
	gpu  *hardware.GPU
	term terminal.Terminal
	dsm  *disassembly.Disassembly

	// set by the QUIT command
	quit bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(spec hardware.Spec, term terminal.Terminal) *Debugger {
	return &Debugger{
		gpu:  hardware.NewGPU(spec),
		term: term,
	}
}

// AttachKernel loads a kernel into the machine's ROM and prepares its
// disassembly.
func (dbg *Debugger) AttachKernel(loader kernelloader.Loader) error {
	if err := loader.Load(); err != nil {
		return err
	}
	dbg.gpu.LoadKernel(loader.Program)
	dbg.dsm = disassembly.FromProgram(loader.Program)
	return nil
}

// SetThreadCount writes the machine's device control register.
func (dbg *Debugger) SetThreadCount(n uint8) {
	dbg.gpu.SetThreadCount(n)
}

// Start the input loop. The function returns when the user quits the
// session or input is exhausted.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.TermPrintLine(terminal.StyleHelp, "miniGPU debugger. type HELP for commands")

	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

func (dbg *Debugger) prompt() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	if dbg.gpu.Done() {
		s.WriteString("done ")
	}
	s.WriteString(strings.TrimSpace(dbg.cyclesString()))
	s.WriteString(" ] ")
	return s.String()
}
