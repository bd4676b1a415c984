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

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Yaswanth2747/miniGPU/curated"
	"github.com/Yaswanth2747/miniGPU/debugger/terminal"
	"github.com/Yaswanth2747/miniGPU/logger"
)

// the order in which commands appear in the HELP output.
var commandList = []string{
	"HELP", "QUIT", "RESET", "THREADS", "START", "STEP", "RUN",
	"REGS", "MEM", "LIST", "STATE", "LOG", "VIZ",
}

var commandHelp = map[string]string{
	"HELP":    "HELP - this message",
	"QUIT":    "QUIT - end the session",
	"RESET":   "RESET - assert the hardware reset line",
	"THREADS": "THREADS [n] - show or set the device control register",
	"START":   "START - pulse the start signal",
	"STEP":    "STEP [n] - advance the clock by n ticks (default 1)",
	"RUN":     "RUN [cycles] - run until done or the cycle budget expires",
	"REGS":    "REGS [core] - show the register file of every thread",
	"MEM":     "MEM [from [len]] - show the contents of data memory",
	"LIST":    "LIST - show the disassembled kernel",
	"STATE":   "STATE - show every state machine in the pipeline",
	"LOG":     "LOG - show the application log",
	"VIZ":     "VIZ [file] - write the machine graph in dot format",
}

// default cycle budget for the RUN command.
const defaultRunCycles = 100000

func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case "HELP":
		for _, c := range commandList {
			dbg.term.TermPrintLine(terminal.StyleHelp, commandHelp[c])
		}

	case "QUIT":
		dbg.quit = true

	case "RESET":
		dbg.gpu.Reset()
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case "THREADS":
		if len(args) == 0 {
			dbg.term.TermPrintLine(terminal.StyleFeedback,
				fmt.Sprintf("thread count: %d", dbg.gpu.ThreadCount()))
			return nil
		}
		n, err := strconv.ParseUint(args[0], 0, 8)
		if err != nil {
			return curated.Errorf("THREADS: %q is not an 8-bit number", args[0])
		}
		dbg.gpu.SetThreadCount(uint8(n))

	case "START":
		dbg.gpu.Start()
		dbg.term.TermPrintLine(terminal.StyleFeedback, "start pulsed")

	case "STEP":
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return curated.Errorf("STEP: %q is not a positive number", args[0])
			}
		}
		dbg.gpu.Step(n)
		dbg.printPipeline()

	case "RUN":
		budget := uint64(defaultRunCycles)
		if len(args) > 0 {
			var err error
			budget, err = strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return curated.Errorf("RUN: %q is not a number", args[0])
			}
		}
		if err := dbg.gpu.RunUntilDone(budget); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("done after %s", dbg.cyclesString()))

	case "REGS":
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 || n >= len(dbg.gpu.Cores) {
				return curated.Errorf("REGS: no core named %q", args[0])
			}
			dbg.printRegisters(n)
			return nil
		}
		for i := range dbg.gpu.Cores {
			dbg.printRegisters(i)
		}

	case "MEM":
		from, length := 0, 256
		if len(args) > 0 {
			n, err := strconv.ParseUint(args[0], 0, 8)
			if err != nil {
				return curated.Errorf("MEM: %q is not an address", args[0])
			}
			from = int(n)
			length = 16
		}
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return curated.Errorf("MEM: %q is not a length", args[1])
			}
			length = n
		}
		dbg.printMemory(from, length)

	case "LIST":
		if dbg.dsm == nil {
			return curated.Errorf("LIST: no kernel attached")
		}
		for _, e := range dbg.dsm.Entries {
			dbg.term.TermPrintLine(terminal.StyleInstruction, e.String())
		}

	case "STATE":
		dbg.printState()

	case "LOG":
		s := &strings.Builder{}
		if logger.Write(s) {
			for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
				dbg.term.TermPrintLine(terminal.StyleFeedback, l)
			}
		} else {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "log is empty")
		}

	case "VIZ":
		fn := "minigpu.dot"
		if len(args) > 0 {
			fn = args[0]
		}
		if err := dbg.writeViz(fn); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("machine graph written to %s", fn))

	default:
		return curated.Errorf("%s is not a debugger command", command)
	}

	return nil
}

func (dbg *Debugger) cyclesString() string {
	return fmt.Sprintf("%d cycles", dbg.gpu.Cycles())
}

func (dbg *Debugger) printPipeline() {
	for _, c := range dbg.gpu.Cores {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("core %d: %s", c.ID, c.State))
		if c.Done {
			s.WriteString(" (done)")
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
	}
}

func (dbg *Debugger) printRegisters(coreNum int) {
	c := dbg.gpu.Cores[coreNum]
	dbg.term.TermPrintLine(terminal.StyleFeedback,
		fmt.Sprintf("core %d (block %d, %d threads)", c.ID, c.BlockID, c.ThreadCount))

	for j := range c.Threads {
		th := &c.Threads[j]
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("  thread %d: pc=%02x nzp=%03b ", th.ID, th.PC, th.NZP))
		for r := uint8(0); r < 16; r++ {
			s.WriteString(fmt.Sprintf("%02x ", th.Registers.Read(r)))
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
	}
}

func (dbg *Debugger) printMemory(from int, length int) {
	mem := dbg.gpu.DumpMemory()
	for a := from; a < from+length && a < len(mem); a += 16 {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("%02x: ", a))
		for i := a; i < a+16 && i < from+length && i < len(mem); i++ {
			s.WriteString(fmt.Sprintf("%02x ", mem[i]))
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
	}
}

func (dbg *Debugger) printState() {
	d := dbg.gpu.Dispatcher
	dbg.term.TermPrintLine(terminal.StyleFeedback,
		fmt.Sprintf("dispatcher: %s (%d/%d blocks done, %d dispatched)",
			d.State, d.BlocksDone, d.TotalBlocks, d.BlocksDispatched))

	for _, c := range dbg.gpu.Cores {
		dbg.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("core %d: %s", c.ID, c.State))
		for j := range c.Threads {
			th := &c.Threads[j]
			dbg.term.TermPrintLine(terminal.StyleFeedback,
				fmt.Sprintf("  thread %d: lsu %s", th.ID, th.LSU.State))
		}
	}

	mc := dbg.gpu.Controller
	for k := 0; k < mc.NumChannels(); k++ {
		s := strings.Builder{}
		s.WriteString(fmt.Sprintf("channel %d: %s", k, mc.ChannelState(k)))
		if j, ok := mc.ChannelConsumer(k); ok {
			s.WriteString(fmt.Sprintf(" (consumer %d)", j))
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
	}
}
