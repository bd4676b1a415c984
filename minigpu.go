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

package main

import (
	"fmt"
	"os"

	"github.com/Yaswanth2747/miniGPU/curated"
	"github.com/Yaswanth2747/miniGPU/debugger"
	"github.com/Yaswanth2747/miniGPU/debugger/terminal"
	"github.com/Yaswanth2747/miniGPU/debugger/terminal/colorterm"
	"github.com/Yaswanth2747/miniGPU/debugger/terminal/plainterm"
	"github.com/Yaswanth2747/miniGPU/disassembly"
	"github.com/Yaswanth2747/miniGPU/hardware"
	"github.com/Yaswanth2747/miniGPU/kernelloader"
	"github.com/Yaswanth2747/miniGPU/logger"
	"github.com/Yaswanth2747/miniGPU/modalflag"
	"github.com/Yaswanth2747/miniGPU/performance"
)

// exit codes for the RUN mode, as seen by scripts driving the simulator.
const (
	exitDone      = 0
	exitTimeout   = 1
	exitBadKernel = 2
	exitInternal  = 10
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(exitDone)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(exitInternal)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		switch {
		case curated.Is(err, hardware.TimedOut):
			os.Exit(exitTimeout)
		case curated.Has(err, kernelloader.LoaderError):
			os.Exit(exitBadKernel)
		}
		os.Exit(exitInternal)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	threads := md.AddUint("threads", 4, "total number of threads in the kernel invocation")
	cycles := md.AddUint64("cycles", 1000000, "cycle budget before the run is considered hung")
	dump := md.AddBool("dump", false, "print the contents of data memory after completion")
	echoLog := md.AddBool("log", false, "echo the application log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("run mode requires a single kernel file")
	}

	ld := kernelloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel(ld.Program)
	gpu.SetThreadCount(uint8(*threads))
	gpu.Start()

	if err := gpu.RunUntilDone(*cycles); err != nil {
		return err
	}

	fmt.Printf("done after %d cycles\n", gpu.Cycles())

	if *dump {
		mem := gpu.DumpMemory()
		for a := 0; a < len(mem); a += 16 {
			fmt.Printf("%02x: ", a)
			for i := a; i < a+16; i++ {
				fmt.Printf("%02x ", mem[i])
			}
			fmt.Println()
		}
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	threads := md.AddUint("threads", 4, "initial value of the device control register")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal
	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("unknown terminal type %q", *termType)
	}

	dbg := debugger.NewDebugger(hardware.NewSpec(), term)
	dbg.SetThreadCount(uint8(*threads))

	if len(md.RemainingArgs()) > 1 {
		return curated.Errorf("debug mode takes at most one kernel file")
	}
	if len(md.RemainingArgs()) == 1 {
		if err := dbg.AttachKernel(kernelloader.NewLoader(md.GetArg(0))); err != nil {
			return err
		}
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("disasm mode requires a single kernel file")
	}

	ld := kernelloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	disassembly.FromProgram(ld.Program).Write(os.Stdout)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	threads := md.AddUint("threads", 4, "total number of threads in the kernel invocation")
	duration := md.AddString("duration", "5s", "length of the measurement period")
	stats := md.AddBool("statsview", false, "launch the runtime stats server (requires the statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("performance mode requires a single kernel file")
	}

	return performance.Check(os.Stdout, kernelloader.NewLoader(md.GetArg(0)),
		uint8(*threads), *duration, *stats)
}
