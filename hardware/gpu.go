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

package hardware

import (
	"github.com/Yaswanth2747/miniGPU/hardware/core"
	"github.com/Yaswanth2747/miniGPU/hardware/memory"
)

// GPU is the main container for the simulated components of the machine.
type GPU struct {
	Spec Spec

	ROM        *memory.ROM
	RAM        *memory.RAM
	Controller *memory.Controller
	Cores      []*core.Core
	Dispatcher *Dispatcher

	// the device control register. holds the kernel's total thread count
	threadCount uint8

	// true between a call to Start() and the tick that consumes it
	startPulse bool

	// ticks since the last reset
	cycles uint64
}

// NewGPU creates a new GPU and everything associated with the hardware.
func NewGPU(spec Spec) *GPU {
	gpu := &GPU{Spec: spec}

	gpu.RAM = memory.NewRAM()
	gpu.ROM = memory.NewROM()
	gpu.Controller = memory.NewController(gpu.RAM, spec.MemChannels)

	gpu.Cores = make([]*core.Core, spec.NumCores)
	for i := range gpu.Cores {
		gpu.Cores[i] = core.NewCore(i, gpu.ROM, gpu.Controller, spec.ThreadsPerBlock)
	}

	gpu.Dispatcher = NewDispatcher(gpu.Cores, spec.ThreadsPerBlock)

	gpu.Reset()
	return gpu
}

// Reset emulates the hardware reset line: every state machine returns to its
// initial state and any in-flight memory request is dropped. The contents of
// RAM, ROM and the device control register are not touched.
func (gpu *GPU) Reset() {
	gpu.Dispatcher.Reset()
	for _, c := range gpu.Cores {
		c.Reset()
	}
	gpu.Controller.Reset()
	gpu.startPulse = false
	gpu.cycles = 0
}

// LoadKernel copies a program into the ROM. The remainder of the ROM is
// zeroed, which decodes as NOP.
func (gpu *GPU) LoadKernel(program []uint16) {
	gpu.ROM.Load(program)
}

// LoadMemory copies data into RAM starting at offset. Intended to be used
// before a kernel is started.
func (gpu *GPU) LoadMemory(offset uint8, data []uint8) {
	gpu.RAM.Load(offset, data)
}

// DumpMemory returns a copy of the contents of RAM. Intended to be used
// after the kernel has completed.
func (gpu *GPU) DumpMemory() []uint8 {
	return gpu.RAM.Dump()
}

// SetThreadCount writes the device control register with the kernel's total
// thread count.
func (gpu *GPU) SetThreadCount(n uint8) {
	gpu.threadCount = n
}

// ThreadCount returns the value of the device control register.
func (gpu *GPU) ThreadCount() uint8 {
	return gpu.threadCount
}

// Start pulses the start signal. The dispatcher sees the pulse on the next
// tick.
func (gpu *GPU) Start() {
	gpu.startPulse = true
}

// Done is the kernel-completion output.
func (gpu *GPU) Done() bool {
	return gpu.Dispatcher.Done()
}

// Cycles returns the number of ticks since the last reset.
func (gpu *GPU) Cycles() uint64 {
	return gpu.cycles
}

// Step advances the clock by n ticks.
func (gpu *GPU) Step(n int) {
	for i := 0; i < n; i++ {
		gpu.step()
	}
}

// step is one tick of the global clock.
//
// The snapshots taken at the top of the function are what make the
// sequential evaluation below equivalent to a synchronous update: the
// dispatcher writes core inputs that the cores will not see until the next
// tick, and the two sides of every memory port each read the other side's
// start-of-tick value.
func (gpu *GPU) step() {
	ports := gpu.Controller.Snapshot()

	inputs := make([]core.Input, len(gpu.Cores))
	for i, c := range gpu.Cores {
		inputs[i] = c.In
	}

	gpu.Dispatcher.Step(gpu.startPulse, gpu.threadCount)
	gpu.startPulse = false

	gpu.Controller.Step(ports)

	for i, c := range gpu.Cores {
		c.Step(inputs[i], ports)
	}

	gpu.cycles++
}
