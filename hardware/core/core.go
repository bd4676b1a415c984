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

package core

import (
	"github.com/Yaswanth2747/miniGPU/hardware/memory"
)

// CoreState is the state of the core's scheduler. The encodings are
// observable on the core state bus and every downstream component keys its
// behaviour off them; note that 0b100 and 0b111 are unused.
type CoreState uint8

// List of valid CoreState values.
const (
	StateIdle    CoreState = 0b000
	StateFetch   CoreState = 0b001
	StateDecode  CoreState = 0b010
	StateRequest CoreState = 0b011
	StateExecute CoreState = 0b101
	StateUpdate  CoreState = 0b110
)

func (s CoreState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateFetch:
		return "FETCH"
	case StateDecode:
		return "DECODE"
	case StateRequest:
		return "REQUEST"
	case StateExecute:
		return "EXECUTE"
	case StateUpdate:
		return "UPDATE"
	}
	return "unknown"
}

// Input is the bundle of wires driven into a core by the dispatcher. The
// dispatcher writes these fields; the core reads them as a start-of-tick
// snapshot.
type Input struct {
	Start       bool
	Reset       bool
	BlockID     uint8
	ThreadCount uint8
}

// Core is one lockstep warp pipeline.
type Core struct {
	ID int

	// In is written by the dispatcher. the core itself only ever reads the
	// snapshot passed to Step()
	In Input

	State CoreState

	// Done is raised when a RET instruction retires and cleared by reset
	Done bool

	// latched from the dispatcher when the block starts
	BlockID     uint8
	ThreadCount uint8

	// the fetch latch. holds its value outside of FETCH
	Instruction uint16

	// decoder outputs, registered during DECODE
	Ctl Control

	Threads []Thread

	rom *memory.ROM
}

// NewCore is the preferred method of initialisation for the Core type. Each
// thread's load/store unit is attached to the memory controller here;
// attachment order fixes the thread's arbitration priority.
func NewCore(id int, rom *memory.ROM, mc *memory.Controller, threadsPerBlock int) *Core {
	c := &Core{
		ID:      id,
		rom:     rom,
		Threads: make([]Thread, threadsPerBlock),
	}

	for j := range c.Threads {
		th := &c.Threads[j]
		th.ID = j
		th.LSU.port = &memory.Port{}
		th.LSU.Consumer = mc.AddPort(th.LSU.port)
	}

	c.Reset()
	return c
}

// Reset the core to its post-hardware-reset state. The register files are
// cleared here with a block ID and thread count of zero; the values for a
// block are loaded when that block is assigned.
func (c *Core) Reset() {
	c.State = StateIdle
	c.Done = false
	c.BlockID = 0
	c.ThreadCount = 0
	c.Instruction = 0
	c.Ctl = Control{}
	for j := range c.Threads {
		c.Threads[j].reset(0, 0)
	}
}

// Step the core by one tick. The in argument is the start-of-tick snapshot
// of the dispatcher wires. The response argument is the start-of-tick
// snapshot of every memory consumer port, in controller consumer order;
// each thread indexes it with its own consumer number.
func (c *Core) Step(in Input, response []memory.Port) {
	if in.Reset {
		c.Reset()
		return
	}

	// the scheduler and the load/store units both key off the state the
	// core was in when the tick began
	prev := c.State

	// the stall check also uses start-of-tick LSU states
	settled := true
	for j := range c.Threads {
		if c.Threads[j].LSU.Blocking() {
			settled = false
			break
		}
	}

	switch prev {
	case StateIdle:
		// Done holds the core out of the pipeline until the dispatcher's
		// reset pulse arrives; without this guard the core would relaunch
		// the completed block in the cycle before the pulse is visible
		if in.Start && !c.Done {
			c.BlockID = in.BlockID
			c.ThreadCount = in.ThreadCount
			for j := range c.Threads {
				c.Threads[j].reset(c.BlockID, c.ThreadCount)
			}
			c.State = StateFetch
		}

	case StateFetch:
		c.Instruction = c.rom.Read(c.Threads[0].PC)
		c.State = StateDecode

	case StateDecode:
		c.Ctl = Decode(c.Instruction)
		c.State = StateRequest

	case StateRequest:
		// the load/store units issue their requests this tick; see below
		c.State = StateExecute

	case StateExecute:
		for j := range c.Threads {
			th := &c.Threads[j]
			rs := th.Registers.Read(c.Ctl.Rs)
			rt := th.Registers.Read(c.Ctl.Rt)
			th.ALUOut = alu(c.Ctl, rs, rt)
			th.nextPC = nextPC(c.Ctl, th.PC, th.NZP)
		}
		c.State = StateUpdate

	case StateUpdate:
		if c.Ctl.Ret {
			c.Done = true
			c.State = StateIdle
		} else if settled {
			// the instruction retires: write back, latch flags, advance
			// the program counters, restart the pipeline
			for j := range c.Threads {
				th := &c.Threads[j]
				if c.Ctl.NZPWrite {
					th.NZP = th.ALUOut & 0b111
				}
				if c.Ctl.RegWrite {
					switch c.Ctl.RegInput {
					case RegInputALU:
						th.Registers.Write(c.Ctl.Rd, th.ALUOut)
					case RegInputLSU:
						th.Registers.Write(c.Ctl.Rd, th.LSU.Out)
					case RegInputImm:
						th.Registers.Write(c.Ctl.Rd, c.Ctl.Imm)
					}
				}
				th.PC = th.nextPC
			}
			c.State = StateFetch
		}
		// otherwise stall in UPDATE until every LSU has settled
	}

	// the load/store units advance on every tick regardless of the
	// scheduler's stage
	for j := range c.Threads {
		th := &c.Threads[j]
		rs := th.Registers.Read(c.Ctl.Rs)
		rt := th.Registers.Read(c.Ctl.Rt)
		th.LSU.Step(prev, c.Ctl, rs, rt, response[th.LSU.Consumer])
	}
}

// Settled is true when no thread's load/store unit is blocking. When the
// scheduler leaves UPDATE every LSU is idle or done.
func (c *Core) Settled() bool {
	for j := range c.Threads {
		if c.Threads[j].LSU.Blocking() {
			return false
		}
	}
	return true
}
