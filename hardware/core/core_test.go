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

package core_test

import (
	"testing"

	"github.com/Yaswanth2747/miniGPU/hardware/core"
	"github.com/Yaswanth2747/miniGPU/hardware/instructions"
	"github.com/Yaswanth2747/miniGPU/hardware/memory"
	"github.com/Yaswanth2747/miniGPU/test"
)

// rig drives a single core against a real memory controller, using the same
// snapshot ordering as the full machine.
type rig struct {
	ram  *memory.RAM
	rom  *memory.ROM
	mc   *memory.Controller
	core *core.Core
	in   core.Input
}

func newRig(program []uint16) *rig {
	r := &rig{
		ram: memory.NewRAM(),
		rom: memory.NewROM(),
	}
	r.mc = memory.NewController(r.ram, 2)
	r.core = core.NewCore(0, r.rom, r.mc, 4)
	r.rom.Load(program)
	return r
}

func (r *rig) tick() {
	snapshot := r.mc.Snapshot()
	in := r.in
	r.in.Start = false
	r.in.Reset = false
	r.mc.Step(snapshot)
	r.core.Step(in, snapshot)
}

// run the loaded program to completion, checking the lockstep invariant on
// every tick. returns the number of ticks taken.
func (r *rig) run(t *testing.T, maxTicks int) int {
	t.Helper()

	r.in = core.Input{Start: true, BlockID: 0, ThreadCount: 4}

	for i := 0; i < maxTicks; i++ {
		wasUpdate := r.core.State == core.StateUpdate
		r.tick()

		// when the scheduler has left UPDATE for FETCH, no load/store unit
		// can still be in flight
		if wasUpdate && r.core.State == core.StateFetch {
			test.ExpectSuccess(t, r.core.Settled())
		}

		if r.core.Done {
			return i + 1
		}
	}

	t.Fatalf("core not done after %d ticks", maxTicks)
	return maxTicks
}

func TestConstAdd(t *testing.T) {
	r := newRig([]uint16{
		instructions.AsmConst(1, 5),
		instructions.AsmConst(2, 7),
		instructions.AsmAdd(3, 1, 2),
		instructions.AsmRet(),
	})
	r.run(t, 64)

	for j := range r.core.Threads {
		test.ExpectEquality(t, r.core.Threads[j].Registers.Read(3), 12)
	}
}

func TestThreadIdentityRegisters(t *testing.T) {
	r := newRig([]uint16{instructions.AsmRet()})
	r.in = core.Input{Start: true, BlockID: 2, ThreadCount: 3}

	for i := 0; i < 16 && !r.core.Done; i++ {
		r.tick()
	}
	test.DemandEquality(t, r.core.Done, true)

	for j := range r.core.Threads {
		th := &r.core.Threads[j]
		test.ExpectEquality(t, th.Registers.Read(core.RegBlockID), 2)
		test.ExpectEquality(t, th.Registers.Read(core.RegThreadID), uint8(j))
		test.ExpectEquality(t, th.Registers.Read(core.RegThreadsPerBlock), 3)
	}
}

func TestReservedRegisterWritesDropped(t *testing.T) {
	r := newRig([]uint16{
		instructions.AsmConst(13, 0xff),
		instructions.AsmConst(14, 0xff),
		instructions.AsmConst(15, 0xff),
		instructions.AsmRet(),
	})
	r.run(t, 64)

	for j := range r.core.Threads {
		th := &r.core.Threads[j]
		test.ExpectEquality(t, th.Registers.Read(core.RegBlockID), 0)
		test.ExpectEquality(t, th.Registers.Read(core.RegThreadID), uint8(j))
		test.ExpectEquality(t, th.Registers.Read(core.RegThreadsPerBlock), 4)
	}
}

func TestStoreLoadRoundTrip(t *testing.T) {
	// every thread stores a value derived from its thread id and loads it
	// back. R14 is the thread id
	r := newRig([]uint16{
		instructions.AsmConst(1, 42),
		instructions.AsmAdd(1, 1, 14), // R1 = 42 + thread_id
		instructions.AsmConst(2, 10),
		instructions.AsmAdd(2, 2, 14), // R2 = 10 + thread_id
		instructions.AsmStr(2, 1),     // mem[R2] = R1
		instructions.AsmLdr(3, 2),     // R3 = mem[R2]
		instructions.AsmRet(),
	})
	r.run(t, 256)

	for j := range r.core.Threads {
		test.ExpectEquality(t, r.ram.Read(uint8(10+j)), uint8(42+j))
		test.ExpectEquality(t, r.core.Threads[j].Registers.Read(3), uint8(42+j))
	}
}

func TestMemoryStall(t *testing.T) {
	// with four threads loading at once and only two channels, the core
	// must spend several ticks stalled in UPDATE
	r := newRig([]uint16{
		instructions.AsmConst(1, 0),
		instructions.AsmLdr(2, 1),
		instructions.AsmRet(),
	})

	r.in = core.Input{Start: true, BlockID: 0, ThreadCount: 4}

	stalled := 0
	for i := 0; i < 256 && !r.core.Done; i++ {
		before := r.core.State
		r.tick()
		if before == core.StateUpdate && r.core.State == core.StateUpdate {
			stalled++
		}
	}

	test.DemandEquality(t, r.core.Done, true)
	if stalled < 2 {
		t.Errorf("expected the warp to stall in UPDATE under contention (stalled for %d ticks)", stalled)
	}
}

func TestBranchTaken(t *testing.T) {
	// R1 < R2 so CMP sets N and the branch with an N mask is taken,
	// sending control back to address 0. the program never reaches RET
	r := newRig([]uint16{
		instructions.AsmConst(1, 3),
		instructions.AsmConst(2, 5),
		instructions.AsmCmp(1, 2),
		instructions.AsmBr(instructions.FlagN, 0),
		instructions.AsmRet(),
	})

	r.in = core.Input{Start: true, BlockID: 0, ThreadCount: 4}
	for i := 0; i < 256; i++ {
		r.tick()
	}
	test.ExpectEquality(t, r.core.Done, false)
}

func TestBranchNotTaken(t *testing.T) {
	// same program but the mask names P, which CMP did not set: control
	// falls through to RET
	r := newRig([]uint16{
		instructions.AsmConst(1, 3),
		instructions.AsmConst(2, 5),
		instructions.AsmCmp(1, 2),
		instructions.AsmBr(instructions.FlagP, 0),
		instructions.AsmRet(),
	})
	r.run(t, 64)
}

func TestPCWrap(t *testing.T) {
	// branch to the top of the address space. the NOP there increments the
	// PC, which wraps to zero without a fault
	r := newRig([]uint16{
		instructions.AsmConst(1, 3),
		instructions.AsmConst(2, 5),
		instructions.AsmCmp(1, 2),
		instructions.AsmBr(instructions.FlagN, 255),
	})

	r.in = core.Input{Start: true, BlockID: 0, ThreadCount: 4}

	seenTop := false
	seenWrap := false
	for i := 0; i < 512 && !seenWrap; i++ {
		r.tick()
		if r.core.Threads[0].PC == 255 {
			seenTop = true
		}
		if seenTop && r.core.Threads[0].PC == 0 {
			seenWrap = true
		}
	}
	test.ExpectSuccess(t, seenTop)
	test.ExpectSuccess(t, seenWrap)
}

func TestCoreResetInput(t *testing.T) {
	r := newRig([]uint16{instructions.AsmRet()})

	for i := 0; i < 16 && !r.core.Done; i++ {
		if i == 0 {
			r.in = core.Input{Start: true, BlockID: 0, ThreadCount: 4}
		}
		r.tick()
	}
	test.DemandEquality(t, r.core.Done, true)

	// the dispatcher's reset pulse returns the core to idle and clears done
	r.in.Reset = true
	r.tick()
	test.ExpectEquality(t, r.core.Done, false)
	test.ExpectEquality(t, r.core.State, core.StateIdle)
}
