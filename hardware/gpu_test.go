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

package hardware_test

import (
	"testing"

	"github.com/Yaswanth2747/miniGPU/curated"
	"github.com/Yaswanth2747/miniGPU/hardware"
	"github.com/Yaswanth2747/miniGPU/hardware/instructions"
	"github.com/Yaswanth2747/miniGPU/test"
)

func TestKernelConstAdd(t *testing.T) {
	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel([]uint16{
		instructions.AsmConst(1, 5),
		instructions.AsmConst(2, 7),
		instructions.AsmAdd(3, 1, 2),
		instructions.AsmStr(14, 3), // mem[thread_id] = R3
		instructions.AsmRet(),
	})
	runKernel(t, gpu, 4, 10000)

	// every thread computed and stored twelve
	mem := gpu.DumpMemory()
	for j := 0; j < 4; j++ {
		test.ExpectEquality(t, mem[j], 12)
	}
}

func TestKernelStoreLoadRoundTrip(t *testing.T) {
	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel([]uint16{
		instructions.AsmConst(1, 42),
		instructions.AsmConst(2, 10),
		instructions.AsmStr(2, 1), // mem[10] = 42
		instructions.AsmLdr(3, 2), // R3 = mem[10]
		instructions.AsmStr(14, 3), // mem[thread_id] = R3
		instructions.AsmRet(),
	})
	runKernel(t, gpu, 4, 10000)

	mem := gpu.DumpMemory()
	test.ExpectEquality(t, mem[10], 42)
	for j := 0; j < 4; j++ {
		test.ExpectEquality(t, mem[j], 42)
	}
}

func TestKernelBranchTakenTimesOut(t *testing.T) {
	// R1 < R2 sets N, and the branch mask names N, so the kernel loops
	// back to address zero forever. the host detects this with its cycle
	// budget
	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel([]uint16{
		instructions.AsmConst(1, 3),
		instructions.AsmConst(2, 5),
		instructions.AsmCmp(1, 2),
		instructions.AsmBr(instructions.FlagN, 0),
		instructions.AsmRet(),
	})
	gpu.SetThreadCount(4)
	gpu.Start()

	err := gpu.RunUntilDone(5000)
	test.ExpectSuccess(t, curated.Is(err, hardware.TimedOut))
}

func TestKernelBranchNotTaken(t *testing.T) {
	// as above but the mask names P, which is clear: fallthrough to RET
	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel([]uint16{
		instructions.AsmConst(1, 3),
		instructions.AsmConst(2, 5),
		instructions.AsmCmp(1, 2),
		instructions.AsmBr(instructions.FlagP, 0),
		instructions.AsmRet(),
	})
	runKernel(t, gpu, 4, 10000)
}

// the canonical data-parallel kernel: every thread computes its global index
// and stores a value derived from it.
func globalIndexKernel() []uint16 {
	return []uint16{
		instructions.AsmConst(4, 4),    // R4 = threads per block
		instructions.AsmMul(5, 13, 4),  // R5 = block_id * 4
		instructions.AsmAdd(5, 5, 14),  // R5 = global thread index
		instructions.AsmConst(1, 100),  //
		instructions.AsmAdd(1, 1, 5),   // R1 = 100 + index
		instructions.AsmStr(5, 1),      // mem[index] = R1
		instructions.AsmRet(),
	}
}

func TestKernelTwoBlocks(t *testing.T) {
	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel(globalIndexKernel())
	runKernel(t, gpu, 5, 10000)

	// all hardware threads execute, including the inactive lanes of the
	// second block, so all eight slots are written
	mem := gpu.DumpMemory()
	for j := 0; j < 8; j++ {
		test.ExpectEquality(t, mem[j], uint8(100+j))
	}
}

func TestKernelMemoryContention(t *testing.T) {
	// both cores run a block at the same time so all eight load/store
	// units contend for the two controller channels. the served bitmap
	// invariant is checked on every tick
	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel([]uint16{
		instructions.AsmConst(4, 4),   //
		instructions.AsmMul(5, 13, 4), //
		instructions.AsmAdd(5, 5, 14), // R5 = global thread index
		instructions.AsmLdr(6, 5),     // R6 = mem[index]
		instructions.AsmConst(7, 64),  //
		instructions.AsmAdd(7, 7, 5),  //
		instructions.AsmStr(7, 6),     // mem[64+index] = R6
		instructions.AsmRet(),
	})

	seed := make([]uint8, 8)
	for j := range seed {
		seed[j] = uint8(7 * (j + 1))
	}
	gpu.LoadMemory(0, seed)

	gpu.SetThreadCount(8)
	gpu.Start()

	err := gpu.Run(func() (bool, error) {
		checkServedBitmap(t, gpu)
		return !gpu.Done() && gpu.Cycles() < 50000, nil
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, gpu.Done(), true)

	mem := gpu.DumpMemory()
	for j := 0; j < 8; j++ {
		test.ExpectEquality(t, mem[64+j], seed[j])
	}
}

// checkServedBitmap tests the controller invariant from the outside: a
// consumer is marked served exactly when one channel holds a claim on it.
func checkServedBitmap(t *testing.T, gpu *hardware.GPU) {
	t.Helper()

	mc := gpu.Controller
	claims := make(map[int]int)
	for k := 0; k < mc.NumChannels(); k++ {
		if j, ok := mc.ChannelConsumer(k); ok {
			claims[j]++
		}
	}
	for j, served := range mc.ServedBitmap() {
		test.ExpectEquality(t, served, claims[j] > 0)
		if claims[j] > 1 {
			t.Errorf("consumer %d claimed by %d channels", j, claims[j])
		}
	}
}

func TestLoadMemoryBeforeStart(t *testing.T) {
	// a kernel that doubles every value in the first four bytes of memory
	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel([]uint16{
		instructions.AsmLdr(1, 14),    // R1 = mem[thread_id]
		instructions.AsmAdd(1, 1, 1),  // R1 *= 2
		instructions.AsmStr(14, 1),    // mem[thread_id] = R1
		instructions.AsmRet(),
	})

	gpu.LoadMemory(0, []uint8{10, 20, 30, 40})
	runKernel(t, gpu, 4, 10000)

	mem := gpu.DumpMemory()
	test.ExpectEquality(t, mem[0], 20)
	test.ExpectEquality(t, mem[1], 40)
	test.ExpectEquality(t, mem[2], 60)
	test.ExpectEquality(t, mem[3], 80)
}
