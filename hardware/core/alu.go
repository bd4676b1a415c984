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

import "github.com/Yaswanth2747/miniGPU/hardware/instructions"

// alu computes the EXECUTE-stage output for one thread. All arithmetic is
// 8-bit unsigned with wraparound. Divide by zero yields zero.
//
// When the control bundle asks for a comparison the output is the NZP flag
// triple packed into the low three bits, with exactly one bit set.
func alu(ctl Control, rs uint8, rt uint8) uint8 {
	if ctl.ALUCompare {
		switch {
		case rs < rt:
			return instructions.FlagN
		case rs == rt:
			return instructions.FlagZ
		}
		return instructions.FlagP
	}

	switch ctl.ALUOp {
	case ALUAdd:
		return rs + rt
	case ALUSub:
		return rs - rt
	case ALUMul:
		return rs * rt
	case ALUDiv:
		if rt == 0 {
			return 0
		}
		return rs / rt
	}

	return 0
}

// nextPC computes the EXECUTE-stage program counter for one thread. A branch
// is taken when any flag named in the mask is set in the thread's current
// flags. The increment wraps at the top of the address space.
func nextPC(ctl Control, pc uint8, nzp uint8) uint8 {
	if ctl.Branch && nzp&ctl.NZPMask != 0 {
		return ctl.Imm
	}
	return pc + 1
}
