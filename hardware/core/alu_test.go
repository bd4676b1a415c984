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
	"testing"

	"github.com/Yaswanth2747/miniGPU/hardware/instructions"
	"github.com/Yaswanth2747/miniGPU/test"
)

func TestALUArithmetic(t *testing.T) {
	test.ExpectEquality(t, alu(Control{ALUOp: ALUAdd}, 5, 7), 12)
	test.ExpectEquality(t, alu(Control{ALUOp: ALUSub}, 7, 5), 2)
	test.ExpectEquality(t, alu(Control{ALUOp: ALUMul}, 6, 7), 42)
	test.ExpectEquality(t, alu(Control{ALUOp: ALUDiv}, 42, 6), 7)

	// unsigned wraparound, no overflow reporting
	test.ExpectEquality(t, alu(Control{ALUOp: ALUAdd}, 250, 10), 4)
	test.ExpectEquality(t, alu(Control{ALUOp: ALUSub}, 0, 1), 255)
	test.ExpectEquality(t, alu(Control{ALUOp: ALUMul}, 16, 16), 0)

	// divide by zero silently yields zero
	test.ExpectEquality(t, alu(Control{ALUOp: ALUDiv}, 42, 0), 0)
}

func TestALUCompare(t *testing.T) {
	cmp := Control{ALUOp: ALUSub, ALUCompare: true}

	// exactly one flag is set; the comparison is total
	test.ExpectEquality(t, alu(cmp, 3, 5), uint8(instructions.FlagN))
	test.ExpectEquality(t, alu(cmp, 5, 5), uint8(instructions.FlagZ))
	test.ExpectEquality(t, alu(cmp, 7, 5), uint8(instructions.FlagP))
}

func TestNextPC(t *testing.T) {
	// anything other than a branch increments
	test.ExpectEquality(t, nextPC(Control{}, 10, 0), 11)

	// increment wraps at the top of the address space
	test.ExpectEquality(t, nextPC(Control{}, 255, 0), 0)

	br := Control{Branch: true, NZPMask: instructions.FlagN, Imm: 0x40}

	// taken when any masked flag is set in the current flags
	test.ExpectEquality(t, nextPC(br, 10, instructions.FlagN), 0x40)

	// fallthrough otherwise
	test.ExpectEquality(t, nextPC(br, 10, instructions.FlagP), 11)
	test.ExpectEquality(t, nextPC(br, 10, 0), 11)

	// a mask naming several flags takes the branch if at least one matches
	br.NZPMask = instructions.FlagN | instructions.FlagZ
	test.ExpectEquality(t, nextPC(br, 10, instructions.FlagZ), 0x40)
}
