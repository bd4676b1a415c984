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
	"github.com/Yaswanth2747/miniGPU/hardware/instructions"
)

// ALUOp selects the arithmetic operation performed during EXECUTE.
type ALUOp int

// List of valid ALUOp values.
const (
	ALUAdd ALUOp = iota
	ALUSub
	ALUMul
	ALUDiv
)

// RegInput selects what is written to the destination register during
// write-back.
type RegInput int

// List of valid RegInput values.
const (
	RegInputALU RegInput = iota
	RegInputLSU
	RegInputImm
)

// Control is the decoded control-signal bundle for one instruction. It is
// registered by the core during DECODE and broadcast, read-only, to every
// thread for the remainder of the instruction.
type Control struct {
	RegWrite bool
	RegInput RegInput

	ALUOp ALUOp

	// ALUCompare routes the NZP comparison result to the ALU output instead
	// of the arithmetic result
	ALUCompare bool

	// Branch selects the immediate as the next PC when the branch condition
	// passes
	Branch bool

	NZPWrite bool

	MemRead  bool
	MemWrite bool

	Ret bool

	Rd      uint8
	Rs      uint8
	Rt      uint8
	NZPMask uint8
	Imm     uint8
}

// Decode one instruction word into its control-signal bundle. Signals
// default to inactive; only the signals the opcode requires are asserted.
// Undefined opcodes decode as NOP.
func Decode(word uint16) Control {
	ins := instructions.Decode(word)

	ctl := Control{
		Rd:      ins.Rd,
		Rs:      ins.Rs,
		Rt:      ins.Rt,
		NZPMask: ins.NZPMask,
		Imm:     ins.Imm,
	}

	switch ins.Opcode {
	case instructions.Br:
		ctl.Branch = true
	case instructions.Cmp:
		ctl.ALUOp = ALUSub
		ctl.ALUCompare = true
		ctl.NZPWrite = true
	case instructions.Add:
		ctl.ALUOp = ALUAdd
		ctl.RegWrite = true
		ctl.RegInput = RegInputALU
	case instructions.Sub:
		ctl.ALUOp = ALUSub
		ctl.RegWrite = true
		ctl.RegInput = RegInputALU
	case instructions.Mul:
		ctl.ALUOp = ALUMul
		ctl.RegWrite = true
		ctl.RegInput = RegInputALU
	case instructions.Div:
		ctl.ALUOp = ALUDiv
		ctl.RegWrite = true
		ctl.RegInput = RegInputALU
	case instructions.Ldr:
		ctl.MemRead = true
		ctl.RegWrite = true
		ctl.RegInput = RegInputLSU
	case instructions.Str:
		ctl.MemWrite = true
	case instructions.Const:
		ctl.RegWrite = true
		ctl.RegInput = RegInputImm
	case instructions.Ret:
		ctl.Ret = true
	}

	return ctl
}
