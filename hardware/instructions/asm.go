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

package instructions

// Convenience constructors for assembling kernels word by word. Useful for
// tests and for embedding small programs without an external assembler.

// AsmNop assembles a NOP instruction.
func AsmNop() uint16 {
	return Instruction{Opcode: Nop}.Encode()
}

// AsmBr assembles a BR instruction. The branch is taken if any flag named in
// the mask is set.
func AsmBr(nzpMask uint8, imm uint8) uint16 {
	return Instruction{Opcode: Br, NZPMask: nzpMask, Imm: imm}.Encode()
}

// AsmCmp assembles a CMP instruction, setting the NZP flags from the
// comparison of rs and rt.
func AsmCmp(rs, rt uint8) uint16 {
	return Instruction{Opcode: Cmp, Rs: rs, Rt: rt}.Encode()
}

// AsmAdd assembles rd <- rs + rt.
func AsmAdd(rd, rs, rt uint8) uint16 {
	return Instruction{Opcode: Add, Rd: rd, Rs: rs, Rt: rt}.Encode()
}

// AsmSub assembles rd <- rs - rt.
func AsmSub(rd, rs, rt uint8) uint16 {
	return Instruction{Opcode: Sub, Rd: rd, Rs: rs, Rt: rt}.Encode()
}

// AsmMul assembles rd <- rs * rt.
func AsmMul(rd, rs, rt uint8) uint16 {
	return Instruction{Opcode: Mul, Rd: rd, Rs: rs, Rt: rt}.Encode()
}

// AsmDiv assembles rd <- rs / rt.
func AsmDiv(rd, rs, rt uint8) uint16 {
	return Instruction{Opcode: Div, Rd: rd, Rs: rs, Rt: rt}.Encode()
}

// AsmLdr assembles rd <- memory[rs].
func AsmLdr(rd, rs uint8) uint16 {
	return Instruction{Opcode: Ldr, Rd: rd, Rs: rs}.Encode()
}

// AsmStr assembles memory[rs] <- rt.
func AsmStr(rs, rt uint8) uint16 {
	return Instruction{Opcode: Str, Rs: rs, Rt: rt}.Encode()
}

// AsmConst assembles rd <- imm.
func AsmConst(rd uint8, imm uint8) uint16 {
	return Instruction{Opcode: Const, Rd: rd, Imm: imm}.Encode()
}

// AsmRet assembles a RET instruction, ending the block.
func AsmRet() uint16 {
	return Instruction{Opcode: Ret}.Encode()
}
