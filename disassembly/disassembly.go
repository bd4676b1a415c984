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

// Package disassembly turns instruction words back into mnemonic text. It
// is used by the DISASM mode of the command line and by the debugger's LIST
// command.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/Yaswanth2747/miniGPU/hardware/instructions"
)

// Entry is one disassembled instruction.
type Entry struct {
	Address  uint8
	Word     uint16
	Mnemonic string
}

func (e Entry) String() string {
	return fmt.Sprintf("0x%02x  %04x  %s", e.Address, e.Word, e.Mnemonic)
}

// Disassembly is the result of disassembling a kernel program.
type Disassembly struct {
	Entries []Entry
}

// FromProgram disassembles an entire program. Trailing NOP words, the
// unprogrammed remainder of a ROM image, are not included.
func FromProgram(program []uint16) *Disassembly {
	end := len(program)
	for end > 0 && program[end-1] == 0 {
		end--
	}

	dsm := &Disassembly{Entries: make([]Entry, 0, end)}
	for a, word := range program[:end] {
		dsm.Entries = append(dsm.Entries, Entry{
			Address:  uint8(a),
			Word:     word,
			Mnemonic: FormatInstruction(instructions.Decode(word)),
		})
	}
	return dsm
}

// Write the disassembly, one entry per line.
func (dsm *Disassembly) Write(output io.Writer) {
	for _, e := range dsm.Entries {
		io.WriteString(output, e.String())
		io.WriteString(output, "\n")
	}
}

// maskString renders an NZP mask as its flag letters.
func maskString(mask uint8) string {
	s := strings.Builder{}
	if mask&instructions.FlagN != 0 {
		s.WriteString("N")
	}
	if mask&instructions.FlagZ != 0 {
		s.WriteString("Z")
	}
	if mask&instructions.FlagP != 0 {
		s.WriteString("P")
	}
	if s.Len() == 0 {
		return "-"
	}
	return s.String()
}

// FormatInstruction returns the mnemonic form of a single instruction.
func FormatInstruction(ins instructions.Instruction) string {
	switch ins.Opcode {
	case instructions.Br:
		return fmt.Sprintf("BR %s, 0x%02x", maskString(ins.NZPMask), ins.Imm)
	case instructions.Cmp:
		return fmt.Sprintf("CMP R%d, R%d", ins.Rs, ins.Rt)
	case instructions.Add, instructions.Sub, instructions.Mul, instructions.Div:
		return fmt.Sprintf("%s R%d, R%d, R%d", ins.Opcode, ins.Rd, ins.Rs, ins.Rt)
	case instructions.Ldr:
		return fmt.Sprintf("LDR R%d, R%d", ins.Rd, ins.Rs)
	case instructions.Str:
		return fmt.Sprintf("STR R%d, R%d", ins.Rs, ins.Rt)
	case instructions.Const:
		return fmt.Sprintf("CONST R%d, %d", ins.Rd, ins.Imm)
	case instructions.Ret:
		return "RET"
	}
	return "NOP"
}
