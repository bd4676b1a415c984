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

// Thread is one lane of the warp. Threads share the fetched instruction and
// the decoded control signals but everything in this struct is private to
// the lane.
type Thread struct {
	ID int

	Registers Registers

	// the three condition flags, packed NZP. all clear after reset; exactly
	// one set after a CMP has retired
	NZP uint8

	// PC is the address of the instruction being executed. nextPC is
	// computed during EXECUTE and latched into PC when the instruction
	// retires
	PC     uint8
	nextPC uint8

	// ALUOut is latched during EXECUTE
	ALUOut uint8

	LSU LSU
}

// reset a thread for a fresh block assignment.
func (th *Thread) reset(blockID uint8, threadsPerBlock uint8) {
	th.Registers.Reset(blockID, uint8(th.ID), threadsPerBlock)
	th.NZP = 0
	th.PC = 0
	th.nextPC = 0
	th.ALUOut = 0
	th.LSU.Reset()
}
