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

package memory

// Port is the bundle of wires between one consumer (a load/store unit) and
// the memory controller. The consumer drives the request side and the
// controller drives the response side. Neither writes the other's fields.
//
// Both sides read their inputs from a snapshot taken at the start of the
// tick, so a value written during a tick is not visible until the next one.
type Port struct {
	// request side
	ReadValid  bool
	WriteValid bool
	Address    uint8
	Data       uint8

	// response side
	Ready    bool
	ReadData uint8
}

// Drop deasserts both valid signals on the request side.
func (p *Port) Drop() {
	p.ReadValid = false
	p.WriteValid = false
}
