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

// RAMSize is the number of bytes in data memory. Addresses are 8 bits wide
// so the entire address space is covered; there is no out-of-range access.
const RAMSize = 256

// RAM is the flat byte-addressable data store. Single port, single cycle.
type RAM struct {
	data [RAMSize]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the byte at the specified address.
func (r *RAM) Read(address uint8) uint8 {
	return r.data[address]
}

// Write stores a byte at the specified address.
func (r *RAM) Write(address uint8, data uint8) {
	r.data[address] = data
}

// Load copies data into RAM starting at offset. Addresses wrap modulo the
// address space.
func (r *RAM) Load(offset uint8, data []uint8) {
	a := offset
	for _, d := range data {
		r.data[a] = d
		a++
	}
}

// Dump returns a copy of the entire contents of RAM.
func (r *RAM) Dump() []uint8 {
	d := make([]uint8, RAMSize)
	copy(d, r.data[:])
	return d
}

// Clear zeroes the contents of RAM. Note that a hardware reset does not
// clear RAM; the host decides when memory is scrubbed between kernels.
func (r *RAM) Clear() {
	r.data = [RAMSize]uint8{}
}
