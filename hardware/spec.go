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

package hardware

// Spec describes the geometry of the machine. The zero value is not useful;
// start from NewSpec().
type Spec struct {
	// number of cores. each core runs one block at a time
	NumCores int

	// number of hardware threads in each core. also the maximum block size
	ThreadsPerBlock int

	// number of arbitration channels in the memory controller
	MemChannels int
}

// NewSpec returns the default machine geometry.
func NewSpec() Spec {
	return Spec{
		NumCores:        2,
		ThreadsPerBlock: 4,
		MemChannels:     2,
	}
}
