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

package memory_test

import (
	"testing"

	"github.com/Yaswanth2747/miniGPU/hardware/memory"
	"github.com/Yaswanth2747/miniGPU/test"
)

func TestRAM(t *testing.T) {
	ram := memory.NewRAM()
	test.ExpectEquality(t, ram.Read(0), 0)

	ram.Write(0xff, 99)
	test.ExpectEquality(t, ram.Read(0xff), 99)

	// loading past the top of the address space wraps to the bottom
	ram.Load(0xfe, []uint8{1, 2, 3})
	test.ExpectEquality(t, ram.Read(0xfe), 1)
	test.ExpectEquality(t, ram.Read(0xff), 2)
	test.ExpectEquality(t, ram.Read(0x00), 3)

	d := ram.Dump()
	test.DemandEquality(t, len(d), memory.RAMSize)
	test.ExpectEquality(t, d[0xfe], 1)

	ram.Clear()
	test.ExpectEquality(t, ram.Read(0xfe), 0)
}

func TestROM(t *testing.T) {
	rom := memory.NewROM()
	rom.Load([]uint16{0x1234, 0x5678})
	test.ExpectEquality(t, rom.Read(0), 0x1234)
	test.ExpectEquality(t, rom.Read(1), 0x5678)

	// unprogrammed words are NOP
	test.ExpectEquality(t, rom.Read(2), 0)

	// a second load clears the previous program entirely
	rom.Load([]uint16{0x9abc})
	test.ExpectEquality(t, rom.Read(0), 0x9abc)
	test.ExpectEquality(t, rom.Read(1), 0)
}
