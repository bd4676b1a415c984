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

package kernelloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Yaswanth2747/miniGPU/curated"
	"github.com/Yaswanth2747/miniGPU/kernelloader"
	"github.com/Yaswanth2747/miniGPU/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0644))
	return fn
}

func TestBinaryLoad(t *testing.T) {
	fn := writeFile(t, "kernel.bin", []byte{0x91, 0x05, 0xf0, 0x00})

	ld := kernelloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.DemandEquality(t, len(ld.Program), 2)
	test.ExpectEquality(t, ld.Program[0], 0x9105)
	test.ExpectEquality(t, ld.Program[1], 0xf000)
	test.ExpectInequality(t, ld.Hash, "")
}

func TestBinaryOddLength(t *testing.T) {
	fn := writeFile(t, "kernel.bin", []byte{0x91, 0x05, 0xf0})

	ld := kernelloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, kernelloader.LoaderError))
}

func TestHexLoad(t *testing.T) {
	fn := writeFile(t, "kernel.hex", []byte(`
# a tiny kernel
9105      # CONST R1, 5
0x9207
f000      # RET
`))

	ld := kernelloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())
	test.DemandEquality(t, len(ld.Program), 3)
	test.ExpectEquality(t, ld.Program[0], 0x9105)
	test.ExpectEquality(t, ld.Program[1], 0x9207)
	test.ExpectEquality(t, ld.Program[2], 0xf000)
}

func TestHexMalformed(t *testing.T) {
	fn := writeFile(t, "kernel.hex", []byte("9105\nnot a word\n"))

	ld := kernelloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, kernelloader.LoaderError))
}

func TestProgramTooLong(t *testing.T) {
	data := make([]byte, 2*257)
	fn := writeFile(t, "kernel.bin", data)

	ld := kernelloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, kernelloader.LoaderError))
}

func TestMissingFile(t *testing.T) {
	ld := kernelloader.NewLoader(filepath.Join(t.TempDir(), "no such file"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, kernelloader.LoaderError))
}

func TestInMemoryProgram(t *testing.T) {
	ld := kernelloader.NewLoaderFromProgram([]uint16{0xf000})
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Program[0], 0xf000)
}
