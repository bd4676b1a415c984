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

// Package kernelloader is used to specify and load the kernel program that
// will be written into the GPU's instruction ROM.
//
// Two file formats are understood. A file with a ".hex" extension is plain
// text: one 16-bit word per line, written in hexadecimal with an optional
// "0x" prefix; blank lines and lines beginning with "#" are ignored, as is
// anything following a "#" on a word line. Any other extension is treated
// as raw binary, two bytes per instruction, big-endian.
package kernelloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Yaswanth2747/miniGPU/curated"
	"github.com/Yaswanth2747/miniGPU/hardware/memory"
)

// sentinel error pattern for all loading errors. a host can use this to
// distinguish a malformed kernel from other failures.
const LoaderError = "kernel loader: %v"

// Loader is used to specify the kernel program to load into the GPU.
type Loader struct {
	// filename of the kernel to load
	Filename string

	// the loaded program. populated by Load(), or directly by the host if
	// the program is already in memory
	Program []uint16

	// SHA1 hash of the file the program was loaded from. empty until a
	// successful call to Load()
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type
// when the kernel is in a file.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// NewLoaderFromProgram is the preferred method of initialisation for the
// Loader type when the kernel is already assembled in memory.
func NewLoaderFromProgram(program []uint16) Loader {
	return Loader{Program: program}
}

// Load reads the kernel file, decoding it according to the filename
// extension. It is not required if the Loader was created from an in-memory
// program.
func (ld *Loader) Load() error {
	if ld.Filename == "" {
		if ld.Program == nil {
			return curated.Errorf(LoaderError, "no filename and no program")
		}
		return nil
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	switch strings.ToLower(filepath.Ext(ld.Filename)) {
	case ".hex":
		ld.Program, err = parseHex(data)
	default:
		ld.Program, err = parseBinary(data)
	}
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	if len(ld.Program) > memory.ROMSize {
		return curated.Errorf(LoaderError,
			fmt.Errorf("program of %d words does not fit in a %d word ROM", len(ld.Program), memory.ROMSize))
	}

	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	return nil
}

func parseBinary(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("odd number of bytes in a 16-bit word stream")
	}

	program := make([]uint16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		program = append(program, uint16(data[i])<<8|uint16(data[i+1]))
	}
	return program, nil
}

func parseHex(data []byte) ([]uint16, error) {
	program := make([]uint16, 0)

	for i, line := range strings.Split(string(data), "\n") {
		// strip comments and surrounding space
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = strings.TrimPrefix(strings.ToLower(line), "0x")
		word, err := strconv.ParseUint(line, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a 16-bit word", i+1, line)
		}
		program = append(program, uint16(word))
	}

	return program, nil
}
