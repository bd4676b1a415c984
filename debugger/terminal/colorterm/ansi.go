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

package colorterm

// ANSI pens and erase codes used for styled output.
const (
	penOff    = "\033[0m"
	penBold   = "\033[1m"
	penDim    = "\033[2m"
	penRed    = "\033[31m"
	penYellow = "\033[33m"

	ansiEraseLine = "\033[K"
)

// input bytes with special meaning in raw mode.
const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	backspace = 0x08
	rubout    = 0x7f
	escape    = 0x1b

	cursorUp   = 'A'
	cursorDown = 'B'
)
