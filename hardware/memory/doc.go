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

// Package memory implements the storage side of the GPU: the flat data RAM,
// the program ROM and the memory controller that arbitrates every thread's
// load/store unit onto the single memory port.
//
// The RAM and ROM are trivial. The controller is not: it owns K channels,
// each an independent state machine, and a served bitmap recording which
// consumers are currently claimed by some channel. The bitmap is the mutual
// exclusion primitive that stops two channels picking up the same consumer.
package memory
