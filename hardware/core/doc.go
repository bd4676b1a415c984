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

// Package core implements one lockstep warp pipeline of the GPU.
//
// A core contains the scheduler state machine, the instruction fetch latch,
// the decoder and a fixed number of hardware threads. The threads share the
// fetched instruction and the decoded control signals but privately own
// their register file, ALU output latch, condition flags, program counter
// and load/store unit.
//
// The scheduler drives every instruction through the stages
// FETCH, DECODE, REQUEST, EXECUTE and UPDATE. The UPDATE stage is also the
// warp's memory barrier: the core will not fetch the next instruction until
// every thread's load/store unit has either finished its transaction or had
// no transaction to make.
package core
