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

// Package hardware is the top of the GPU simulation. The GPU type wires the
// dispatcher, the cores and the memory system together and is the only type
// a host application needs to touch.
//
// The simulation is a discrete-time synchronous one. One call to Step() is
// one tick of the global clock. At the start of a tick the machine takes a
// snapshot of every inter-component wire; every component then computes its
// next state from that snapshot. A value written during a tick is therefore
// not visible to any reader until the following tick, which is what makes
// the single-threaded pass equivalent to hardware's everything-updates-on-
// the-clock-edge behaviour.
//
// The host control surface mirrors the pins of the device: Reset(),
// SetThreadCount(), Start(), Done() and Step(). The Run() functions are
// conveniences built on Step().
package hardware
