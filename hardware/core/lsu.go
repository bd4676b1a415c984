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

package core

import "github.com/Yaswanth2747/miniGPU/hardware/memory"

// LSUState is the state of one load/store unit.
type LSUState uint8

// List of valid LSUState values. The encodings are observable on the LSU
// state bus.
const (
	LSUIdle       LSUState = 0b00
	LSURequesting LSUState = 0b01
	LSUWaiting    LSUState = 0b10
	LSUDone       LSUState = 0b11
)

func (s LSUState) String() string {
	switch s {
	case LSUIdle:
		return "IDLE"
	case LSURequesting:
		return "REQUESTING"
	case LSUWaiting:
		return "WAITING"
	case LSUDone:
		return "DONE"
	}
	return "unknown"
}

// LSU drives one memory transaction per instruction on behalf of a thread.
// An instruction with no memory operation leaves the LSU in the idle state
// throughout, which the scheduler's stall check treats as not blocking.
type LSU struct {
	State LSUState

	// Out is the data returned by the most recent load
	Out uint8

	// Consumer is this LSU's port number on the memory controller
	Consumer int

	port *memory.Port
	read bool
}

// Reset returns the LSU to idle and drops any request in flight.
func (l *LSU) Reset() {
	l.State = LSUIdle
	l.Out = 0
	l.read = false
	l.port.Drop()
}

// Blocking is true while the LSU has a memory transaction in flight, that
// is while it is requesting or waiting. The scheduler must not leave UPDATE
// while any thread's LSU is blocking.
func (l *LSU) Blocking() bool {
	return l.State == LSURequesting || l.State == LSUWaiting
}

// Step advances the FSM by one tick. The coreState and response arguments
// are start-of-tick snapshots; rs and rt are the thread's operand register
// values.
func (l *LSU) Step(coreState CoreState, ctl Control, rs uint8, rt uint8, response memory.Port) {
	switch l.State {
	case LSUIdle:
		if coreState == StateRequest && (ctl.MemRead || ctl.MemWrite) {
			l.read = ctl.MemRead
			l.port.ReadValid = ctl.MemRead
			l.port.WriteValid = ctl.MemWrite
			l.port.Address = rs
			l.port.Data = rt
			l.State = LSURequesting
		}

	case LSURequesting:
		if response.Ready {
			if l.read {
				l.Out = response.ReadData
			}
			l.port.Drop()
			l.State = LSUWaiting
		}

	case LSUWaiting:
		if coreState == StateUpdate {
			l.State = LSUDone
		}

	case LSUDone:
		if coreState != StateUpdate {
			l.State = LSUIdle
		}
	}
}
