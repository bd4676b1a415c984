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

import (
	"github.com/Yaswanth2747/miniGPU/hardware/core"
	"github.com/Yaswanth2747/miniGPU/logger"
)

// DispatcherState is the state of the block dispatcher.
type DispatcherState int

// List of valid DispatcherState values.
const (
	DispatcherIdle DispatcherState = iota
	DispatcherDispatching
)

func (s DispatcherState) String() string {
	switch s {
	case DispatcherIdle:
		return "IDLE"
	case DispatcherDispatching:
		return "DISPATCHING"
	}
	return "unknown"
}

// Dispatcher assigns blocks of the kernel to cores and aggregates their
// completion signals into the device's done output.
type Dispatcher struct {
	State DispatcherState

	BlocksDispatched uint8
	BlocksDone       uint8
	TotalBlocks      uint8

	done bool

	cores           []*core.Core
	threadsPerBlock uint8
}

// NewDispatcher is the preferred method of initialisation for the
// Dispatcher type.
func NewDispatcher(cores []*core.Core, threadsPerBlock int) *Dispatcher {
	d := &Dispatcher{
		cores:           cores,
		threadsPerBlock: uint8(threadsPerBlock),
	}
	d.Reset()
	return d
}

// Reset returns the dispatcher to idle, zeroes the block counters and holds
// every core in reset until the next kernel start.
func (d *Dispatcher) Reset() {
	d.State = DispatcherIdle
	d.BlocksDispatched = 0
	d.BlocksDone = 0
	d.TotalBlocks = 0
	d.done = false
	for _, c := range d.cores {
		c.In = core.Input{Reset: true}
	}
}

// Done is the kernel-completion output. It rises once per invocation and
// stays high until the next start or reset.
func (d *Dispatcher) Done() bool {
	return d.done
}

// Step the dispatcher by one tick. The start argument is true only on the
// tick the host pulses the start signal; threadCount is the value of the
// device control register on that tick.
func (d *Dispatcher) Step(start bool, threadCount uint8) {
	switch d.State {
	case DispatcherIdle:
		if start {
			d.TotalBlocks = uint8((uint16(threadCount) + uint16(d.threadsPerBlock) - 1) / uint16(d.threadsPerBlock))
			d.BlocksDispatched = 0
			d.BlocksDone = 0
			d.done = false
			for _, c := range d.cores {
				c.In = core.Input{}
			}
			d.State = DispatcherDispatching
			logger.Logf("dispatcher", "start: %d threads in %d blocks", threadCount, d.TotalBlocks)

			// a zero thread count leaves nothing to dispatch and nothing to
			// complete, so done can never rise. the kernel author should
			// not have pulsed start
			if d.TotalBlocks == 0 {
				logger.Log("dispatcher", "start with a thread count of zero: done will never rise")
			}
		}

	case DispatcherDispatching:
		// reset pulses raised on the previous tick have been seen by their
		// core by now
		for _, c := range d.cores {
			c.In.Reset = false
		}

		for _, c := range d.cores {
			// assignment: a core with no block and no pending reset takes
			// the next block in sequence
			if d.BlocksDispatched < d.TotalBlocks && !c.In.Start && !c.In.Reset && !c.Done {
				c.In.Start = true
				c.In.BlockID = d.BlocksDispatched

				// the last block may be smaller than a full warp
				if d.BlocksDispatched == d.TotalBlocks-1 {
					c.In.ThreadCount = threadCount - d.BlocksDispatched*d.threadsPerBlock
				} else {
					c.In.ThreadCount = d.threadsPerBlock
				}

				d.BlocksDispatched++
				logger.Logf("dispatcher", "block %d of %d to core %d (%d threads)",
					c.In.BlockID, d.TotalBlocks, c.ID, c.In.ThreadCount)
			}

			// completion: drop the core's start and pulse its reset so it
			// re-enters idle on the next tick
			if c.Done && c.In.Start {
				c.In.Start = false
				c.In.Reset = true
				d.BlocksDone++
				logger.Logf("dispatcher", "core %d finished block %d (%d of %d done)",
					c.ID, c.BlockID, d.BlocksDone, d.TotalBlocks)
			}
		}

		if d.BlocksDone == d.TotalBlocks && d.TotalBlocks != 0 {
			d.done = true
			d.State = DispatcherIdle
			logger.Log("dispatcher", "kernel complete")
		}
	}
}
