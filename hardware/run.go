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
	"github.com/Yaswanth2747/miniGPU/curated"
)

// sentinel error pattern returned by RunUntilDone when the cycle budget is
// spent before the kernel completes.
const TimedOut = "gpu: not done after %d cycles"

// Checking the continue function on every tick is expensive when the caller
// only wants to poll an end condition occasionally. Callers of Run() can use
// ContinueCheckBrake to filter their continueCheck implementation.
const ContinueCheckBrake = 100

// Run sets the simulation running as quickly as possible. The continueCheck
// function is consulted after every tick; the run ends when it returns
// false or an error.
func (gpu *GPU) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		gpu.step()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunUntilDone steps the machine until the done output rises. A curated
// error with the TimedOut pattern is returned if that has not happened
// within maxCycles ticks.
func (gpu *GPU) RunUntilDone(maxCycles uint64) error {
	for i := uint64(0); i < maxCycles; i++ {
		gpu.step()
		if gpu.Done() {
			return nil
		}
	}
	return curated.Errorf(TimedOut, maxCycles)
}
