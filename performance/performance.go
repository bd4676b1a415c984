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

// Package performance measures the simulation's cycle throughput by
// running a kernel over and over for a period of wall-clock time.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/Yaswanth2747/miniGPU/curated"
	"github.com/Yaswanth2747/miniGPU/hardware"
	"github.com/Yaswanth2747/miniGPU/kernelloader"
	"github.com/Yaswanth2747/miniGPU/statsview"
)

// Check the performance of the simulation using the supplied kernel. The
// kernel is restarted every time it completes; the simulation runs for the
// specified duration and the cycle and kernel throughput is reported.
func Check(output io.Writer, loader kernelloader.Loader, threadCount uint8, duration string, launchStatsview bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := loader.Load(); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if launchStatsview {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "statsview not enabled in this build")
		}
	}

	gpu := hardware.NewGPU(hardware.NewSpec())
	gpu.LoadKernel(loader.Program)
	gpu.SetThreadCount(threadCount)
	gpu.Start()

	// expire the measurement period with a timer. the check is filtered
	// through ContinueCheckBrake because reading the channel on every tick
	// costs more than the tick
	expireChan := make(chan bool, 1)
	time.AfterFunc(dur, func() { expireChan <- true })

	kernels := 0
	cycles := uint64(0)
	brake := 0

	startTime := time.Now()

	err = gpu.Run(func() (bool, error) {
		// restart the kernel as soon as it completes
		if gpu.Done() {
			kernels++
			cycles += gpu.Cycles()
			gpu.Reset()
			gpu.Start()
		}

		brake++
		if brake >= hardware.ContinueCheckBrake {
			brake = 0
			select {
			case <-expireChan:
				return false, nil
			default:
			}
		}
		return true, nil
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(startTime).Seconds()
	cycles += gpu.Cycles()

	fmt.Fprintf(output, "%d cycles in %.2fs (%.0f cycles/s)\n", cycles, elapsed, float64(cycles)/elapsed)
	fmt.Fprintf(output, "%d kernel completions (%.1f kernels/s)\n", kernels, float64(kernels)/elapsed)

	return nil
}
