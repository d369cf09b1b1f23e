// This file is part of Gopher6510.
//
// Gopher6510 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6510 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6510.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6510/hardware/cpu"
)

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// number of instructions between checks for the end of the measurement
// period. checking the timer channel is relatively expensive
const performanceBrake = 1000

// Check the performance of the emulator by running the CPU for the specified
// duration. The CPU should have been reset.
//
// If profile is true then a CPU profile and a memory profile will be created
// in the current directory.
func Check(output io.Writer, profile bool, mc *cpu.CPU, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	startCycles := mc.Cycles
	var instructions uint64

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		brake := 0
		for {
			if mc.Halted() {
				return fmt.Errorf("CPU halted at %s", mc.PC)
			}

			if _, err := mc.Step(); err != nil {
				return err
			}
			instructions++

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timer.C:
					return timedOut
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	cycles := mc.Cycles - startCycles
	mhz, accuracy := CalcMHz(cycles, dur.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d instructions, %d cycles in %.2f seconds) %.1f%%\n",
		mhz, instructions, cycles, dur.Seconds(), accuracy)

	return nil
}
