// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

// the hook checks the timer only every brake instructions. checking a channel
// on every instruction is relatively expensive.
const brake = 1000

// Result of a performance Check().
type Result struct {
	Instructions int
	Cycles       int
	Runs         int
	Duration     time.Duration
}

// IPS returns the number of instructions executed per second.
func (r Result) IPS() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f MIPS (%d instructions in %d runs over %.2f seconds)",
		r.IPS()/1000000, r.Instructions, r.Runs, r.Duration.Seconds())
}

// Check the performance of the emulator using the supplied program. The
// program is run repeatedly for the specified duration. A program that
// never reaches BRK is simply stopped when the duration expires.
func Check(output io.Writer, profile Profile, program []uint8, duration string) (Result, error) {
	var res Result

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	mc := cpu.NewCPU()
	mc.Quiet = true
	err = mc.Load(program)
	if err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		var expired bool
		var count int
		hook := cpu.StepHookFunc(func(_ *cpu.CPU) cpu.StepResult {
			count++
			if count < brake {
				return cpu.Continue
			}
			count = 0
			select {
			case <-timer.C:
				expired = true
				return cpu.Halt
			default:
			}
			return cpu.Continue
		})

		start := time.Now()
		for !expired {
			mc.Reset()
			err := mc.Run(hook)
			res.Instructions += mc.Instructions
			res.Cycles += mc.Cycles
			res.Runs++
			if err != nil {
				return err
			}
		}
		res.Duration = time.Since(start)

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	if output != nil {
		_, err = io.WriteString(output, res.String()+"\n")
		if err != nil {
			return res, curated.Errorf("performance: %v", err)
		}
	}

	return res, nil
}
