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

package cpu

// StepResult is returned by a StepHook to indicate whether execution should
// continue.
type StepResult int

// List of valid StepResult values.
const (
	Continue StepResult = iota
	Halt
)

func (r StepResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Halt:
		return "halt"
	}
	return "unknown step result"
}

// StepHook is called by Run() before every instruction is fetched. The hook
// can read and write the memory of the CPU, which is the usual way of
// simulating peripherals. Returning Halt stops Run() without error.
type StepHook interface {
	OnStep(mc *CPU) StepResult
}

// StepHookFunc allows an ordinary function to be used as a StepHook.
type StepHookFunc func(mc *CPU) StepResult

// OnStep implements the StepHook interface.
func (f StepHookFunc) OnStep(mc *CPU) StepResult {
	return f(mc)
}
