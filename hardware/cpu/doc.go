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

// Package cpu emulates the 6502 microprocessor as found in NES-class
// machines. It implements a subset of the documented instruction set,
// sufficient to run small programs that communicate with the host through
// memory-mapped cells.
//
// The CPU owns its memory, which is a flat 64KiB address space. Programs are
// loaded with the Load() function, which also writes the reset address, and
// the CPU is then Reset() and Run():
//
//	mc := cpu.NewCPU()
//	err := mc.Load(program)
//	mc.Reset()
//	err = mc.Run(nil)
//
// Or the three steps can be combined with the LoadAndRun() function.
//
// The Run() function executes instructions until a BRK instruction is
// encountered. A StepHook can be supplied to Run(). The hook is called before
// every instruction and can interact with the memory of the CPU or halt
// execution.
//
// Execution of a single instruction can be performed with the Step()
// function. Information about the most recently executed instruction is
// available in the LastResult field.
//
// Cycle counts are maintained but only as metadata. There is no attempt at
// cycle accurate timing.
//
// The CPU is not safe for concurrent use.
package cpu
