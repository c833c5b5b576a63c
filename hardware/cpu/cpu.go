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

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
)

// CPU implements the 6502. Register logic is implemented by the Register type
// in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	mem *memory.RAM

	// the number of cycles consumed since the last reset. the value is
	// nominal and is not used for timing
	Cycles int

	// the number of instructions executed since the last reset
	Instructions int

	// last result. only valid if LastResult.Final is true
	LastResult execution.Result

	// the cpu has encountered a BRK instruction. requires a Reset()
	Halted bool

	// suppress log entries made by the CPU
	Quiet bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. All
// registers and all memory are zero.
func NewCPU() *CPU {
	return &CPU{
		mem:    memory.NewRAM(),
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
	}
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return !mc.Quiet
}

// Reset reinitialises all registers and loads the PC with the address stored
// at the reset address. Memory is not changed.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.Halted = false
	mc.Cycles = 0
	mc.Instructions = 0

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(addresses.StackTop)
	mc.Status.Reset()
	mc.PC.Load(mc.mem.Read16(addresses.Reset))
}

// Load copies the program into memory at the program origin and points the
// reset address at it. The CPU is not reset.
func (mc *CPU) Load(program []uint8) error {
	err := mc.mem.Load(addresses.Origin, program)
	if err != nil {
		return curated.Errorf(ProgramTooLarge, len(program), addresses.Origin)
	}
	mc.mem.Write16(addresses.Reset, addresses.Origin)
	return nil
}

// LoadAndRun is a convenience function that loads the program, resets the CPU
// and runs the program with no hook.
func (mc *CPU) LoadAndRun(program []uint8) error {
	err := mc.Load(program)
	if err != nil {
		return err
	}
	mc.Reset()
	return mc.Run(nil)
}

// MemRead returns the byte at address.
func (mc *CPU) MemRead(address uint16) uint8 {
	return mc.mem.Read(address)
}

// MemWrite value to address.
func (mc *CPU) MemWrite(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

// MemReadU16 returns the little-endian word at address.
func (mc *CPU) MemReadU16(address uint16) uint16 {
	return mc.mem.Read16(address)
}

// MemWriteU16 writes a little-endian word to address.
func (mc *CPU) MemWriteU16(address uint16, value uint16) {
	mc.mem.Write16(address, value)
}

// MemSlice returns a copy of length bytes of memory from address.
func (mc *CPU) MemSlice(address uint16, length int) []uint8 {
	return mc.mem.Slice(address, length)
}

// State is a copy of the programmer visible state of the CPU. It contains no
// references to the CPU and is safe to pass to other goroutines.
type State struct {
	PC           uint16
	A            uint8
	X            uint8
	Y            uint8
	SP           uint8
	Status       uint8
	Cycles       int
	Instructions int
	Halted       bool
	Last         string
}

// Snapshot returns the current State of the CPU.
func (mc *CPU) Snapshot() State {
	s := State{
		PC:           mc.PC.Address(),
		A:            mc.A.Value(),
		X:            mc.X.Value(),
		Y:            mc.Y.Value(),
		SP:           mc.SP.Value(),
		Status:       mc.Status.Value(),
		Cycles:       mc.Cycles,
		Instructions: mc.Instructions,
		Halted:       mc.Halted,
	}
	if mc.LastResult.Final {
		s.Last = mc.LastResult.String()
	}
	return s
}
