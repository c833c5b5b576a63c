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

package registers

import (
	"fmt"
)

// ProgramCounter represents the PC register in the 6502 CPU.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("0x%04x", pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add a value to the PC. The PC wraps at 0xffff.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}

// Relative adds a signed 8-bit displacement to the low byte of the PC. If the
// low byte wraps then the carry (or borrow) is propagated into the high byte.
// Returns true if the high byte changed.
func (pc *ProgramCounter) Relative(displacement uint8) bool {
	hi := pc.value & 0xff00
	lo := uint8(pc.value)
	nlo := lo + displacement

	nhi := hi
	if displacement&0x80 == 0x80 {
		// negative displacement. no wrap of the low byte means a borrow from
		// the high byte
		if nlo >= lo {
			nhi -= 0x0100
		}
	} else if nlo < lo {
		nhi += 0x0100
	}

	pc.value = nhi | uint16(nlo)

	return nhi != hi
}
