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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// address of the instruction. ie. the address of the opcode
	Address uint16

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully decoded
	ByteCount int

	// instruction data is the operand of the instruction. for branch
	// instructions, it is the displacement value. only the lower eight bits
	// are meaningful for instructions with one byte of operand
	InstructionData uint16

	// the number of cycles taken by the instruction. usually the same as
	// Defn.Cycles but in the case of PageFaults and branches, this value may
	// be different. cycles are informational only
	Cycles int

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether this data has been finalised. the values of the other fields
	// may be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.ByteCount = 0
	r.InstructionData = 0
	r.Cycles = 0
	r.BranchSuccess = false
	r.PageFault = false
	r.Final = false
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("0x%04x ???", r.Address)
	}

	var pf, branch string
	if r.PageFault {
		pf = " page-fault"
	}
	if r.Defn.IsBranch() && r.BranchSuccess {
		branch = " branched"
	}

	var operand string
	switch r.Defn.Bytes {
	case 2:
		operand = fmt.Sprintf(" %02x", r.InstructionData&0xff)
	case 3:
		operand = fmt.Sprintf(" %04x", r.InstructionData)
	}

	return fmt.Sprintf("0x%04x %s%s [%d]%s%s", r.Address, r.Defn.Mnemonic, operand, r.Cycles, pf, branch)
}
