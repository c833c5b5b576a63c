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
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// operandAddress returns the effective address of the operand for the current
// instruction. the PC must be pointing at the first byte after the opcode.
//
// for page sensitive instructions, the PageFault field of LastResult is set
// if indexing crossed a page boundary.
func (mc *CPU) operandAddress(defn *instructions.Definition) (uint16, error) {
	pc := mc.PC.Address()

	switch defn.AddressingMode {
	case instructions.Immediate, instructions.Relative:
		return pc, nil

	case instructions.ZeroPage:
		return uint16(mc.mem.Read(pc)), nil

	case instructions.ZeroPageX:
		// zero page indexing wraps within the zero page
		return uint16(mc.mem.Read(pc) + mc.X.Value()), nil

	case instructions.ZeroPageY:
		return uint16(mc.mem.Read(pc) + mc.Y.Value()), nil

	case instructions.Absolute:
		return mc.mem.Read16(pc), nil

	case instructions.AbsoluteX:
		base := mc.mem.Read16(pc)
		return mc.indexed(defn, base, mc.X.Value()), nil

	case instructions.AbsoluteY:
		base := mc.mem.Read16(pc)
		return mc.indexed(defn, base, mc.Y.Value()), nil

	case instructions.IndirectX:
		ptr := mc.mem.Read(pc) + mc.X.Value()
		return mc.mem.Read16(uint16(ptr)), nil

	case instructions.IndirectY:
		base := mc.mem.Read16(uint16(mc.mem.Read(pc)))
		return mc.indexed(defn, base, mc.Y.Value()), nil
	}

	return 0, curated.Errorf(InvalidAddressingMode, defn.AddressingMode, defn.Mnemonic)
}

// indexed adds the index to the base address, wrapping at the end of the
// address space.
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, index uint8) uint16 {
	address := base + uint16(index)
	if defn.PageSensitive && address&0xff00 != base&0xff00 {
		mc.LastResult.PageFault = true
	}
	return address
}

// read the operand value for the current instruction.
func (mc *CPU) operand(defn *instructions.Definition) (uint8, error) {
	address, err := mc.operandAddress(defn)
	if err != nil {
		return 0, err
	}
	return mc.mem.Read(address), nil
}
