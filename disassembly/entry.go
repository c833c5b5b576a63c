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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
)

// Entry is a disassembled instruction. It is a representation of
// execution.Result.
type Entry struct {
	// copy of the CPU execution. the Final field may be false if the
	// instruction was decoded rather than executed
	Result execution.Result

	// string representations of information in execution.Result
	Bytecode string
	Address  string
	Operator string
	Operand  string
}

func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand))
}

// FormatResult creates an Entry for the supplied result.
func FormatResult(result execution.Result) *Entry {
	e := &Entry{
		Result: result,
	}

	// address of instruction
	e.Address = fmt.Sprintf("$%04x", result.Address)

	// if definition is nil then set the operator field to ??? and return with no further formatting
	if result.Defn == nil {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Mnemonic

	// bytecode and operand string is assembled depending on the number of
	// expected bytes (result.Defn.Bytes) and the number of bytes read so far
	// (result.ByteCount).
	operand := result.InstructionData
	switch result.Defn.Bytes {
	case 3:
		switch result.ByteCount {
		case 3:
			e.Operand = fmt.Sprintf("$%04x", operand)
			e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.Defn.OpCode, operand&0x00ff, operand&0xff00>>8)
		case 2:
			e.Operand = fmt.Sprintf("$??%02x", operand&0x00ff)
			e.Bytecode = fmt.Sprintf("%02x %02x ??", result.Defn.OpCode, operand&0x00ff)
		default:
			e.Operand = "$????"
			e.Bytecode = fmt.Sprintf("%02x ?? ??", result.Defn.OpCode)
		}
	case 2:
		switch result.ByteCount {
		case 2:
			if result.Defn.AddressingMode == instructions.Relative {
				e.Operand = fmt.Sprintf("$%04x", absoluteBranchDestination(result.Address, operand))
			} else {
				e.Operand = fmt.Sprintf("$%02x", operand&0x00ff)
			}
			e.Bytecode = fmt.Sprintf("%02x %02x", result.Defn.OpCode, operand&0x00ff)
		default:
			e.Operand = "$??"
			e.Bytecode = fmt.Sprintf("%02x ??", result.Defn.OpCode)
		}
	default:
		e.Bytecode = fmt.Sprintf("%02x", result.Defn.OpCode)
		if result.Defn.AddressingMode == instructions.Accumulator {
			e.Operand = "A"
		}
	}

	e.Operand = addrModeDecoration(e.Operand, result.Defn.AddressingMode)

	return e
}

// add decoration to operand according to the addressing mode of the entry.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	s := operand

	switch mode {
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", operand)
	case instructions.IndirectX:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectY:
		s = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteX, instructions.ZeroPageX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteY, instructions.ZeroPageY:
		s = fmt.Sprintf("%s,Y", operand)
	}

	return s
}

// absolute branch destination returns the branch operand as the address of the
// branched PC, rather than an offset value.
func absoluteBranchDestination(addr uint16, operand uint16) uint16 {
	// create a mock register with the instruction's address as the initial value
	pc := registers.NewProgramCounter(addr)

	// all 6502 branch instructions are 2 bytes in length
	pc.Add(2)

	pc.Relative(uint8(operand))
	return pc.Address()
}
