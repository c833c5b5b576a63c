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
	"github.com/jetsetilly/gopher6502/hardware/memory/addresses"
	"github.com/jetsetilly/gopher6502/logger"
)

// Run executes instructions until a BRK instruction is encountered, the hook
// returns Halt or an error occurs. The hook may be nil.
//
// A BRK instruction or a Halt from the hook are not errors.
func (mc *CPU) Run(hook StepHook) error {
	mc.Halted = false

	for {
		if hook != nil && hook.OnStep(mc) == Halt {
			logger.Logf(mc, "cpu", "halted by hook at %s", mc.PC)
			return nil
		}

		halted, err := mc.Step()
		if err != nil {
			logger.Logf(mc, "cpu", "aborted: %v", err)
			return err
		}
		if halted {
			logger.Logf(mc, "cpu", "BRK at 0x%04x after %d instructions", mc.LastResult.Address, mc.Instructions)
			return nil
		}
	}
}

// Step executes a single instruction. Returns true if the instruction was a
// BRK instruction.
//
// The LastResult field is updated with information about the instruction.
func (mc *CPU) Step() (bool, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// fetch
	opcode := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	// decode
	defn, err := instructions.Lookup(opcode)
	if err != nil {
		return false, err
	}
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	switch defn.Bytes {
	case 2:
		mc.LastResult.InstructionData = uint16(mc.mem.Read(mc.PC.Address()))
	case 3:
		mc.LastResult.InstructionData = mc.mem.Read16(mc.PC.Address())
	}
	mc.LastResult.ByteCount = defn.Bytes

	// execute. jumpedPC is set by instructions that take control of the
	// program counter
	var jumpedPC bool

	switch defn.Mnemonic {
	case "ADC":
		var value uint8
		value, err = mc.operand(defn)
		if err != nil {
			break
		}
		wrapped := mc.A.Add(value)
		mc.Status.Carry = wrapped
		mc.Status.Overflow = wrapped
		mc.setNZ(mc.A.Value())

	case "SBC":
		var value uint8
		value, err = mc.operand(defn)
		if err != nil {
			break
		}
		wrapped := mc.A.Subtract(value)
		mc.Status.Carry = wrapped
		mc.Status.Overflow = wrapped
		mc.setNZ(mc.A.Value())

	case "AND":
		var value uint8
		value, err = mc.operand(defn)
		if err != nil {
			break
		}
		mc.A.AND(value)
		mc.setNZ(mc.A.Value())

	case "ASL":
		// in the memory modes the value is shifted in the accumulator. memory
		// is not changed
		if defn.AddressingMode != instructions.Accumulator {
			var value uint8
			value, err = mc.operand(defn)
			if err != nil {
				break
			}
			mc.A.Load(value)
		}
		mc.Status.Carry = mc.A.ASL()
		mc.setNZ(mc.A.Value())

	case "BCC":
		jumpedPC, err = mc.branch(defn, !mc.Status.Carry)
	case "BCS":
		jumpedPC, err = mc.branch(defn, mc.Status.Carry)
	case "BEQ":
		jumpedPC, err = mc.branch(defn, mc.Status.Zero)
	case "BNE":
		jumpedPC, err = mc.branch(defn, !mc.Status.Zero)
	case "BPL":
		jumpedPC, err = mc.branch(defn, !mc.Status.Sign)

	case "CLC":
		mc.Status.Carry = false
	case "SEC":
		mc.Status.Carry = true

	case "CMP":
		var value uint8
		value, err = mc.operand(defn)
		if err != nil {
			break
		}
		a := mc.A.Value()
		if a >= value {
			mc.Status.Carry = true
			mc.setNZ(a - value)
		} else {
			mc.Status.Carry = false
			mc.Status.Zero = false
			mc.Status.Sign = false
		}

	case "CPX":
		var value uint8
		value, err = mc.operand(defn)
		if err != nil {
			break
		}
		x := mc.X.Value()
		mc.Status.Carry = x >= value
		mc.Status.Zero = x == value
		mc.Status.Sign = mc.X.IsNegative()

	case "DEX":
		mc.X.Load(mc.X.Value() - 1)
		mc.setNZ(mc.X.Value())
	case "INX":
		mc.X.Load(mc.X.Value() + 1)
		mc.setNZ(mc.X.Value())

	case "JSR":
		var address uint16
		address, err = mc.operandAddress(defn)
		if err != nil {
			break
		}

		// the return address is the last byte of the JSR instruction
		ret := mc.PC.Address() + 1
		mc.push(uint8(ret >> 8))
		mc.push(uint8(ret))
		mc.PC.Load(address)
		jumpedPC = true

	case "RTS":
		lo := uint16(mc.pop())
		hi := uint16(mc.pop())
		mc.PC.Load((hi<<8 | lo) + 1)
		jumpedPC = true

	case "LDA":
		var value uint8
		value, err = mc.operand(defn)
		if err != nil {
			break
		}
		mc.A.Load(value)
		mc.setNZ(value)
	case "LDX":
		var value uint8
		value, err = mc.operand(defn)
		if err != nil {
			break
		}
		mc.X.Load(value)
		mc.setNZ(value)
	case "LDY":
		var value uint8
		value, err = mc.operand(defn)
		if err != nil {
			break
		}
		mc.Y.Load(value)
		mc.setNZ(value)

	case "STA":
		err = mc.store(defn, mc.A.Value())
	case "STX":
		err = mc.store(defn, mc.X.Value())
	case "STY":
		err = mc.store(defn, mc.Y.Value())

	case "TAX":
		mc.X.Load(mc.A.Value())
		mc.setNZ(mc.X.Value())
	case "TXA":
		mc.A.Load(mc.X.Value())
		mc.setNZ(mc.A.Value())

	case "BRK":
		mc.Halted = true

	default:
		// the instruction table and this switch have diverged
		return false, curated.Errorf(instructions.UnsupportedOpcode, opcode)
	}

	if err != nil {
		return false, err
	}

	if !jumpedPC {
		mc.PC.Add(uint16(defn.Bytes - 1))
	}

	// branch instructions account for their own additional cycles
	if mc.LastResult.PageFault && !defn.IsBranch() {
		mc.LastResult.Cycles++
	}

	mc.LastResult.Final = true
	mc.Cycles += mc.LastResult.Cycles
	mc.Instructions++

	return mc.Halted, nil
}

// setNZ sets the zero and sign flags according to value.
func (mc *CPU) setNZ(value uint8) {
	mc.Status.Zero = value == 0
	mc.Status.Sign = value&0x80 == 0x80
}

// branch reads the displacement and, if the condition holds, moves the PC.
// returns true if the branch was taken.
func (mc *CPU) branch(defn *instructions.Definition, condition bool) (bool, error) {
	address, err := mc.operandAddress(defn)
	if err != nil {
		return false, err
	}

	if !condition {
		return false, nil
	}

	displacement := mc.mem.Read(address)

	// the displacement is relative to the address of the next instruction
	mc.PC.Add(1)
	if mc.PC.Relative(displacement) {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
	mc.LastResult.Cycles++
	mc.LastResult.BranchSuccess = true

	return true, nil
}

// store value at the operand address of the instruction.
func (mc *CPU) store(defn *instructions.Definition, value uint8) error {
	address, err := mc.operandAddress(defn)
	if err != nil {
		return err
	}
	mc.mem.Write(address, value)
	return nil
}

// push value onto the stack. the stack pointer wraps silently.
func (mc *CPU) push(value uint8) {
	mc.mem.Write(addresses.Stack|uint16(mc.SP.Value()), value)
	mc.SP.Load(mc.SP.Value() - 1)
}

// pop value from the stack. the stack pointer wraps silently.
func (mc *CPU) pop() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(addresses.Stack | uint16(mc.SP.Value()))
}
