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

package instructions

import (
	"sync"

	"github.com/jetsetilly/gopher6502/curated"
)

// sentinal errors.
const (
	UnsupportedOpcode = "cpu: unsupported opcode %#02x"
)

var (
	table     [256]*Definition
	tableOnce sync.Once
)

// shorthand for the table entries below.
func defn(opcode uint8, mnemonic string, bytes int, cycles int, mode AddressingMode, pageSensitive bool, effect EffectCategory) Definition {
	return Definition{
		OpCode:         opcode,
		Mnemonic:       mnemonic,
		Bytes:          bytes,
		Cycles:         cycles,
		AddressingMode: mode,
		PageSensitive:  pageSensitive,
		Effect:         effect,
	}
}

// the cycle counts are the nominal counts. page sensitive instructions take
// an extra cycle when indexing crosses a page and branches take an extra
// cycle when taken and another when the branch crosses a page.
var definitions = []Definition{
	defn(0x69, "ADC", 2, 2, Immediate, false, Read),
	defn(0x65, "ADC", 2, 3, ZeroPage, false, Read),
	defn(0x75, "ADC", 2, 4, ZeroPageX, false, Read),
	defn(0x6d, "ADC", 3, 4, Absolute, false, Read),
	defn(0x7d, "ADC", 3, 4, AbsoluteX, true, Read),
	defn(0x79, "ADC", 3, 4, AbsoluteY, true, Read),
	defn(0x61, "ADC", 2, 6, IndirectX, false, Read),
	defn(0x71, "ADC", 2, 5, IndirectY, true, Read),

	defn(0x29, "AND", 2, 2, Immediate, false, Read),
	defn(0x25, "AND", 2, 3, ZeroPage, false, Read),
	defn(0x35, "AND", 2, 4, ZeroPageX, false, Read),
	defn(0x2d, "AND", 3, 4, Absolute, false, Read),
	defn(0x3d, "AND", 3, 4, AbsoluteX, true, Read),
	defn(0x39, "AND", 3, 4, AbsoluteY, true, Read),
	defn(0x21, "AND", 2, 6, IndirectX, false, Read),
	defn(0x31, "AND", 2, 5, IndirectY, true, Read),

	defn(0x0a, "ASL", 1, 2, Accumulator, false, RMW),
	defn(0x06, "ASL", 2, 5, ZeroPage, false, RMW),
	defn(0x16, "ASL", 2, 6, ZeroPageX, false, RMW),
	defn(0x0e, "ASL", 3, 6, Absolute, false, RMW),
	defn(0x1e, "ASL", 3, 7, AbsoluteX, false, RMW),

	defn(0x90, "BCC", 2, 2, Relative, false, Flow),
	defn(0xb0, "BCS", 2, 2, Relative, false, Flow),
	defn(0xf0, "BEQ", 2, 2, Relative, false, Flow),
	defn(0xd0, "BNE", 2, 2, Relative, false, Flow),
	defn(0x10, "BPL", 2, 2, Relative, false, Flow),

	defn(0x18, "CLC", 1, 2, NoneAddressing, false, Read),
	defn(0x38, "SEC", 1, 2, NoneAddressing, false, Read),

	defn(0xc9, "CMP", 2, 2, Immediate, false, Read),
	defn(0xc5, "CMP", 2, 3, ZeroPage, false, Read),
	defn(0xd5, "CMP", 2, 4, ZeroPageX, false, Read),
	defn(0xcd, "CMP", 3, 4, Absolute, false, Read),
	defn(0xdd, "CMP", 3, 4, AbsoluteX, true, Read),
	defn(0xd9, "CMP", 3, 4, AbsoluteY, true, Read),
	defn(0xc1, "CMP", 2, 6, IndirectX, false, Read),
	defn(0xd1, "CMP", 2, 5, IndirectY, true, Read),

	defn(0xe0, "CPX", 2, 2, Immediate, false, Read),
	defn(0xe4, "CPX", 2, 3, ZeroPage, false, Read),
	defn(0xec, "CPX", 3, 4, Absolute, false, Read),

	defn(0xca, "DEX", 1, 2, NoneAddressing, false, Read),
	defn(0xe8, "INX", 1, 2, NoneAddressing, false, Read),

	defn(0x20, "JSR", 3, 6, Absolute, false, Subroutine),
	defn(0x60, "RTS", 1, 6, NoneAddressing, false, Subroutine),

	defn(0xa9, "LDA", 2, 2, Immediate, false, Read),
	defn(0xa5, "LDA", 2, 3, ZeroPage, false, Read),
	defn(0xb5, "LDA", 2, 4, ZeroPageX, false, Read),
	defn(0xad, "LDA", 3, 4, Absolute, false, Read),
	defn(0xbd, "LDA", 3, 4, AbsoluteX, true, Read),
	defn(0xb9, "LDA", 3, 4, AbsoluteY, true, Read),
	defn(0xa1, "LDA", 2, 6, IndirectX, false, Read),
	defn(0xb1, "LDA", 2, 5, IndirectY, true, Read),

	defn(0xa2, "LDX", 2, 2, Immediate, false, Read),
	defn(0xa6, "LDX", 2, 3, ZeroPage, false, Read),
	defn(0xb6, "LDX", 2, 4, ZeroPageY, false, Read),
	defn(0xae, "LDX", 3, 4, Absolute, false, Read),
	defn(0xbe, "LDX", 3, 4, AbsoluteY, true, Read),

	defn(0xa0, "LDY", 2, 2, Immediate, false, Read),
	defn(0xa4, "LDY", 2, 3, ZeroPage, false, Read),
	defn(0xb4, "LDY", 2, 4, ZeroPageX, false, Read),
	defn(0xac, "LDY", 3, 4, Absolute, false, Read),
	defn(0xbc, "LDY", 3, 4, AbsoluteX, true, Read),

	defn(0xe9, "SBC", 2, 2, Immediate, false, Read),
	defn(0xe5, "SBC", 2, 3, ZeroPage, false, Read),
	defn(0xf5, "SBC", 2, 4, ZeroPageX, false, Read),
	defn(0xed, "SBC", 3, 4, Absolute, false, Read),
	defn(0xfd, "SBC", 3, 4, AbsoluteX, true, Read),
	defn(0xf9, "SBC", 3, 4, AbsoluteY, true, Read),
	defn(0xe1, "SBC", 2, 6, IndirectX, false, Read),
	defn(0xf1, "SBC", 2, 5, IndirectY, true, Read),

	defn(0x85, "STA", 2, 3, ZeroPage, false, Write),
	defn(0x95, "STA", 2, 4, ZeroPageX, false, Write),
	defn(0x8d, "STA", 3, 4, Absolute, false, Write),
	defn(0x9d, "STA", 3, 5, AbsoluteX, false, Write),
	defn(0x99, "STA", 3, 5, AbsoluteY, false, Write),
	defn(0x81, "STA", 2, 6, IndirectX, false, Write),
	defn(0x91, "STA", 2, 6, IndirectY, false, Write),

	defn(0x86, "STX", 2, 3, ZeroPage, false, Write),
	defn(0x96, "STX", 2, 4, ZeroPageY, false, Write),
	defn(0x8e, "STX", 3, 4, Absolute, false, Write),

	defn(0x84, "STY", 2, 3, ZeroPage, false, Write),
	defn(0x94, "STY", 2, 4, ZeroPageX, false, Write),
	defn(0x8c, "STY", 3, 4, Absolute, false, Write),

	defn(0xaa, "TAX", 1, 2, NoneAddressing, false, Read),
	defn(0x8a, "TXA", 1, 2, NoneAddressing, false, Read),

	defn(0x00, "BRK", 1, 7, NoneAddressing, false, Interrupt),
}

func buildTable() {
	for i := range definitions {
		table[definitions[i].OpCode] = &definitions[i]
	}
}

// Lookup returns the definition for the opcode. Returns an error with the
// UnsupportedOpcode pattern if the opcode has no definition.
//
// The returned Definition must not be modified.
func Lookup(opcode uint8) (*Definition, error) {
	tableOnce.Do(buildTable)
	if d := table[opcode]; d != nil {
		return d, nil
	}
	return nil, curated.Errorf(UnsupportedOpcode, opcode)
}

// Definitions returns every definition in the table, in no particular order.
// The slice is a copy and can be modified by the caller.
func Definitions() []Definition {
	tableOnce.Do(buildTable)
	d := make([]Definition, len(definitions))
	copy(d, definitions)
	return d
}
