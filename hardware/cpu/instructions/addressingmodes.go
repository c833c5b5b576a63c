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

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	NoneAddressing AddressingMode = iota // implied
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg

	IndirectX // (ind,X)
	IndirectY // (ind),Y

	AbsoluteX // abs,X
	AbsoluteY // abs,Y

	ZeroPageX // zpg,X
	ZeroPageY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case NoneAddressing:
		return "NoneAddressing"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case IndirectX:
		return "IndirectX"
	case IndirectY:
		return "IndirectY"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	}
	return "unknown addressing mode"
}

// HasOperandAddress returns true if the addressing mode resolves to an
// address in memory. Accumulator and NoneAddressing do not.
func (m AddressingMode) HasOperandAddress() bool {
	return m != NoneAddressing && m != Accumulator
}
