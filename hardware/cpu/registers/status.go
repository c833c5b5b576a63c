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
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. Only the four flags used by the emulation are represented.
type StatusRegister struct {
	Sign     bool
	Overflow bool
	Zero     bool
	Carry    bool
}

// bit positions of the flags in the uint8 representation of the register
const (
	CarryBit    = 0x01
	ZeroBit     = 0x02
	OverflowBit = 0x40
	SignBit     = 0x80
)

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string of letters. Upper case letters
// indicate the flag is set. Unused bits are shown as hyphens.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteString("----")

	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset all flags.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister into its uint8 representation. Bits not
// used by the emulation are always zero.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= SignBit
	}
	if sr.Overflow {
		v |= OverflowBit
	}
	if sr.Zero {
		v |= ZeroBit
	}
	if sr.Carry {
		v |= CarryBit
	}

	return v
}

// Load sets the flags from the uint8 representation.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&SignBit == SignBit
	sr.Overflow = v&OverflowBit == OverflowBit
	sr.Zero = v&ZeroBit == ZeroBit
	sr.Carry = v&CarryBit == CarryBit
}
