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

package programloader

import "sort"

type builtinProgram struct {
	description string
	data        []uint8
}

// small programs that can be loaded by name. useful for demonstration and
// for checking that the emulator is working.
var builtin = map[string]builtinProgram{
	"countdown": {
		description: "count X down from ten",
		data: []uint8{
			0xa2, 0x0a, // LDX #$0A
			0xca,       // DEX
			0xd0, 0xfd, // BNE -3
			0x00, // BRK
		},
	},
	"subroutine": {
		description: "call a subroutine that adds to the accumulator",
		data: []uint8{
			0xa9, 0x99, // LDA #$99
			0x20, 0x06, 0x80, // JSR $8006
			0x00,       // BRK
			0x69, 0x01, // ADC #$01
			0x60, // RTS
		},
	},
	"multiply": {
		description: "multiply 7 by 6 with repeated addition. result at $0010",
		data: []uint8{
			0xa9, 0x00, // LDA #$00
			0xa2, 0x06, // LDX #$06
			0x18,       // CLC
			0x69, 0x07, // ADC #$07
			0xca,       // DEX
			0xd0, 0xfa, // BNE -6
			0x85, 0x10, // STA $10
			0x00, // BRK
		},
	},
}

// Builtin describes a built-in program.
type Builtin struct {
	Name        string
	Description string
}

// Builtins returns the list of built-in programs, sorted by name.
func Builtins() []Builtin {
	var l []Builtin
	for k, v := range builtin {
		l = append(l, Builtin{Name: k, Description: v.description})
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Name < l[j].Name
	})
	return l
}
