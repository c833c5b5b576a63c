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

package demo

// Program paints pixels at random positions on the screen. The colour is
// random until a key is pressed, after which the value of the key is used.
var Program = []uint8{
	0xa5, 0xfe, // $8000 LDA $FE       ; random low byte of address
	0x85, 0x10, // $8002 STA $10
	0xa5, 0xfe, // $8004 LDA $FE       ; random page between $02 and $05
	0x29, 0x03, // $8006 AND #$03
	0x18,       // $8008 CLC
	0x69, 0x02, // $8009 ADC #$02
	0x85, 0x11, // $800B STA $11
	0xa5, 0xff, // $800D LDA $FF       ; colour from last key press
	0xd0, 0x02, // $800F BNE $8013
	0xa5, 0xfe, // $8011 LDA $FE       ; or a random colour
	0xa0, 0x00, // $8013 LDY #$00
	0x91, 0x10, // $8015 STA ($10),Y
	0x38,       // $8017 SEC
	0xb0, 0xe6, // $8018 BCS $8000
}
