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

// Addresses of the memory mapped peripherals.
const (
	RandomAddress = uint16(0x00fe)
	KeyAddress    = uint16(0x00ff)
	ScreenOrigin  = uint16(0x0200)
	ScreenMemtop  = uint16(0x05ff)
)

// Dimensions of the screen.
const (
	Width  = 32
	Height = 32
)

// Key codes written to KeyAddress by front ends.
const (
	KeyUp    = uint8('w')
	KeyLeft  = uint8('a')
	KeyDown  = uint8('s')
	KeyRight = uint8('d')
)

// Frame is a copy of the screen memory.
type Frame [Width * Height]uint8

// Pixel returns the value of the pixel at x, y.
func (f *Frame) Pixel(x, y int) uint8 {
	return f[y*Width+x]
}
