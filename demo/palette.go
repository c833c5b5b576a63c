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

// Colour is an RGB value.
type Colour struct {
	R, G, B uint8
}

// the palette has sixteen entries. only the lower nibble of a pixel value is
// used to index the palette
var palette = [16]Colour{
	{0x00, 0x00, 0x00}, // black
	{0xff, 0xff, 0xff}, // white
	{0x88, 0x00, 0x00}, // red
	{0xaa, 0xff, 0xee}, // cyan
	{0xcc, 0x44, 0xcc}, // purple
	{0x00, 0xcc, 0x55}, // green
	{0x00, 0x00, 0xaa}, // blue
	{0xee, 0xee, 0x77}, // yellow
	{0xdd, 0x88, 0x55}, // orange
	{0x66, 0x44, 0x00}, // brown
	{0xff, 0x77, 0x77}, // light red
	{0x33, 0x33, 0x33}, // dark grey
	{0x77, 0x77, 0x77}, // grey
	{0xaa, 0xff, 0x66}, // light green
	{0x00, 0x88, 0xff}, // light blue
	{0xbb, 0xbb, 0xbb}, // light grey
}

// PaletteColour returns the colour for a pixel value.
func PaletteColour(v uint8) Colour {
	return palette[v&0x0f]
}
