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

package gui

import (
	"strings"

	"github.com/jetsetilly/gopher6502/demo"
)

// KeyCode translates the name of a key into the value written to the demo
// console key address. Key names are case insensitive. Cursor keys are
// equivalent to w, a, s and d.
func KeyCode(name string) (uint8, bool) {
	switch strings.ToLower(name) {
	case "w", "up":
		return demo.KeyUp, true
	case "a", "left":
		return demo.KeyLeft, true
	case "s", "down":
		return demo.KeyDown, true
	case "d", "right":
		return demo.KeyRight, true
	}

	// any other printable character is passed through as is
	if len(name) == 1 && name[0] >= 0x20 && name[0] < 0x7f {
		return strings.ToLower(name)[0], true
	}

	return 0, false
}
