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

package termplay

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/demo"
	"github.com/jetsetilly/gopher6502/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDecodeInput(t *testing.T) {
	keys, quit := decodeInput([]byte("wasd"))
	test.ExpectFailure(t, quit)
	test.DemandEquality(t, len(keys), 4)
	test.ExpectEquality(t, keys[0], demo.KeyUp)
	test.ExpectEquality(t, keys[1], demo.KeyLeft)
	test.ExpectEquality(t, keys[2], demo.KeyDown)
	test.ExpectEquality(t, keys[3], demo.KeyRight)

	// cursor keys
	keys, quit = decodeInput([]byte{
		easyterm.KeyEsc, easyterm.EscCursor, easyterm.CursorUp,
		easyterm.KeyEsc, easyterm.EscCursor, easyterm.CursorBackward,
	})
	test.ExpectFailure(t, quit)
	test.DemandEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0], demo.KeyUp)
	test.ExpectEquality(t, keys[1], demo.KeyLeft)

	// keys before the quit request are kept
	keys, quit = decodeInput([]byte("wq"))
	test.ExpectSuccess(t, quit)
	test.ExpectEquality(t, len(keys), 1)

	// a lone escape
	_, quit = decodeInput([]byte{easyterm.KeyEsc})
	test.ExpectSuccess(t, quit)

	// non-printable characters are ignored
	keys, quit = decodeInput([]byte{0x01, 0x02})
	test.ExpectFailure(t, quit)
	test.ExpectEquality(t, len(keys), 0)
}

func TestRender(t *testing.T) {
	var f demo.Frame
	f[0] = 0x01
	f[demo.Width] = 0x02

	var b strings.Builder
	render(&b, &f)
	s := b.String()

	test.ExpectSuccess(t, strings.HasPrefix(s, easyterm.CursorHome))
	test.ExpectEquality(t, strings.Count(s, "\r\n"), demo.Height/2)
	test.ExpectEquality(t, strings.Count(s, halfBlock), demo.Width*demo.Height/2)

	// top left is white on red
	test.ExpectSuccess(t, strings.Contains(s, easyterm.CursorHome+
		"\033[38;2;255;255;255m\033[48;2;136;0;0m"+halfBlock))
}
