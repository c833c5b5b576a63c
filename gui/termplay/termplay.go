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

// Package termplay displays the demo console in a terminal that supports
// 24-bit colour. Two rows of pixels are drawn in each line of text, using the
// upper half block character with separate foreground and background
// colours.
//
// Keys are read from the terminal in cbreak mode. The cursor keys and the
// w, a, s and d keys are passed to the console. The q key or a lone escape
// closes the display.
package termplay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopher6502/demo"
	"github.com/jetsetilly/gopher6502/gui"
	"github.com/jetsetilly/gopher6502/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher6502/logger"
)

// the longest Service() will wait for input or a new frame.
const serviceWait = 10 * time.Millisecond

const halfBlock = "▀"

// TermPlay implements the gui.GUI interface for colour terminals.
type TermPlay struct {
	con    gui.Console
	frames <-chan demo.Frame

	term easyterm.Terminal
	out  *bufio.Writer

	input chan []byte

	quit     chan struct{}
	quitOnce sync.Once
}

// NewTermPlay is the preferred method of initialisation for the TermPlay type.
func NewTermPlay(con gui.Console, input, output *os.File) (*TermPlay, error) {
	tp := &TermPlay{
		con:    con,
		frames: con.Frames(),
		out:    bufio.NewWriter(output),
		input:  make(chan []byte, 16),
		quit:   make(chan struct{}),
	}

	err := tp.term.Initialise(input, output)
	if err != nil {
		return nil, err
	}

	g := tp.term.Geometry()
	if g.Cols != 0 && (g.Cols < demo.Width || g.Rows < demo.Height/2) {
		logger.Logf(logger.Allow, "termplay", "terminal of %dx%d is too small for display", g.Cols, g.Rows)
	}

	tp.term.CBreakMode()
	tp.out.WriteString(easyterm.HideCursor + easyterm.ClearScreen)
	tp.out.Flush()

	go tp.readInput()

	return tp, nil
}

// reading from the terminal blocks so it happens in its own goroutine. the
// goroutine ends when the input is closed
func (tp *TermPlay) readInput() {
	for {
		b := make([]byte, 16)
		n, err := tp.term.Read(b)
		if err != nil {
			return
		}
		tp.input <- b[:n]
	}
}

// Destroy implements the gui.GUI interface.
func (tp *TermPlay) Destroy(output io.Writer) {
	tp.out.WriteString(easyterm.ResetColour + easyterm.ShowCursor + "\r\n")
	tp.out.Flush()
	tp.term.CleanUp()
}

// Quit implements the gui.GUI interface.
func (tp *TermPlay) Quit() <-chan struct{} {
	return tp.quit
}

// Service implements the gui.GUI interface.
func (tp *TermPlay) Service() {
	select {
	case b := <-tp.input:
		keys, quit := decodeInput(b)
		for _, k := range keys {
			tp.con.PushKey(k)
		}
		if quit {
			tp.quitOnce.Do(func() { close(tp.quit) })
		}

	case f, ok := <-tp.frames:
		if !ok {
			// console has stopped. the last frame remains on screen
			tp.frames = nil
			return
		}
		render(tp.out, &f)
		tp.out.Flush()

	case <-time.After(serviceWait):
	}
}

// decodeInput translates bytes read from the terminal into key codes for the
// console. Returns true if the input asks for the display to close.
func decodeInput(b []byte) ([]uint8, bool) {
	var keys []uint8

	for i := 0; i < len(b); i++ {
		switch b[i] {
		case easyterm.KeyEsc:
			if i+2 >= len(b) || b[i+1] != easyterm.EscCursor {
				return keys, true
			}

			var name string
			switch b[i+2] {
			case easyterm.CursorUp:
				name = "up"
			case easyterm.CursorDown:
				name = "down"
			case easyterm.CursorForward:
				name = "right"
			case easyterm.CursorBackward:
				name = "left"
			}
			if k, ok := gui.KeyCode(name); ok {
				keys = append(keys, k)
			}
			i += 2

		case 'q', 'Q':
			return keys, true

		default:
			if k, ok := gui.KeyCode(string(b[i])); ok {
				keys = append(keys, k)
			}
		}
	}

	return keys, false
}

// render the frame as ANSI text. the cursor is moved to the home position
// first so that each frame overwrites the previous one
func render(w io.Writer, f *demo.Frame) {
	io.WriteString(w, easyterm.CursorHome)
	for y := 0; y < demo.Height; y += 2 {
		for x := 0; x < demo.Width; x++ {
			top := demo.PaletteColour(f.Pixel(x, y))
			bot := demo.PaletteColour(f.Pixel(x, y+1))
			fmt.Fprintf(w, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm%s",
				top.R, top.G, top.B, bot.R, bot.G, bot.B, halfBlock)
		}
		io.WriteString(w, easyterm.ResetColour+"\r\n")
	}
}
