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

import (
	"context"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/test"
)

func TestPalette(t *testing.T) {
	test.ExpectEquality(t, PaletteColour(0x00), Colour{0x00, 0x00, 0x00})
	test.ExpectEquality(t, PaletteColour(0x01), Colour{0xff, 0xff, 0xff})

	// upper nibble is ignored
	test.ExpectEquality(t, PaletteColour(0xf1), PaletteColour(0x01))
	test.ExpectEquality(t, PaletteColour(0x2e), PaletteColour(0x0e))
}

func TestFramePixel(t *testing.T) {
	var f Frame
	f[Width*3+7] = 0x0a
	test.ExpectEquality(t, f.Pixel(7, 3), uint8(0x0a))
	test.ExpectEquality(t, f.Pixel(3, 7), uint8(0x00))
	test.ExpectEquality(t, int(ScreenMemtop-ScreenOrigin+1), len(f))
}

func TestRandomByte(t *testing.T) {
	mc := cpu.NewCPU()

	// two consoles with the same seed produce the same sequence
	a := NewConsole(100)
	b := NewConsole(100)

	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, a.OnStep(mc), cpu.Continue)
		va := mc.MemRead(RandomAddress)
		test.ExpectEquality(t, b.OnStep(mc), cpu.Continue)
		vb := mc.MemRead(RandomAddress)
		test.ExpectEquality(t, va, vb, i)
	}
	test.ExpectEquality(t, a.Ticks(), 10)
}

func TestKeys(t *testing.T) {
	mc := cpu.NewCPU()
	con := NewConsole(1)

	con.OnStep(mc)
	test.ExpectEquality(t, mc.MemRead(KeyAddress), uint8(0x00))

	con.PushKey(KeyUp)
	con.PushKey(KeyLeft)
	con.OnStep(mc)
	test.ExpectEquality(t, mc.MemRead(KeyAddress), KeyUp)
	con.OnStep(mc)
	test.ExpectEquality(t, mc.MemRead(KeyAddress), KeyLeft)

	// the last key press remains in memory
	con.OnStep(mc)
	test.ExpectEquality(t, mc.MemRead(KeyAddress), KeyLeft)

	// key presses beyond the length of the queue are dropped
	for i := 0; i < keyQueueLen*2; i++ {
		con.PushKey(KeyDown)
	}
	test.ExpectEquality(t, len(con.keys), keyQueueLen)
}

func TestFrames(t *testing.T) {
	mc := cpu.NewCPU()
	con := NewConsole(1)

	// no change to the screen means no frame
	con.OnStep(mc)
	test.ExpectEquality(t, len(con.Frames()), 0)

	mc.MemWrite(ScreenOrigin+Width+1, 0x03)
	con.OnStep(mc)
	test.DemandEquality(t, len(con.Frames()), 1)

	// an uncollected frame is replaced by a newer one
	mc.MemWrite(ScreenOrigin, 0x04)
	con.OnStep(mc)
	test.DemandEquality(t, len(con.Frames()), 1)

	f := <-con.Frames()
	test.ExpectEquality(t, f.Pixel(1, 1), uint8(0x03))
	test.ExpectEquality(t, f.Pixel(0, 0), uint8(0x04))

	// writes outside the screen are not noticed
	mc.MemWrite(ScreenMemtop+1, 0x01)
	con.OnStep(mc)
	test.ExpectEquality(t, len(con.Frames()), 0)
}

func TestCancel(t *testing.T) {
	mc := cpu.NewCPU()
	con := NewConsole(1)

	ctx, cancel := context.WithCancel(context.Background())
	con.ctx = ctx
	test.ExpectEquality(t, con.OnStep(mc), cpu.Continue)
	cancel()
	test.ExpectEquality(t, con.OnStep(mc), cpu.Halt)
}

func TestRunProgram(t *testing.T) {
	con := NewConsole(42)

	// with a key already pressed every pixel is drawn in that colour
	con.PushKey(0x05)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- con.Run(ctx, Program)
	}()

	var frames int
	for f := range con.Frames() {
		var lit int
		for _, p := range f {
			if p != 0x00 {
				test.ExpectEquality(t, p, uint8(0x05))
				lit++
			}
		}
		test.ExpectInequality(t, lit, 0)

		frames++
		if frames == 3 {
			cancel()
		}
	}

	test.ExpectSuccess(t, <-done)
	test.ExpectInequality(t, frames, 0)
}
