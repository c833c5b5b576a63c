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

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/performance/limiter"
	"github.com/jetsetilly/gopher6502/random"
)

// the number of keys that can be queued before key presses are dropped.
const keyQueueLen = 16

// Console connects the CPU to the peripherals. It implements the cpu.StepHook
// interface.
type Console struct {
	ctx context.Context

	rnd *random.Random
	lim *limiter.Limiter

	keys   chan uint8
	frames chan Frame

	// copy of the screen as last sent to the front end
	screen Frame

	// the number of instructions executed. used as the clock for the random
	// number generator
	ticks int
}

// NewConsole is the preferred method of initialisation for the Console type.
// If seed is not zero then the sequence of random numbers will be the same
// every time.
func NewConsole(seed int64) *Console {
	con := &Console{
		keys:   make(chan uint8, keyQueueLen),
		frames: make(chan Frame, 1),
	}

	if seed == 0 {
		con.rnd = random.NewRandom(con)
	} else {
		con.rnd = random.NewSeededRandom(con, seed)
	}

	return con
}

// Ticks implements the random.Clock interface.
func (con *Console) Ticks() int {
	return con.ticks
}

// SetLimiter sets the limiter used to throttle execution. A nil limiter means
// the CPU runs as fast as possible.
func (con *Console) SetLimiter(lim *limiter.Limiter) {
	con.lim = lim
}

// PushKey queues a key press for the program. Safe to call from any
// goroutine. The key is dropped if the queue is full.
func (con *Console) PushKey(key uint8) {
	select {
	case con.keys <- key:
	default:
	}
}

// Frames returns the channel on which new frames are sent. A frame is sent
// only when the screen has changed. If the front end is slow then
// intermediate frames are dropped.
func (con *Console) Frames() <-chan Frame {
	return con.frames
}

// OnStep implements the cpu.StepHook interface.
func (con *Console) OnStep(mc *cpu.CPU) cpu.StepResult {
	if con.ctx != nil {
		select {
		case <-con.ctx.Done():
			return cpu.Halt
		default:
		}
	}

	if con.lim != nil {
		con.lim.Wait()
	}

	con.ticks++

	select {
	case k := <-con.keys:
		mc.MemWrite(KeyAddress, k)
	default:
	}

	mc.MemWrite(RandomAddress, con.rnd.Byte())

	con.checkScreen(mc)

	return cpu.Continue
}

// checkScreen sends a new frame if the screen memory has changed.
func (con *Console) checkScreen(mc *cpu.CPU) {
	var changed bool
	for i := range con.screen {
		v := mc.MemRead(ScreenOrigin + uint16(i))
		if v != con.screen[i] {
			con.screen[i] = v
			changed = true
		}
	}

	if !changed {
		return
	}

	// replace any frame that has not yet been collected
	select {
	case <-con.frames:
	default:
	}
	con.frames <- con.screen
}

// Run the program on a new CPU until the context is cancelled or the program
// ends. The frames channel is closed when Run() returns.
func (con *Console) Run(ctx context.Context, program []uint8) error {
	defer close(con.frames)

	con.ctx = ctx

	mc := cpu.NewCPU()
	err := mc.Load(program)
	if err != nil {
		return err
	}
	mc.Reset()

	logger.Logf(logger.Allow, "demo", "running %d byte program", len(program))

	err = mc.Run(con)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "demo", "stopped after %d instructions", mc.Instructions)

	return nil
}
