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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of time within the emulation. The demo.Console type
// counts instructions and satisfies this interface.
type Clock interface {
	Ticks() int
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// seed used instead of the random base seed when ZeroSeed is true
	seed int64

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// NewSeededRandom returns a Random instance that produces a predictable
// sequence for the given seed.
func NewSeededRandom(clock Clock, seed int64) *Random {
	return &Random{
		clock:    clock,
		seed:     seed,
		ZeroSeed: true,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.clock != nil {
		t = int64(rnd.clock.Ticks())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.seed + t))
	}
	return rand.New(rand.NewSource(baseSeed + t))
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Byte returns a random byte value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().Intn(256))
}
