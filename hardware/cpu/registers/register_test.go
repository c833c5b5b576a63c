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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")
	test.ExpectEquality(t, r.Label(), "A")
	test.ExpectSuccess(t, r.IsZero())
	test.ExpectFailure(t, r.IsNegative())

	r.Load(0x7f)
	test.ExpectEquality(t, r.String(), "0x7f")
	test.ExpectEquality(t, r.Address(), uint16(0x007f))

	// addition without wrap
	test.ExpectFailure(t, r.Add(0x01))
	test.ExpectEquality(t, r.Value(), uint8(0x80))
	test.ExpectSuccess(t, r.IsNegative())

	// addition with wrap
	r.Load(0xff)
	test.ExpectSuccess(t, r.Add(0x02))
	test.ExpectEquality(t, r.Value(), uint8(0x01))

	// subtraction with and without wrap
	r.Load(0x22)
	test.ExpectFailure(t, r.Subtract(0x11))
	test.ExpectEquality(t, r.Value(), uint8(0x11))
	r.Load(0x01)
	test.ExpectSuccess(t, r.Subtract(0x02))
	test.ExpectEquality(t, r.Value(), uint8(0xff))

	// subtracting the same value is not a wrap
	r.Load(0x11)
	test.ExpectFailure(t, r.Subtract(0x11))
	test.ExpectSuccess(t, r.IsZero())
}

func TestBitwise(t *testing.T) {
	r := registers.NewRegister(0x22, "A")
	r.AND(0x03)
	test.ExpectEquality(t, r.Value(), uint8(0x02))

	r.Load(0x81)
	test.ExpectSuccess(t, r.ASL())
	test.ExpectEquality(t, r.Value(), uint8(0x02))

	r.Load(0x22)
	test.ExpectFailure(t, r.ASL())
	test.ExpectEquality(t, r.Value(), uint8(0x44))
}
