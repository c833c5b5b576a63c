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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestIsValid(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	defn, err := instructions.Lookup(0xbd) // LDA abs,X
	test.DemandSuccess(t, err)

	r.Defn = defn
	r.Address = 0x8000
	r.ByteCount = 3
	r.InstructionData = 0x10ff
	r.Cycles = 4
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	// page fault requires an extra cycle
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())

	// short decode
	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())
}

func TestBranchValidity(t *testing.T) {
	defn, err := instructions.Lookup(0xd0) // BNE
	test.DemandSuccess(t, err)

	r := execution.Result{
		Defn:      defn,
		ByteCount: 2,
		Final:     true,
	}
	for c := 2; c <= 4; c++ {
		r.Cycles = c
		test.ExpectSuccess(t, r.IsValid(), c)
	}
	r.Cycles = 5
	test.ExpectFailure(t, r.IsValid())
}

func TestResultString(t *testing.T) {
	defn, err := instructions.Lookup(0xa9) // LDA #
	test.DemandSuccess(t, err)

	r := execution.Result{
		Address:         0x8000,
		Defn:            defn,
		ByteCount:       2,
		InstructionData: 0x05,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0x8000 LDA 05 [2]")

	r.Reset()
	test.ExpectEquality(t, r.Final, false)
	test.ExpectEquality(t, r.String(), "0x0000 ???")
}
