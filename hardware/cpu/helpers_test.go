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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/test"
)

// newCPU returns a CPU that does not log.
func newCPU() *cpu.CPU {
	mc := cpu.NewCPU()
	mc.Quiet = true
	return mc
}

// run the program on the CPU. the program must terminate with BRK.
func run(t *testing.T, mc *cpu.CPU, program ...uint8) {
	t.Helper()
	test.DemandSuccess(t, mc.LoadAndRun(program))
	test.ExpectSuccess(t, mc.Halted)
}

func expectStatus(t *testing.T, mc *cpu.CPU, status uint8, tags ...any) {
	t.Helper()
	test.ExpectEquality(t, mc.Status.Value(), status, tags...)
}

func expectA(t *testing.T, mc *cpu.CPU, value uint8, tags ...any) {
	t.Helper()
	test.ExpectEquality(t, mc.A.Value(), value, tags...)
}

func expectX(t *testing.T, mc *cpu.CPU, value uint8, tags ...any) {
	t.Helper()
	test.ExpectEquality(t, mc.X.Value(), value, tags...)
}

func expectY(t *testing.T, mc *cpu.CPU, value uint8, tags ...any) {
	t.Helper()
	test.ExpectEquality(t, mc.Y.Value(), value, tags...)
}

func expectMem(t *testing.T, mc *cpu.CPU, address uint16, value uint8, tags ...any) {
	t.Helper()
	test.ExpectEquality(t, mc.MemRead(address), value, tags...)
}
