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
)

func TestLDA(t *testing.T) {
	var mc = newCPU()

	// immediate
	run(t, mc, 0xa9, 0x10, 0x00)
	expectA(t, mc, 0x10)
	expectStatus(t, mc, 0x00)

	mc = newCPU()
	run(t, mc, 0xa9, 0x00, 0x00)
	expectA(t, mc, 0x00)
	expectStatus(t, mc, 0x02)

	mc = newCPU()
	run(t, mc, 0xa9, 0x80, 0x00)
	expectA(t, mc, 0x80)
	expectStatus(t, mc, 0x80)

	// zero page of empty memory
	mc = newCPU()
	run(t, mc, 0xa5, 0x33, 0x00)
	expectA(t, mc, 0x00)
	expectStatus(t, mc, 0x02)

	mc = newCPU()
	mc.MemWrite(0x0033, 0x55)
	run(t, mc, 0xa5, 0x33, 0x00)
	expectA(t, mc, 0x55)

	// zero page,X
	mc = newCPU()
	mc.MemWrite(0x0036, 0x55)
	run(t, mc, 0xa2, 0x03, 0xb5, 0x33, 0x00)
	expectA(t, mc, 0x55)

	// zero page,X wraps within the zero page
	mc = newCPU()
	mc.MemWrite(0x0001, 0x55)
	run(t, mc, 0xa2, 0x02, 0xb5, 0xff, 0x00)
	expectA(t, mc, 0x55)

	// absolute
	mc = newCPU()
	mc.MemWrite(0x4433, 0x55)
	run(t, mc, 0xad, 0x33, 0x44, 0x00)
	expectA(t, mc, 0x55)

	// absolute,X
	mc = newCPU()
	mc.MemWrite(0x4436, 0x55)
	run(t, mc, 0xa2, 0x03, 0xbd, 0x33, 0x44, 0x00)
	expectA(t, mc, 0x55)

	// absolute,Y
	mc = newCPU()
	mc.MemWrite(0x4436, 0x55)
	run(t, mc, 0xa0, 0x03, 0xb9, 0x33, 0x44, 0x00)
	expectA(t, mc, 0x55)

	// (indirect,X)
	mc = newCPU()
	mc.MemWriteU16(0x0036, 0x0044)
	mc.MemWrite(0x0044, 0x55)
	run(t, mc, 0xa2, 0x03, 0xa1, 0x33, 0x00)
	expectA(t, mc, 0x55)

	// (indirect),Y
	mc = newCPU()
	mc.MemWrite(0x0033, 0x43)
	mc.MemWrite(0x0046, 0x55)
	run(t, mc, 0xa0, 0x03, 0xb1, 0x33, 0x00)
	expectA(t, mc, 0x55)
}

func TestLDX(t *testing.T) {
	var mc = newCPU()
	run(t, mc, 0xa2, 0x10, 0x00)
	expectX(t, mc, 0x10)
	expectStatus(t, mc, 0x00)

	mc = newCPU()
	run(t, mc, 0xa2, 0x00, 0x00)
	expectStatus(t, mc, 0x02)

	mc = newCPU()
	run(t, mc, 0xa2, 0xf0, 0x00)
	expectStatus(t, mc, 0x80)

	mc = newCPU()
	mc.MemWrite(0x0033, 0x55)
	run(t, mc, 0xa6, 0x33, 0x00)
	expectX(t, mc, 0x55)

	// zero page,Y
	mc = newCPU()
	mc.MemWrite(0x0036, 0x55)
	run(t, mc, 0xa0, 0x03, 0xb6, 0x33, 0x00)
	expectX(t, mc, 0x55)

	mc = newCPU()
	mc.MemWrite(0x4433, 0x55)
	run(t, mc, 0xae, 0x33, 0x44, 0x00)
	expectX(t, mc, 0x55)

	// absolute,Y
	mc = newCPU()
	mc.MemWrite(0x4436, 0x55)
	run(t, mc, 0xa0, 0x03, 0xbe, 0x33, 0x44, 0x00)
	expectX(t, mc, 0x55)
}

func TestLDY(t *testing.T) {
	var mc = newCPU()
	run(t, mc, 0xa0, 0x10, 0x00)
	expectY(t, mc, 0x10)
	expectStatus(t, mc, 0x00)

	mc = newCPU()
	run(t, mc, 0xa0, 0x00, 0x00)
	expectStatus(t, mc, 0x02)

	mc = newCPU()
	mc.MemWrite(0x0033, 0x55)
	run(t, mc, 0xa4, 0x33, 0x00)
	expectY(t, mc, 0x55)

	mc = newCPU()
	mc.MemWrite(0x0036, 0x55)
	run(t, mc, 0xa2, 0x03, 0xb4, 0x33, 0x00)
	expectY(t, mc, 0x55)

	mc = newCPU()
	mc.MemWrite(0x4433, 0x55)
	run(t, mc, 0xac, 0x33, 0x44, 0x00)
	expectY(t, mc, 0x55)

	mc = newCPU()
	mc.MemWrite(0x4436, 0x55)
	run(t, mc, 0xa2, 0x03, 0xbc, 0x33, 0x44, 0x00)
	expectY(t, mc, 0x55)
}

func TestTransfers(t *testing.T) {
	// TAX
	var mc = newCPU()
	run(t, mc, 0xa9, 0x01, 0xaa, 0x00)
	expectA(t, mc, 0x01)
	expectX(t, mc, 0x01)
	expectStatus(t, mc, 0x00)

	mc = newCPU()
	run(t, mc, 0xa9, 0x81, 0xaa, 0x00)
	expectX(t, mc, 0x81)
	expectStatus(t, mc, 0x80)

	// TXA
	mc = newCPU()
	run(t, mc, 0xa2, 0x33, 0x8a, 0x00)
	expectA(t, mc, 0x33)
	expectStatus(t, mc, 0x00)

	mc = newCPU()
	run(t, mc, 0xa9, 0x33, 0xa2, 0x00, 0x8a, 0x00)
	expectA(t, mc, 0x00)
	expectStatus(t, mc, 0x02)
}

func TestIncrementDecrement(t *testing.T) {
	// INX
	var mc = newCPU()
	run(t, mc, 0xa9, 0x02, 0xaa, 0xe8, 0x00)
	expectX(t, mc, 0x03)
	expectStatus(t, mc, 0x00)

	// INX wraps
	mc = newCPU()
	run(t, mc, 0xa9, 0xff, 0xaa, 0xe8, 0xe8, 0x00)
	expectX(t, mc, 0x01)
	expectStatus(t, mc, 0x00)

	mc = newCPU()
	run(t, mc, 0xa2, 0xff, 0xe8, 0x00)
	expectX(t, mc, 0x00)
	expectStatus(t, mc, 0x02)

	// DEX
	mc = newCPU()
	run(t, mc, 0xa2, 0x02, 0xca, 0x00)
	expectX(t, mc, 0x01)
	expectStatus(t, mc, 0x00)

	mc = newCPU()
	run(t, mc, 0xa2, 0x01, 0xca, 0x00)
	expectX(t, mc, 0x00)
	expectStatus(t, mc, 0x02)

	// DEX wraps
	mc = newCPU()
	run(t, mc, 0xa2, 0x00, 0xca, 0x00)
	expectX(t, mc, 0xff)
	expectStatus(t, mc, 0x80)
}

func TestStore(t *testing.T) {
	// STA zero page
	var mc = newCPU()
	run(t, mc, 0xa9, 0x55, 0x85, 0x10, 0x00)
	expectMem(t, mc, 0x0010, 0x55)

	// STA zero page,X
	mc = newCPU()
	run(t, mc, 0xa9, 0x55, 0xa2, 0x03, 0x95, 0x10, 0x00)
	expectMem(t, mc, 0x0013, 0x55)

	// STA absolute
	mc = newCPU()
	run(t, mc, 0xa9, 0x55, 0x8d, 0x33, 0x44, 0x00)
	expectMem(t, mc, 0x4433, 0x55)

	// STA absolute,X
	mc = newCPU()
	run(t, mc, 0xa9, 0x55, 0xa2, 0x03, 0x9d, 0x33, 0x44, 0x00)
	expectMem(t, mc, 0x4436, 0x55)

	// STA absolute,Y
	mc = newCPU()
	run(t, mc, 0xa9, 0x55, 0xa0, 0x03, 0x99, 0x33, 0x44, 0x00)
	expectMem(t, mc, 0x4436, 0x55)

	// STA (indirect,X)
	mc = newCPU()
	mc.MemWriteU16(0x0036, 0x4433)
	run(t, mc, 0xa9, 0x55, 0xa2, 0x03, 0x81, 0x33, 0x00)
	expectMem(t, mc, 0x4433, 0x55)

	// STA (indirect),Y
	mc = newCPU()
	mc.MemWriteU16(0x0033, 0x4430)
	run(t, mc, 0xa9, 0x55, 0xa0, 0x03, 0x91, 0x33, 0x00)
	expectMem(t, mc, 0x4433, 0x55)

	// STX
	mc = newCPU()
	run(t, mc, 0xa2, 0x55, 0x86, 0x10, 0x00)
	expectMem(t, mc, 0x0010, 0x55)

	mc = newCPU()
	run(t, mc, 0xa2, 0x55, 0xa0, 0x03, 0x96, 0x10, 0x00)
	expectMem(t, mc, 0x0013, 0x55)

	mc = newCPU()
	run(t, mc, 0xa2, 0x55, 0x8e, 0x33, 0x44, 0x00)
	expectMem(t, mc, 0x4433, 0x55)

	// STY
	mc = newCPU()
	run(t, mc, 0xa0, 0x55, 0x84, 0x10, 0x00)
	expectMem(t, mc, 0x0010, 0x55)

	mc = newCPU()
	run(t, mc, 0xa0, 0x55, 0xa2, 0x03, 0x94, 0x10, 0x00)
	expectMem(t, mc, 0x0013, 0x55)

	mc = newCPU()
	run(t, mc, 0xa0, 0x55, 0x8c, 0x33, 0x44, 0x00)
	expectMem(t, mc, 0x4433, 0x55)

	// storing does not affect the status register
	mc = newCPU()
	run(t, mc, 0xa9, 0x00, 0xa2, 0x80, 0x85, 0x10, 0x00)
	expectStatus(t, mc, 0x80)
}
