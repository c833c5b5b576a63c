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

// Package addresses contains the fixed addresses in the 6502 address space
// that the emulation relies on.
package addresses

// Reset is the address where the reset address is stored. The two bytes at
// Reset and Reset+1 are read by cpu.Reset() and written by cpu.Load().
const Reset = uint16(0xfffc)

// Origin is the address at which programs are loaded.
const Origin = uint16(0x8000)

// Stack is the base address of the stack page. The stack pointer is an
// offset into this page.
const Stack = uint16(0x0100)

// StackTop is the initial value of the stack pointer after a reset.
const StackTop = uint8(0xff)
