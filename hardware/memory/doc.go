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

// Package memory implements the flat 64KiB address space of the 6502. There is
// no memory mapping and no mirroring. Every address is plain RAM and reads or
// writes have no side effects.
//
// Host programs use the memory as a side channel for simulated peripherals.
// For example, writing a value to a fixed address for the program to read as
// input, or reading a region of memory as a framebuffer.
package memory
