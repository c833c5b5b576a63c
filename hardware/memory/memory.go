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

package memory

import (
	"github.com/jetsetilly/gopher6502/curated"
)

// Size of the address space.
const Size = 0x10000

// sentinal errors.
const (
	LoadOverflow = "memory: %d bytes at %#04x overflows address space"
)

// RAM is the 6502 address space. Addresses are 16-bit and so can never be
// out of range.
type RAM struct {
	data [Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. All
// bytes are zero.
func NewRAM() *RAM {
	return &RAM{}
}

// Read returns the byte at address.
func (mem *RAM) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write value to address.
func (mem *RAM) Write(address uint16, value uint8) {
	mem.data[address] = value
}

// Read16 returns the little-endian word at address. The high byte is read
// from address+1, wrapping at the end of the address space.
func (mem *RAM) Read16(address uint16) uint16 {
	lo := uint16(mem.data[address])
	hi := uint16(mem.data[address+1])
	return hi<<8 | lo
}

// Write16 writes a little-endian word to address and address+1.
func (mem *RAM) Write16(address uint16, value uint16) {
	mem.data[address] = uint8(value)
	mem.data[address+1] = uint8(value >> 8)
}

// Load copies data into memory starting at origin. It is an error for the
// data to extend beyond the end of the address space. Nothing is written in
// that case.
func (mem *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf(LoadOverflow, len(data), origin)
	}
	copy(mem.data[origin:], data)
	return nil
}

// Slice returns a copy of the memory from address for length bytes. The copy
// wraps at the end of the address space.
func (mem *RAM) Slice(address uint16, length int) []uint8 {
	s := make([]uint8, length)
	for i := range s {
		s[i] = mem.data[address]
		address++
	}
	return s
}

// Clear sets all bytes in memory to zero.
func (mem *RAM) Clear() {
	mem.data = [Size]uint8{}
}
