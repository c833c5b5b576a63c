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

// Package registers implements the three types of register found in the 6502:
// the 8-bit general purpose Register (used for the accumulator, the index
// registers and the stack pointer), the 16-bit ProgramCounter and the
// StatusRegister.
//
// Register arithmetic never touches the status register. It is up to the CPU
// to transfer the results to the status flags. For example:
//
//	a.Load(10)
//	carry := a.Add(246)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// In this case the zero flag will be true and the sign flag false.
package registers
