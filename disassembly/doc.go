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

// Package disassembly produces human readable listings of 6502 programs.
//
// The FromProgram() function decodes a sequence of bytes linearly, as though
// every byte following a complete instruction is the start of another
// instruction. This is suitable for the small programs the emulator is
// intended for.
//
// The FormatResult() function creates a single Entry from an
// execution.Result. This is useful for tracing the execution of a program as
// it runs.
package disassembly
