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

// Package logger is the central log for the emulator. Log entries are made
// with the package level Log() and Logf() functions, each of which takes a
// Permission argument. The Allow value can be used when an entry should
// always be made.
//
//	logger.Logf(logger.Allow, "cpu", "halted at %#04x", pc)
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The log has a maximum number of entries, older entries are
// dropped when that maximum is exceeded.
//
// Additional Logger instances can be created with NewLogger(). This is
// useful for testing.
package logger
