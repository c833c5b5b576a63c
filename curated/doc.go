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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and the values for that
// pattern.
//
// The pattern is retained by the error and is used to identify it. The Is()
// function checks whether an error was created with a specific pattern:
//
//	e := curated.Errorf("cpu: unsupported opcode %#02x", 0xff)
//
//	if curated.Is(e, "cpu: unsupported opcode %#02x") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the chain of curated errors:
//
//	f := curated.Errorf("run: %v", e)
//	curated.Has(f, "cpu: unsupported opcode %#02x") // true
//	curated.Is(f, "cpu: unsupported opcode %#02x")  // false
//
// IsAny() answers whether the error was created by Errorf() at all. We can
// think of curated errors as 'expected' errors and uncurated errors as
// 'unexpected'.
//
// The Error() implementation normalises the message so that adjacent parts of
// the chain are not duplicated. For example, wrapping "cpu: halted" with the
// pattern "cpu: %v" produces the message "cpu: halted" and not "cpu: cpu:
// halted".
package curated
