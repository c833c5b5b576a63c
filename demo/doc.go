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

// Package demo is a tiny "console" built around the 6502 emulation. It
// provides a built-in program that paints pixels on a 32x32 screen and the
// memory mapped peripherals needed to run it:
//
//	$00FE	random byte, updated before every instruction
//	$00FF	the most recent key press
//	$0200 to $05FF	the screen, one byte per pixel, row by row
//
// The Console type implements the cpu.StepHook interface. It is the
// responsibility of a front end (see the gui packages) to display the frames
// produced by the Console and to push key presses to it.
//
// The Console runs the CPU in whichever goroutine calls Run(). Communication
// with the front end is through channels.
package demo
