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

// Package gui defines the interface between the demo console and the
// graphical front ends in the sub-packages. Front ends are created and
// serviced on the main thread.
package gui

import (
	"io"

	"github.com/jetsetilly/gopher6502/demo"
)

// Console is the part of the demo console that a front end uses.
type Console interface {
	PushKey(key uint8)
	Frames() <-chan demo.Frame
}

// GUI is implemented by the front ends.
type GUI interface {
	// cleanup resources used by the gui
	Destroy(output io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called from the main thread.
	Service()

	// Quit returns a channel that is closed when the user has asked for the
	// front end to close.
	Quit() <-chan struct{}
}
