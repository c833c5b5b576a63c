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

// Package programloader is used to specify the program that is to be loaded
// into the emulated CPU.
//
// When the program is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files, data over HTTP and a small number
// of built-in programs are supported.
//
// Program data can be raw binary or a textual hex dump. The format is decided
// by the filename extension unless specified explicitly.
//
// It is preferred that the NewLoader() function is used to create a Loader:
//
//	pl := programloader.NewLoader("programs/countdown.hex", "AUTO")
//	err := pl.Load()
package programloader
