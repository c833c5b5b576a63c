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

// Package modalflag wraps the flag package from the standard library. It adds
// program modes to command line handling, with a different set of flags for
// each mode.
//
// Arguments are given to NewArgs() and then parsed, one layer at a time, with
// Parse(). Modes are listed with AddSubModes(); the first in the list is the
// default. After a successful Parse() the selected mode is returned by Mode():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "print every instruction")
//		...
//	}
//
// Mode comparisons are case insensitive. Mode names are always reported in
// upper case.
//
// Flags that must take one of a small number of values are added with
// AddChoice(). The value is checked by Parse() and a ParseError returned if it
// is not one of the listed choices.
package modalflag
