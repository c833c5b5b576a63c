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

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Disassembly is a linear listing of a program.
type Disassembly struct {
	Origin  uint16
	Entries []*Entry
}

// FromProgram decodes the program as though it were located at origin.
// Bytes that do not decode to a supported instruction are listed with an
// operator of "???".
func FromProgram(program []uint8, origin uint16) *Disassembly {
	dsm := &Disassembly{
		Origin: origin,
	}

	for i := 0; i < len(program); {
		var r execution.Result
		r.Address = origin + uint16(i)
		r.ByteCount = 1

		defn, err := instructions.Lookup(program[i])
		if err != nil {
			e := FormatResult(r)
			e.Bytecode = fmt.Sprintf("%02x", program[i])
			dsm.Entries = append(dsm.Entries, e)
			i++
			continue
		}
		r.Defn = defn

		// the program may end part way through an instruction
		for r.ByteCount < defn.Bytes && i+r.ByteCount < len(program) {
			r.InstructionData |= uint16(program[i+r.ByteCount]) << (8 * (r.ByteCount - 1))
			r.ByteCount++
		}

		dsm.Entries = append(dsm.Entries, FormatResult(r))
		i += r.ByteCount
	}

	return dsm
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		err := WriteLine(output, attr, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single Entry to io.Writer.
func WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	var s string

	if attr.ByteCode {
		s = fmt.Sprintf("%-8s  ", e.Bytecode)
	}

	s = fmt.Sprintf("%s%s  %s", s, e.Address, e.Operator)
	if e.Operand != "" {
		s = fmt.Sprintf("%s %s", s, e.Operand)
	}

	if attr.Cycles && e.Result.Defn != nil {
		cycles := e.Result.Defn.Cycles
		if e.Result.Final {
			cycles = e.Result.Cycles
		}
		s = fmt.Sprintf("%-28s[%d]", s, cycles)
	}

	_, err := io.WriteString(output, s+"\n")
	return err
}
