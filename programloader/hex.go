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

package programloader

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

// ParseHex converts a textual hex dump into bytes. Values are separated by
// whitespace or commas and may be prefixed with "0x" or "$". Everything
// following a ';' or '#' on a line is a comment.
//
//	; LDA #$01; BRK
//	a9 01 00
func ParseHex(s string) ([]uint8, error) {
	var data []uint8

	for n, line := range strings.Split(s, "\n") {
		if i := strings.IndexAny(line, ";#"); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})

		for _, f := range fields {
			v := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(f), "0x"), "$")
			b, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				return nil, curated.Errorf("bad value on line %d (%s)", n+1, f)
			}
			data = append(data, uint8(b))
		}
	}

	return data, nil
}
