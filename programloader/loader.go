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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher6502/curated"
)

// List of valid formats for the Loader type.
const (
	FormatAuto    = "AUTO"
	FormatBinary  = "BIN"
	FormatHex     = "HEX"
	FormatBuiltin = "BUILTIN"
)

// FileExtensions is the list of file extensions that are recognised by the
// programloader package.
var FileExtensions = [...]string{".BIN", ".PRG", ".ROM", ".HEX", ".TXT"}

// Loader is used to specify the program to load into the CPU.
type Loader struct {
	// filename of program to load. for built-in programs this is the name of
	// the program
	Filename string

	// one of the Format constants. the AUTO format is resolved by NewLoader()
	Format string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the filename
// is used to decide the format: names of built-in programs are BUILTIN,
// files ending in ".HEX" or ".TXT" are HEX and everything else is BIN.
//
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func NewLoader(filename string, format string) Loader {
	pl := Loader{
		Filename: filename,
		Format:   FormatBinary,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		pl.Format = format
		return pl
	}

	if _, ok := builtin[filename]; ok {
		pl.Format = FormatBuiltin
		return pl
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".HEX", ".TXT":
		pl.Format = FormatHex
	}

	return pl
}

// ShortName returns a shortened version of the Loader filename.
func (pl Loader) ShortName() string {
	shortName := path.Base(pl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(pl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (pl *Loader) Load() error {
	if len(pl.Data) > 0 {
		return nil
	}

	var raw []byte

	if pl.Format == FormatBuiltin {
		b, ok := builtin[pl.Filename]
		if !ok {
			return curated.Errorf("programloader: %v", fmt.Sprintf("no built-in program named %s", pl.Filename))
		}
		raw = b.data
	} else {
		scheme := "file"

		url, err := url.Parse(pl.Filename)
		if err == nil {
			scheme = url.Scheme
		}

		switch scheme {
		case "http", "https":
			resp, err := http.Get(pl.Filename)
			if err != nil {
				return curated.Errorf("programloader: %v", err)
			}
			defer resp.Body.Close()

			raw, err = io.ReadAll(resp.Body)
			if err != nil {
				return curated.Errorf("programloader: %v", err)
			}

		case "file", "":
			raw, err = os.ReadFile(pl.Filename)
			if err != nil {
				return curated.Errorf("programloader: %v", err)
			}

		default:
			return curated.Errorf("programloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}
	}

	var data []uint8

	switch pl.Format {
	case FormatHex:
		var err error
		data, err = ParseHex(string(raw))
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}
	case FormatBinary, FormatBuiltin:
		data = raw
	default:
		return curated.Errorf("programloader: %v", fmt.Sprintf("unsupported format (%s)", pl.Format))
	}

	if len(data) == 0 {
		return curated.Errorf("programloader: %v", "program is empty")
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if pl.Hash != "" && pl.Hash != hash {
		return curated.Errorf("programloader: %v", "unexpected hash value")
	}

	pl.Hash = hash
	pl.Data = make([]uint8, len(data))
	copy(pl.Data, data)

	return nil
}
