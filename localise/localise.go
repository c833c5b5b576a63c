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

// Package localise formats text for the user's locale. Numbers in particular
// are grouped according to the conventions of the locale.
package localise

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jetsetilly/gopher6502/logger"
)

// DefaultLocale is used when the system locale cannot be determined.
const DefaultLocale = "en-US"

var printer *message.Printer
var once sync.Once

func initPrinter() {
	locales, err := locale.GetLocales()
	if err != nil {
		logger.Logf(logger.Allow, "localise", "%v", err)
	}

	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// Sprintf formats according to the system locale.
func Sprintf(format message.Reference, args ...any) string {
	once.Do(initPrinter)
	return printer.Sprintf(format, args...)
}

// ForLanguage returns a function similar to Sprintf() but for a specific
// language rather than the system locale.
func ForLanguage(tag string) (func(format message.Reference, args ...any) string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, err
	}
	p := message.NewPrinter(t)
	return p.Sprintf, nil
}
