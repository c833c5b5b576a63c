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

// Package statsview runs a local HTTP server showing runtime statistics of
// the emulator process. The graphs are provided by
// github.com/go-echarts/statsview.
//
// After launch, graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof pages at:
//
//	localhost:12600/debug/pprof/
package statsview

import (
	"fmt"
	"io"
	"net"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/logger"
)

// DefaultAddress is the address used when Launch() is given an empty string.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// sentinal errors.
const (
	AddressUnavailable = "statsview: address %s is unavailable: %v"
)

// Launch the statsview server in a new goroutine. The address is checked
// before launch and an error returned if it cannot be used.
func Launch(output io.Writer, address string) error {
	if address == "" {
		address = DefaultAddress
	}

	// statsview gives no indication of failure so we check that the address
	// can be listened on first
	l, err := net.Listen("tcp", address)
	if err != nil {
		return curated.Errorf(AddressUnavailable, address, err)
	}
	l.Close()

	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "launched at %s%s", address, url)
	if output != nil {
		fmt.Fprintf(output, "stats server available at http://%s%s\n", address, url)
	}

	return nil
}
