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

// Package version reports the version of the application. A version number
// can be set at link time with:
//
//	-ldflags "-X github.com/jetsetilly/gopher6502/version.number=v0.1.0"
//
// Otherwise the version is derived from the VCS information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher6502"

// set by the linker with -X
var number string

// the vcs revision, suffixed with "+dirty" if the source tree had been
// modified
var revision string

// "unreleased" if no version number was set at link time. "local" if there
// is also no vcs information (eg. "go run .")
var version string

// the version of Go used to build the binary
var goVersion string

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Summary returns a single line describing the application and its version.
func Summary() string {
	_, _, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s) built with %s", ApplicationName, version, revision, goVersion)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	goVersion = "unknown Go version"

	info, ok := debug.ReadBuildInfo()
	if ok {
		if info.GoVersion != "" {
			goVersion = info.GoVersion
		}
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
