// This file is part of Gopher6510.
//
// Gopher6510 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6510 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6510.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application. The version
// number is set at link time; the revision is taken from the build
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher6510"

// number is set by the linker for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher6510/version.number=v0.1.0"
var number string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// If the version string is "unreleased" then the project has been built from
// a repository without a version number. If the version string is "local"
// then there is no version number and no vcs information. This can happen
// when running with "go run ."
func Version() (string, string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionString(number, false), "no revision information", number != ""
	}
	return fromSettings(number, info.Settings)
}

func fromSettings(number string, settings []debug.BuildSetting) (string, string, bool) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	for _, v := range settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	revision := "no revision information"
	if vcsRevision != "" {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	return versionString(number, vcs), revision, number != ""
}

func versionString(number string, vcs bool) string {
	if number != "" {
		return number
	}
	if vcs {
		return "unreleased"
	}
	return "local"
}

// String returns the application name and version in a single line.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
