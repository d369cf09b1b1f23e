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

// Package paths contains functions to prepare paths to gopher6510 resources.
//
// The ResourcePath() function returns the supplied resource string with the
// appropriate config directory prepended. For example, the following will
// return the path to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// In development builds the config directory is ".gopher6510" in the current
// working directory. When built with the "release" tag the user's config
// directory, as returned by os.UserConfigDir(), is used instead.
//
// In both cases the directory (and any sub-directory) is created if it does
// not already exist.
package paths
