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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of flag.Parse(), a Modes struct is created and the
// NewArgs() function called with the command line arguments. Flags are added
// with the Add*() family of functions before Parse() is called.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	noboot := md.AddBool("noboot", false, "do not install boot fragment")
//	md.AddSubModes("MONITOR", "SCRIPT")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//	case "MONITOR":
//		...
//	}
//
// The first sub-mode in the list is the default mode. It is selected if the
// first non-flag argument does not name a sub-mode. Sub-modes are matched
// without regard to case.
//
// After a mode has been selected, NewMode() prepares the Modes struct for a
// further round of flags and sub-modes. The arguments following the mode
// are then parsed by the next call to Parse().
package modalflag
