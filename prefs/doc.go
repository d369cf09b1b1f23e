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

// Package prefs facilitates the storage of preferential values in the
// gopher6510 system. It is intended to be used by other packages to create
// persistent values.
//
// Preference values are added to a Disk instance by key. The Disk type
// handles loading and saving of all registered values.
//
//	var randomState prefs.Bool
//	dsk, _ := prefs.NewDisk("gopher6510.prefs")
//	_ = dsk.Add("cpu.randomState", &randomState)
//	_ = dsk.Load()
//
// Values can be set temporarily from the command line with
// PushCommandLineStack(). Values set this way take precedence over values
// loaded from disk until the group is popped from the stack.
package prefs
