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

package colorterm

// Shortcuts maps keys to the commands they issue when pressed at the start of
// an empty input line. The command is issued immediately, without the user
// pressing return.
//
// Commands are not case sensitive so the user can still type these commands
// with lower case letters.
var Shortcuts = map[rune]string{
	'S': "STEP",
	'R': "RESET",
	'H': "HALT",
}
