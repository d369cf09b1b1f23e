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

package colorterm_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/monitor/terminal/colorterm"
	"github.com/jetsetilly/gopher6510/test"
)

func TestShortcuts(t *testing.T) {
	test.ExpectEquality(t, len(colorterm.Shortcuts), 3)
	test.ExpectEquality(t, colorterm.Shortcuts['S'], "STEP")
	test.ExpectEquality(t, colorterm.Shortcuts['R'], "RESET")
	test.ExpectEquality(t, colorterm.Shortcuts['H'], "HALT")

	// lower case letters are not shortcuts so that commands can be typed
	_, ok := colorterm.Shortcuts['s']
	test.ExpectFailure(t, ok)
}
