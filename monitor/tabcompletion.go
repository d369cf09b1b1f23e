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

package monitor

import (
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface. Only the
// command keyword is completed. Repeated calls to Complete() without an
// intervening Reset() cycle through the matching keywords.
type tabCompletion struct {
	commands []string

	matches []string
	match   int
}

func newTabCompletion(commands []string) *tabCompletion {
	return &tabCompletion{
		commands: commands,
	}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	if tc.matches == nil {
		input = strings.TrimLeft(input, " ")

		// arguments are not completed
		if strings.Contains(input, " ") {
			return input
		}

		prefix := strings.ToUpper(input)
		tc.matches = make([]string, 0, len(tc.commands))
		for _, c := range tc.commands {
			if strings.HasPrefix(c, prefix) {
				tc.matches = append(tc.matches, c)
			}
		}
		tc.match = -1
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.match = (tc.match + 1) % len(tc.matches)
	return tc.matches[tc.match] + " "
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = nil
}
