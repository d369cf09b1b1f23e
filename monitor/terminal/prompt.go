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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and the state of the emulation the prompt
// refers to.
type Prompt struct {
	// the content. usually the current program counter
	Content string

	// whether the CPU is halted
	Halted bool
}

// NewPrompt creates a prompt for the current program counter.
func NewPrompt(pc uint16, halted bool) Prompt {
	return Prompt{
		Content: fmt.Sprintf("%04x", pc),
		Halted:  halted,
	}
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	if p.Halted {
		s.WriteString(" (halted)")
	}
	s.WriteString(" ] >> ")
	return s.String()
}
