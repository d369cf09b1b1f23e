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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/monitor/terminal"
	"github.com/jetsetilly/gopher6510/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher6510/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &strings.Builder{}
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\nreset\nhalt"), out)
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	prompt := terminal.NewPrompt(0xfce2, false)
	for _, expected := range []string{"step", "reset", "halt"} {
		s, err := pt.TermRead(prompt)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	_, err := pt.TermRead(prompt)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	// prompt is not written for non-interactive input
	test.ExpectEquality(t, out.String(), "")
}

func TestPlainTerminalOutput(t *testing.T) {
	out := &strings.Builder{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), out)
	test.DemandSuccess(t, pt.Initialise())

	pt.TermPrintLine(terminal.StyleFeedback, "feedback")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	pt.TermPrintLine(terminal.StyleError, "error")

	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "silenced")
	pt.TermPrintLine(terminal.StyleError, "loud")

	test.ExpectEquality(t, out.String(), "feedback\n* error\n* loud\n")
}

func TestPrompt(t *testing.T) {
	test.ExpectEquality(t, terminal.NewPrompt(0xfce2, false).String(), "[ fce2 ] >> ")
	test.ExpectEquality(t, terminal.NewPrompt(0x0002, true).String(), "[ 0002 (halted) ] >> ")
}
