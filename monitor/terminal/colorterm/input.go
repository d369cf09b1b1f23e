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

//go:build !windows

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/monitor/terminal"
	"github.com/jetsetilly/gopher6510/monitor/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher6510/monitor/terminal/colorterm/easyterm/ansi"
)

const maxInput = 255

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	input := make([]byte, maxInput)
	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	buffInput := make([]byte, maxInput)
	buffN := 0

	p := prompt.String()
	if prompt.Halted {
		p = ansi.DimPens["red"] + p + ansi.NormalPen
	} else {
		p = ansi.PenStyles["bold"] + p + ansi.NormalPen
	}

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	ct.TermPrintf("\r%s", ansi.CursorMove(len(prompt.String())))

	for {
		ct.TermPrint(ansi.CursorStore)
		ct.TermPrintf("%s\r%s%s", ansi.ClearLine, p, string(input[:n]))
		ct.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		// shortcut keys only work with an empty input line
		if n == 0 {
			if cmd, ok := Shortcuts[r]; ok {
				ct.TermPrintf("%s\r\n", cmd)
				return cmd, nil
			}
		}

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor
				if n+d > maxInput {
					break
				}

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, []byte(s))

				// advance character to end of completed word
				ct.TermPrint(ansi.CursorMove(d))
				cursor += d

				// note new used-length of input array
				n += d
			}

		case easyterm.KeyInterrupt:
			ct.TermPrint("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if n == 0 {
				ct.TermPrint("\r\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			_ = easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			ct.addHistory(input[:n])
			ct.TermPrint("\r\n")
			return string(input[:n]), nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				break
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				// move up through command history
				if len(ct.commandHistory) > 0 {
					// if we're at the end of the command history then store
					// the current input in buffInput for possible later editing
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}

					if history > 0 {
						history--
						copy(input, ct.commandHistory[history].input)
						n = len(ct.commandHistory[history].input)
						ct.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorDown:
				// move down through command history
				if history < len(ct.commandHistory)-1 {
					history++
					copy(input, ct.commandHistory[history].input)
					n = len(ct.commandHistory[history].input)
					ct.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				} else if history == len(ct.commandHistory)-1 {
					history++
					copy(input, buffInput[:buffN])
					n = buffN
					ct.TermPrint(ansi.CursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					ct.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}

			case easyterm.EscDelete:
				// the delete sequence is terminated with a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
					history = len(ct.commandHistory)
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				ct.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				m := utf8.EncodeRune(er, r)
				if n+m > maxInput {
					break
				}
				ct.TermPrint(ansi.CursorForwardOne)
				copy(input[cursor+m:], input[cursor:n])
				copy(input[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}

// add input to the command history unless it is the same as the most recent
// entry
func (ct *ColorTerminal) addHistory(input []byte) {
	if len(input) == 0 {
		return
	}

	if len(ct.commandHistory) > 0 {
		last := ct.commandHistory[len(ct.commandHistory)-1].input
		if string(last) == string(input) {
			return
		}
	}

	nh := make([]byte, len(input))
	copy(nh, input)
	ct.commandHistory = append(ct.commandHistory, command{input: nh})
}
