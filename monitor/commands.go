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
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/disassembly"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6510/logger"
	"github.com/jetsetilly/gopher6510/monitor/terminal"
	"github.com/jetsetilly/gopher6510/monitor/terminal/colorterm"
)

// number of log entries printed by the LOG command if no number is given
const defaultLogTail = 10

// number of instructions printed by the DISASM command if no count is given
const defaultDisasmCount = 10

// number of bytes printed per line by the PEEK command
const peekLineLength = 16

func (mon *Monitor) processCommand(cmd string, args []string) error {
	switch cmd {
	case cmdQuit:
		mon.Quit()

	case cmdHelp:
		return mon.help(args)

	case cmdReset:
		mon.mc.Reset()
		mon.printCPU()

	case cmdStep:
		n := uint64(1)
		if len(args) > 0 {
			var err error
			n, err = strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return curated.Errorf(InvalidArgument, cmd, args[0])
			}
		}
		return mon.step(n)

	case cmdRun:
		var limit uint64
		if len(args) > 0 {
			var err error
			limit, err = strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return curated.Errorf(InvalidArgument, cmd, args[0])
			}
		}
		return mon.run(limit)

	case cmdHalt:
		mon.mc.HaltResume()
		if mon.mc.Halted() {
			mon.printLine(terminal.StyleFeedback, "CPU halted")
		} else {
			mon.printLine(terminal.StyleFeedback, "CPU resumed")
		}
		mon.printCPU()

	case cmdIRQ:
		if !mon.mc.IRQ() {
			mon.printLine(terminal.StyleFeedback, "IRQ not taken (interrupt disable flag is set)")
			return nil
		}
		mon.printLine(terminal.StyleInstruction, "%s", mon.mc.LastResult.String())
		mon.printCPU()

	case cmdNMI:
		mon.mc.NMI()
		mon.printLine(terminal.StyleInstruction, "%s", mon.mc.LastResult.String())
		mon.printCPU()

	case cmdCPU:
		mon.printCPU()

	case cmdLast:
		if !mon.mc.LastResult.Final {
			mon.printLine(terminal.StyleFeedback, "no instruction has been executed")
			return nil
		}
		mon.printLine(terminal.StyleInstruction, "%s", mon.mc.LastResult.String())

	case cmdDisasm:
		address := mon.mc.PC.Address()
		count := uint64(defaultDisasmCount)
		if len(args) > 0 {
			var err error
			address, err = parseAddress(args[0])
			if err != nil {
				return curated.Errorf(InvalidArgument, cmd, args[0])
			}
		}
		if len(args) > 1 {
			var err error
			count, err = strconv.ParseUint(args[1], 0, 16)
			if err != nil || count == 0 {
				return curated.Errorf(InvalidArgument, cmd, args[1])
			}
		}
		for _, e := range disassembly.Disassemble(mon.mem, address, int(count)) {
			mon.printLine(terminal.StyleFeedback, "%s", e.String())
		}

	case cmdPeek:
		address, err := parseAddress(args[0])
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd, args[0])
		}
		count := uint64(1)
		if len(args) > 1 {
			count, err = strconv.ParseUint(args[1], 0, 17)
			if err != nil || count == 0 || count > 0x10000 {
				return curated.Errorf(InvalidArgument, cmd, args[1])
			}
		}
		mon.peek(address, int(count))

	case cmdPoke:
		address, err := parseAddress(args[0])
		if err != nil {
			return curated.Errorf(InvalidArgument, cmd, args[0])
		}

		// parse all values before writing any of them
		values := make([]uint8, 0, len(args)-1)
		for _, a := range args[1:] {
			v, err := parseNumber(a, 8)
			if err != nil {
				return curated.Errorf(InvalidArgument, cmd, a)
			}
			values = append(values, uint8(v))
		}

		mon.mem.Load(address, values)
		mon.peek(address, len(values))

	case cmdVectors:
		nmi := uint16(mon.mem.Peek(cpubus.NMI+1))<<8 | uint16(mon.mem.Peek(cpubus.NMI))
		mon.printLine(terminal.StyleFeedback, "NMI:     $%04x", nmi)
		mon.printLine(terminal.StyleFeedback, "RESET:   $%04x", mon.mem.ResetVector())
		mon.printLine(terminal.StyleFeedback, "IRQ/BRK: $%04x", mon.mem.InterruptVector())

	case cmdLog:
		n := defaultLogTail
		if len(args) > 0 {
			if strings.ToUpper(args[0]) == "CLEAR" {
				logger.Clear()
				return nil
			}
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 0 {
				return curated.Errorf(InvalidArgument, cmd, args[0])
			}
			n = v
		}
		logger.Tail(mon.printStyle(terminal.StyleLog), n)

	case cmdMemviz:
		if err := mon.memviz(args[0]); err != nil {
			return err
		}
		mon.printLine(terminal.StyleFeedback, "CPU state written to %s", args[0])

	case cmdScript:
		err := mon.scr.RunFile(args[0])
		mon.printCPU()
		return err

	case cmdPref:
		return mon.pref(args)
	}

	return nil
}

func (mon *Monitor) help(args []string) error {
	if len(args) == 0 {
		mon.printLine(terminal.StyleHelp, "%s", strings.Join(commandList, " "))
		mon.printLine(terminal.StyleHelp, "on an empty line in the color terminal:")
		for _, k := range []rune{'S', 'R', 'H'} {
			mon.printLine(terminal.StyleHelp, "  SHIFT+%c  %s", k, colorterm.Shortcuts[k])
		}
		return nil
	}

	cmd := strings.ToUpper(args[0])
	template, ok := commandTemplates[cmd]
	if !ok {
		return curated.Errorf(UnknownCommand, args[0])
	}
	mon.printLine(terminal.StyleHelp, "%s", template.usage)
	mon.printLine(terminal.StyleHelp, "%s", helps[cmd])

	return nil
}

func (mon *Monitor) step(n uint64) error {
	if mon.mc.Halted() {
		mon.printLine(terminal.StyleFeedback, "CPU is halted")
		return nil
	}

	signal.Notify(mon.intChan, os.Interrupt)
	defer signal.Stop(mon.intChan)

	for range n {
		select {
		case <-mon.intChan:
			mon.printLine(terminal.StyleFeedback, "interrupted")
			mon.printCPU()
			return nil
		default:
		}

		_, err := mon.mc.Step()
		mon.printLine(terminal.StyleInstruction, "%s", mon.mc.LastResult.String())
		if err != nil {
			mon.printCPU()
			return err
		}
	}

	mon.printCPU()

	return nil
}

// run instructions until the CPU halts, an error occurs or the limit is
// reached. a limit of zero means there is no limit
func (mon *Monitor) run(limit uint64) error {
	if mon.mc.Halted() {
		mon.printLine(terminal.StyleFeedback, "CPU is halted")
		return nil
	}

	signal.Notify(mon.intChan, os.Interrupt)
	defer signal.Stop(mon.intChan)

	var instructions uint64
	var cycles int
	var err error

	done := false
	for !done && !mon.mc.Halted() {
		select {
		case <-mon.intChan:
			mon.printLine(terminal.StyleFeedback, "interrupted")
			done = true
			continue
		default:
		}

		var c int
		c, err = mon.mc.Step()
		if err != nil {
			mon.printLine(terminal.StyleInstruction, "%s", mon.mc.LastResult.String())
			break
		}

		instructions++
		cycles += c
		done = limit > 0 && instructions >= limit
	}

	mon.printLine(terminal.StyleFeedback, "%d instructions (%d cycles)", instructions, cycles)
	mon.printCPU()

	return err
}

func (mon *Monitor) peek(address uint16, count int) {
	s := strings.Builder{}
	for i := range count {
		a := address + uint16(i)
		if i%peekLineLength == 0 {
			if i > 0 {
				mon.printLine(terminal.StyleFeedback, "%s", s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mon.mem.Peek(a)))
	}
	mon.printLine(terminal.StyleFeedback, "%s", s.String())
}

func (mon *Monitor) pref(args []string) error {
	switch len(args) {
	case 0:
		mon.printLine(terminal.StyleFeedback, "%s", mon.mc.Prefs.String())

	case 1:
		if strings.ToUpper(args[0]) == "SAVE" {
			return mon.mc.Prefs.Save()
		}
		v, ok := mon.mc.Prefs.Get(args[0])
		if !ok {
			return curated.Errorf(InvalidArgument, cmdPref, args[0])
		}
		mon.printLine(terminal.StyleFeedback, "%s :: %s", args[0], v)

	case 2:
		if _, ok := mon.mc.Prefs.Get(args[0]); !ok {
			return curated.Errorf(InvalidArgument, cmdPref, args[0])
		}
		if err := mon.mc.Prefs.Set(args[0], args[1]); err != nil {
			return err
		}
		v, _ := mon.mc.Prefs.Get(args[0])
		mon.printLine(terminal.StyleFeedback, "%s :: %s", args[0], v)
	}

	return nil
}

// parseNumber parses decimal numbers and hexadecimal numbers prefixed with $
// or 0x
func parseNumber(s string, bits int) (uint64, error) {
	s = strings.ToLower(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	return strconv.ParseUint(s, 0, bits)
}

func parseAddress(s string) (uint16, error) {
	v, err := parseNumber(s, 16)
	return uint16(v), err
}
