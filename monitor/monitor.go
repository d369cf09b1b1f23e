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
	"strings"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/memory"
	"github.com/jetsetilly/gopher6510/logger"
	"github.com/jetsetilly/gopher6510/monitor/script"
	"github.com/jetsetilly/gopher6510/monitor/terminal"
	"github.com/jetsetilly/gopher6510/version"
)

// Sentinal errors returned by the monitor when a command can not be run.
const (
	UnknownCommand   = "monitor: unknown command (%s)"
	MissingArgument  = "monitor: %s: missing argument (usage: %s)"
	TooManyArguments = "monitor: %s: too many arguments (usage: %s)"
	InvalidArgument  = "monitor: %s: invalid argument (%s)"
)

// Monitor is the command line interface to the CPU.
type Monitor struct {
	mc   *cpu.CPU
	mem  *memory.Memory
	term terminal.Terminal
	scr  *script.Script

	// interrupt signals from the operating system. monitored while the RUN
	// command is executing
	intChan chan os.Signal

	running bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The CPU should be attached to the memory instance.
func NewMonitor(mc *cpu.CPU, mem *memory.Memory, term terminal.Terminal) *Monitor {
	mon := &Monitor{
		mc:      mc,
		mem:     mem,
		term:    term,
		intChan: make(chan os.Signal, 1),
	}
	mon.scr = script.NewScript(mc, mem, mon.printStyle(terminal.StyleFeedback))
	return mon
}

// Run the input loop until the QUIT command or until the terminal indicates
// that the user has finished. Errors from commands are printed to the
// terminal and do not end the loop.
func (mon *Monitor) Run() error {
	if err := mon.term.Initialise(); err != nil {
		return err
	}
	defer mon.term.CleanUp()

	mon.term.RegisterTabCompletion(newTabCompletion(commandList))

	logger.Log(logger.Allow, "monitor", "started")
	mon.printLine(terminal.StyleFeedback, "%s monitor. type HELP for a list of commands", version.String())
	mon.printCPU()

	mon.running = true
	for mon.running {
		input, err := mon.term.TermRead(terminal.NewPrompt(mon.mc.PC.Address(), mon.mc.Halted()))
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				break
			}
			return err
		}

		if err := mon.Execute(input); err != nil {
			mon.printLine(terminal.StyleError, "%s", err)
		}
	}

	logger.Log(logger.Allow, "monitor", "finished")

	return nil
}

// Execute a single line of input. Empty lines and lines beginning with # are
// ignored.
func (mon *Monitor) Execute(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	template, ok := commandTemplates[cmd]
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}
	if len(args) < template.minArgs {
		return curated.Errorf(MissingArgument, cmd, template.usage)
	}
	if template.maxArgs >= 0 && len(args) > template.maxArgs {
		return curated.Errorf(TooManyArguments, cmd, template.usage)
	}

	mon.printLine(terminal.StyleEcho, "%s", strings.Join(append([]string{cmd}, args...), " "))

	return mon.processCommand(cmd, args)
}

// Quit ends the input loop after the current command.
func (mon *Monitor) Quit() {
	mon.running = false
}

func (mon *Monitor) printLine(sty terminal.Style, s string, a ...interface{}) {
	s = fmt.Sprintf(s, a...)

	// remove all trailing newlines, and return if the resulting string is empty
	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	mon.term.TermPrintLine(sty, s)
}

// printCPU is called after every command that changes the state of the CPU
func (mon *Monitor) printCPU() {
	mon.printLine(terminal.StyleCPUState, "%s", mon.mc.String())
}

// styleWriter implements io.Writer and forwards output to the terminal
type styleWriter struct {
	mon   *Monitor
	style terminal.Style
}

func (mon *Monitor) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		mon:   mon,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.mon.printLine(wrt.style, "%s", string(p))
	return len(p), nil
}
