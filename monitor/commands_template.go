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

// monitor keywords
const (
	cmdReset = "RESET"
	cmdQuit  = "QUIT"

	cmdStep = "STEP"
	cmdRun  = "RUN"
	cmdHalt = "HALT"
	cmdIRQ  = "IRQ"
	cmdNMI  = "NMI"

	cmdCPU     = "CPU"
	cmdLast    = "LAST"
	cmdDisasm  = "DISASM"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdVectors = "VECTORS"

	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdScript = "SCRIPT"
	cmdPref   = "PREF"
	cmdHelp   = "HELP"
)

type commandTemplate struct {
	usage   string
	minArgs int

	// a value of -1 means there is no limit to the number of arguments
	maxArgs int
}

// commandList is the order in which commands are listed by HELP
var commandList = []string{
	cmdStep, cmdRun, cmdReset, cmdHalt, cmdIRQ, cmdNMI,
	cmdCPU, cmdLast, cmdDisasm, cmdPeek, cmdPoke, cmdVectors,
	cmdLog, cmdMemviz, cmdScript, cmdPref,
	cmdHelp, cmdQuit,
}

var commandTemplates = map[string]commandTemplate{
	cmdStep:    {usage: "STEP [n]", maxArgs: 1},
	cmdRun:     {usage: "RUN [limit]", maxArgs: 1},
	cmdReset:   {usage: "RESET"},
	cmdHalt:    {usage: "HALT"},
	cmdIRQ:     {usage: "IRQ"},
	cmdNMI:     {usage: "NMI"},
	cmdCPU:     {usage: "CPU"},
	cmdLast:    {usage: "LAST"},
	cmdDisasm:  {usage: "DISASM [address [count]]", maxArgs: 2},
	cmdPeek:    {usage: "PEEK <address> [count]", minArgs: 1, maxArgs: 2},
	cmdPoke:    {usage: "POKE <address> <value> [value...]", minArgs: 2, maxArgs: -1},
	cmdVectors: {usage: "VECTORS"},
	cmdLog:     {usage: "LOG [n|CLEAR]", maxArgs: 1},
	cmdMemviz:  {usage: "MEMVIZ <file>", minArgs: 1, maxArgs: 1},
	cmdScript:  {usage: "SCRIPT <file>", minArgs: 1, maxArgs: 1},
	cmdPref:    {usage: "PREF [SAVE|<key> [value]]", maxArgs: 2},
	cmdHelp:    {usage: "HELP [command]", maxArgs: 1},
	cmdQuit:    {usage: "QUIT"},
}
