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

var helps = map[string]string{
	cmdStep:    "Execute the next instruction, or the next n instructions. The result of each instruction is printed",
	cmdRun:     "Execute instructions until the CPU halts, an error occurs or the limit is reached. CTRL-C stops execution",
	cmdReset:   "Reset the CPU. The PC is loaded from the reset vector",
	cmdHalt:    "Halt the CPU or resume a halted CPU. A halted CPU does not execute instructions",
	cmdIRQ:     "Request a maskable interrupt. Not taken if the interrupt disable flag is set",
	cmdNMI:     "Request a non-maskable interrupt",
	cmdCPU:     "Display the current state of the CPU",
	cmdLast:    "Display the result of the most recent instruction or interrupt",
	cmdDisasm:  "Disassemble count instructions (default 10) starting at address (default PC)",
	cmdPeek:    "Display the contents of memory starting at address",
	cmdPoke:    "Modify memory starting at address. Additional values are written to successive addresses",
	cmdVectors: "Display the NMI, reset and IRQ/BRK vectors",
	cmdLog:     "Display the last n entries of the log (default 10). LOG CLEAR empties the log",
	cmdMemviz:  "Write a graphviz description of the CPU state to file",
	cmdScript:  "Run a Lua script",
	cmdPref:    "Display or change preferences. PREF SAVE writes preferences to disk",
	cmdHelp:    "Lists commands and provides help for individual commands",
	cmdQuit:    "Exits the monitor",
}
