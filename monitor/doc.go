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

// Package monitor is a command line interface to the emulated CPU. It is the
// controlling caller of the CPU: it decides when the CPU is reset, stepped,
// halted and interrupted, and it prints the state of the CPU after every
// command that changes it.
//
// Commands are entered through an implementation of the terminal.Terminal
// interface. Commands are not case sensitive. HELP lists the available
// commands and HELP <command> describes each one.
//
// The monitor can preload the boot fragment, a short program at the reset
// vector that is executed by the machine after power on:
//
//	fce2  LDX #$ff
//	fce4  SEI
//	fce5  TXS
//	fce6  CLD
//
// Numeric arguments are decimal unless prefixed with $ or 0x, in which case
// they are hexadecimal.
package monitor
