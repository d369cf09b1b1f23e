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

// Package memory implements the addressable memory of the emulated system.
// It is a flat 64KiB store of zero-filled bytes with no bank switching and
// no memory-mapped I/O.
//
// The Memory type implements the cpubus.Memory interface and is the memory
// the CPU is attached to in normal use:
//
//	mem := memory.NewMemory()
//	mem.Load(0xfce2, program)
//	mem.Write(cpubus.Reset, 0xe2)
//	mem.Write(cpubus.Reset+1, 0xfc)
//	mc := cpu.NewCPU(mem)
//
// The Peek() and Poke() functions are for diagnostic callers, such as the
// monitor, and are equivalent to Read() and Write().
package memory
