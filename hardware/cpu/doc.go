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

// Package cpu emulates the 6510 microprocessor found in the Commodore 64. Like
// all 8-bit processors of the era, the 6510 executes instructions according to
// the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface as
// the sole argument to NewCPU(). The CPU borrows the memory for its entire
// lifetime.
//
//	mem := memory.NewMemory()
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
// The CPU is not usable until Reset() has been called. Reset() loads the
// program counter from the reset vector, as the real CPU does on power-up.
//
// The simplest way of running the CPU is with the Step() function, which
// executes a single instruction and returns the number of cycles consumed.
//
//	for {
//		cycles, err := mc.Step()
//		if err != nil {
//			break
//		}
//		total += cycles
//	}
//
// The ExecuteInstruction() function is similar but takes a callback function
// that is called once for every cycle consumed by the instruction. Note that
// instructions are atomic. The callback is run after the instruction has
// completed and not between the memory accesses of the instruction.
//
// Instructions that are not defined by the instruction table are handled
// according to the "cpu.undefined" preference. By default the CPU will halt
// with an error that matches the UndefinedOpcode pattern. Alternatively, the
// opcode can be treated as a two cycle NOP.
//
// The LastResult field can be examined for information about the last
// instruction executed. See the execution package for more information. The
// IsValid() function of that type is a good way of checking that the CPU is
// operating correctly.
//
// Execution can be halted and resumed with HaltResume(). This is an emulator
// control and not a feature of the 6510. While halted, the Step() function
// has no effect.
package cpu
