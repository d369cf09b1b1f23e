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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
)

// Memory defines the memory operations required for disassembly.
type Memory interface {
	Peek(address uint16) uint8
}

// Entry is a disassembled instruction. The Result field is not Final because
// the instruction has not been executed.
type Entry struct {
	Result execution.Result

	// the bytes of the instruction as a string of hex values
	Bytecode string
}

// String returns the entry as a single line suitable for display.
func (e Entry) String() string {
	if e.Result.Defn == nil {
		return fmt.Sprintf("%04x  %-8s  .byte $%02x", e.Result.Address, e.Bytecode, e.Result.OpCode)
	}

	s := e.Result.Mnemonic()
	if op := e.Result.Operand(); op != "" {
		s = fmt.Sprintf("%s %s", s, op)
	}

	return fmt.Sprintf("%04x  %-8s  %s", e.Result.Address, e.Bytecode, s)
}

// Decode the instruction at address.
func Decode(mem Memory, address uint16) Entry {
	defs := instructions.GetDefinitions()

	e := Entry{}
	e.Result.Address = address
	e.Result.OpCode = mem.Peek(address)
	e.Result.Defn = defs[e.Result.OpCode]
	e.Result.ByteCount = 1

	bytecode := []string{fmt.Sprintf("%02x", e.Result.OpCode)}

	if e.Result.Defn != nil {
		for i := 1; i < e.Result.Defn.Bytes; i++ {
			b := mem.Peek(address + uint16(i))
			e.Result.InstructionData |= uint16(b) << (8 * (i - 1))
			bytecode = append(bytecode, fmt.Sprintf("%02x", b))
		}
		e.Result.ByteCount = e.Result.Defn.Bytes
	}

	e.Bytecode = strings.Join(bytecode, " ")

	return e
}

// Disassemble count instructions starting at address.
func Disassemble(mem Memory, address uint16, count int) []Entry {
	entries := make([]Entry, 0, count)
	for range count {
		e := Decode(mem, address)
		entries = append(entries, e)
		address += uint16(e.Result.ByteCount)
	}
	return entries
}
