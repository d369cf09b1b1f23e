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

package cpu

import (
	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
)

// the kind of operand produced by the addressing mode of an instruction
type operandKind int

const (
	implied operandKind = iota
	accumulator
	immediate
	memory
)

// operand is the result of resolving the addressing mode of an instruction
type operand struct {
	kind operandKind

	// the effective address. only valid for the memory kind. for relative
	// addressing this is the branch destination
	address uint16

	// the literal value. only valid for the immediate kind
	value uint8

	// the effective address is on a different page to the base address. for
	// relative addressing the base address is the PC after the instruction
	pageCrossed bool
}

// reading bytes from the PC has a variety of additional side-effects depending
// on context
type fetchEffect int

const (
	newOpcode fetchEffect = iota
	loByte
	hiByte

	// the byte after BRK is skipped but not counted as part of the
	// instruction
	brk
)

// fetch8 reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) fetch8(effect fetchEffect) uint8 {
	v := mc.mem.Read(mc.PC.Address())

	// the program counter cycles to zero at the end of memory
	mc.PC.Add(1)

	switch effect {
	case newOpcode:
		mc.LastResult.OpCode = v
		mc.LastResult.ByteCount++
	case loByte:
		mc.LastResult.InstructionData = uint16(v)
		mc.LastResult.ByteCount++
	case hiByte:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
		mc.LastResult.ByteCount++
	case brk:
	}

	return v
}

// fetch16 reads 16 bits from the memory location pointed to by PC
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8(loByte)
	hi := mc.fetch8(hiByte)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16 returns the 16 bit value stored at address. the second byte is read
// from the next address, wrapping at the end of memory
func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16ZeroPage returns the 16 bit value stored at the zero page address.
// the second byte wraps around within page zero
func (mc *CPU) read16ZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// resolve reads the operand bytes of the instruction (if any) and calculates
// the effective address according to the addressing mode. the PC should be
// pointing to the byte after the opcode.
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount and LastResult.InstructionData
//   - updates LastResult.CPUBug as appropriate
func (mc *CPU) resolve(defn *instructions.Definition) operand {
	var op operand

	switch defn.AddressingMode {
	case instructions.Implied:
		op.kind = implied

	case instructions.Accumulator:
		op.kind = accumulator

	case instructions.Immediate:
		op.kind = immediate
		op.value = mc.fetch8(loByte)

	case instructions.Relative:
		op.kind = memory
		offset := mc.fetch8(loByte)

		// the offset is signed and relative to the address of the next
		// instruction
		base := mc.PC.Address()
		op.address = base + uint16(int8(offset))
		op.pageCrossed = base&0xff00 != op.address&0xff00

	case instructions.Absolute:
		op.kind = memory
		op.address = mc.fetch16()

	case instructions.ZeroPage:
		op.kind = memory
		op.address = uint16(mc.fetch8(loByte))

	case instructions.Indirect:
		// used exclusively for JMP indirect
		op.kind = memory
		indirectAddress := mc.fetch16()

		if indirectAddress&0x00ff == 0x00ff {
			// in this bug path, the lower byte of the indirect address is on
			// a page boundary. because of the bug we must read the high byte
			// of the JMP address from the zero byte of the same page (rather
			// than the zero byte of the next page)
			lo := mc.mem.Read(indirectAddress)
			hi := mc.mem.Read(indirectAddress & 0xff00)
			op.address = (uint16(hi) << 8) | uint16(lo)
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		} else {
			op.address = mc.read16(indirectAddress)
		}

	case instructions.IndexedIndirect: // x indexing
		op.kind = memory
		indirectAddress := mc.fetch8(loByte)

		// using 8bit addition because we don't want the indexed address to
		// extend past the first page
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.X.Value(), false)

		// make a note of indirect addressing bug. this includes the case
		// where only the second byte of the pointer wraps
		if uint16(indirectAddress)+mc.X.Address()+1 > 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		op.address = mc.read16ZeroPage(mc.acc8.Value())

	case instructions.IndirectIndexed: // y indexing
		op.kind = memory
		indirectAddress := mc.fetch8(loByte)

		base := mc.read16ZeroPage(indirectAddress)
		op.address = base + mc.Y.Address()
		op.pageCrossed = base&0xff00 != op.address&0xff00

	case instructions.AbsoluteIndexedX:
		op.kind = memory
		base := mc.fetch16()
		op.address = base + mc.X.Address()
		op.pageCrossed = base&0xff00 != op.address&0xff00

	case instructions.AbsoluteIndexedY:
		op.kind = memory
		base := mc.fetch16()
		op.address = base + mc.Y.Address()
		op.pageCrossed = base&0xff00 != op.address&0xff00

	case instructions.ZeroPageIndexedX:
		op.kind = memory
		op.address = mc.zeroPageIndexed(mc.fetch8(loByte), mc.X.Value())

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX and STX
		op.kind = memory
		op.address = mc.zeroPageIndexed(mc.fetch8(loByte), mc.Y.Value())
	}

	return op
}

// zeroPageIndexed adds the index to the zero page address. the result never
// leaves page zero
func (mc *CPU) zeroPageIndexed(zeroPage uint8, index uint8) uint16 {
	mc.acc8.Load(zeroPage)
	mc.acc8.Add(index, false)

	// make a note of zero page index bug
	if uint16(zeroPage)+uint16(index) > 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}

	return mc.acc8.Address()
}
