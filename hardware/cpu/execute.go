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
	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/logger"
)

// UndefinedOpcode is returned by ExecuteInstruction() and Step() when an
// opcode with no definition is encountered and the undefined opcode policy is
// FaultOnUndefined.
const UndefinedOpcode = "cpu: undefined opcode (%#04x) at (%#06x)"

// the number of cycles taken by an undefined opcode under the NopOnUndefined
// policy
const undefinedCycles = 2

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// Step executes a single instruction and returns the number of cycles
// consumed. Returns zero cycles and no error if the CPU is halted.
func (mc *CPU) Step() (int, error) {
	if mc.halted {
		return 0, nil
	}

	err := mc.ExecuteInstruction(NilCycleCallback)
	if err != nil {
		return 0, err
	}

	return mc.LastResult.Cycles, nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// Instructions are atomic. Once the instruction has completed the
// cycleCallback() function is run once for every cycle consumed. A nil
// cycleCallback is the same as NilCycleCallback.
//
// Does nothing if the CPU is halted.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if mc.halted {
		return nil
	}

	if cycleCallback == nil {
		cycleCallback = NilCycleCallback
	}

	err := mc.executeInstruction()
	if err != nil {
		return err
	}

	return mc.consumeCycles(cycleCallback)
}

// consumeCycles adds the cycles of the most recent instruction to the
// running total and calls the callback function for each of them
func (mc *CPU) consumeCycles(cycleCallback func() error) error {
	mc.Cycles += uint64(mc.LastResult.Cycles)
	for range mc.LastResult.Cycles {
		if err := cycleCallback(); err != nil {
			return err
		}
	}
	return nil
}

// undefinedOpcode handles the opcode that has no definition according to the
// current UndefinedPolicy
func (mc *CPU) undefinedOpcode() error {
	if mc.Prefs.UndefinedPolicy() == NopOnUndefined {
		mc.LastResult.Cycles = undefinedCycles
		mc.LastResult.Final = true
		return nil
	}

	// the PC is left pointing at the undefined opcode
	mc.PC.Load(mc.LastResult.Address)
	mc.halted = true

	err := curated.Errorf(UndefinedOpcode, mc.LastResult.OpCode, mc.LastResult.Address)
	mc.LastResult.Error = err.Error()
	mc.LastResult.Final = true
	logger.Log(logger.Allow, "cpu", err)

	return err
}

func (mc *CPU) executeInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read opcode and look up definition
	defn := mc.instructions[mc.fetch8(newOpcode)]
	if defn == nil {
		return mc.undefinedOpcode()
	}

	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	op := mc.resolve(defn)

	// branch instructions handle page crossing themselves
	if op.pageCrossed && defn.PageSensitive && !defn.IsBranch() {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	// read value from memory using address found by resolve() only when the
	// instruction reads or modifies the value. for write instructions we
	// only use the address to write a value we already have. for flow
	// instructions the use of the address is very specific
	var value uint8
	switch op.kind {
	case immediate:
		value = op.value
	case accumulator:
		value = mc.A.Value()
	case memory:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.mem.Read(op.address)
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		// the break flag is always set in the pushed value
		mc.push(mc.Status.Value() | registers.BreakMask)

	case instructions.Plp:
		mc.Status.FromValue(mc.pull())

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		mc.mem.Write(op.address, mc.A.Value())

	case instructions.Stx:
		mc.mem.Write(op.address, mc.X.Value())

	case instructions.Sty:
		mc.mem.Write(op.address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		r := mc.shiftRegister(op, value)
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.writeBack(op, r.Value())

	case instructions.Lsr:
		r := mc.shiftRegister(op, value)
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.writeBack(op, r.Value())

	case instructions.Ror:
		r := mc.shiftRegister(op, value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.writeBack(op, r.Value())

	case instructions.Rol:
		r := mc.shiftRegister(op, value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.writeBack(op, r.Value())

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Inc:
		r := mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.mem.Write(op.address, r.Value())

	case instructions.Dec:
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.mem.Write(op.address, r.Value())

	case instructions.Cmp:
		mc.compare(mc.A, value)

	case instructions.Cpx:
		mc.compare(mc.X, value)

	case instructions.Cpy:
		mc.compare(mc.Y, value)

	case instructions.Bit:
		r := mc.acc8
		r.Load(value)
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Jmp:
		mc.PC.Load(op.address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, op)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, op)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, op)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, op)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, op)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, op)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, op)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, op)

	case instructions.Jsr:
		// the address pushed onto the stack is the address of the last byte
		// of the JSR instruction. RTS adds one to the address when it is
		// pulled from the stack
		mc.pushPC(mc.PC.Address() - 1)
		mc.PC.Load(op.address)

	case instructions.Rts:
		mc.PC.Load(mc.pullPC())
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK is a single byte instruction but the PC is advanced by two.
		// the additional byte is not counted as part of the instruction
		mc.fetch8(brk)

		// push PC and status register. the break flag is always set in the
		// pushed value
		mc.pushPC(mc.PC.Address())
		mc.push(mc.Status.Value() | registers.BreakMask)

		mc.Status.Break = true
		mc.Status.InterruptDisable = true
		mc.PC.Load(mc.mem.InterruptVector())

	case instructions.Rti:
		// pull status register (same effect as PLP)
		mc.Status.FromValue(mc.pull())

		// pull program counter (same effect as RTS). unlike RTS there is no
		// need to add one to return address
		mc.PC.Load(mc.pullPC())
	}

	mc.LastResult.Final = true

	return nil
}

// shiftRegister returns the register to be used by a shift or rotate
// instruction. for the accumulator addressing mode this is the A register
// itself
func (mc *CPU) shiftRegister(op operand, value uint8) *registers.Register {
	if op.kind == accumulator {
		return &mc.A
	}
	mc.acc8.Load(value)
	return &mc.acc8
}

// writeBack stores the result of a read-modify-write instruction. results in
// the accumulator are already in place
func (mc *CPU) writeBack(op operand, value uint8) {
	if op.kind == memory {
		mc.mem.Write(op.address, value)
	}
}

// compare the register with the value. the register is unchanged
func (mc *CPU) compare(reg registers.Register, value uint8) {
	r := mc.acc8
	r.Load(reg.Value())

	// maybe surprisingly, compare can be implemented with binary subtract even
	// if decimal mode is active (the meaning is the same)
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// branch to the destination if the flag is true. a successful branch costs an
// additional cycle. a successful branch to a different page costs another
func (mc *CPU) branch(flag bool, op operand) {
	// note branching result
	mc.LastResult.BranchSuccess = flag

	if !flag {
		return
	}

	mc.LastResult.Cycles++
	if op.pageCrossed {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.PC.Load(op.address)
}
