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
	"fmt"

	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6510/logger"
	"github.com/jetsetilly/gopher6510/random"
)

// the stack is always in page one
const stackPage = uint16(0x0100)

// the value of the stack pointer after a reset
const resetSP = uint8(0xfd)

// the number of cycles taken by the reset and interrupt sequences
const sequenceCycles = 7

// CPU implements the 6510 as found in the Commodore 64. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// the number of cycles consumed since the CPU was created
	Cycles uint64

	// the result of the most recent instruction, reset or interrupt
	LastResult execution.Result

	// preferences can be replaced at any time. NewCPU() creates preferences
	// that are not backed by a file
	Prefs *Preferences

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions []*instructions.Definition

	// the CPU has been halted either by the user or because of an undefined
	// opcode. requires HaltResume() or Reset()
	halted bool

	// source of random values when the RandomState preference is set
	rnd *random.Random
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU should be Reset() before use.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewRegister(0, "SP"),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}

	// preferences without a path never fail
	mc.Prefs, _ = NewPreferences("")

	mc.rnd = random.NewRandom(mc)

	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// memory with the original and should be treated as read-only.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	s := fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.SP,
		mc.Status.Label(), mc.Status)
	if mc.halted {
		s = fmt.Sprintf("%s [halted]", s)
	}
	return s
}

// Elapsed implements the random.Source interface.
func (mc *CPU) Elapsed() uint64 {
	return mc.Cycles
}

// Reset the CPU. The interrupt disable flag is set and all other flags are
// cleared. The PC is loaded from the reset vector. A, X and Y are cleared
// unless the RandomState preference is set, in which case they are given
// random values.
//
// Reset takes seven cycles. The LastResult field records the reset as a
// ResetEvent.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.halted = false

	if mc.Prefs.RandomState.Get().(bool) {
		mc.A.Load(mc.rnd.Uint8())
		mc.X.Load(mc.rnd.Uint8())
		mc.Y.Load(mc.rnd.Uint8())
	} else {
		mc.A.Load(0)
		mc.X.Load(0)
		mc.Y.Load(0)
	}

	mc.SP.Load(resetSP)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.mem.ResetVector())

	mc.Cycles += sequenceCycles
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Event = execution.ResetEvent
	mc.LastResult.Cycles = sequenceCycles
	mc.LastResult.Final = true

	logger.Logf(logger.Allow, "cpu", "reset: PC=%s", mc.PC)
}

// HaltResume toggles the halted state of the CPU. This is an emulator control
// and not a feature of the 6510.
func (mc *CPU) HaltResume() {
	mc.halted = !mc.halted
	if mc.halted {
		logger.Logf(logger.Allow, "cpu", "halted at %s", mc.PC)
	} else {
		logger.Logf(logger.Allow, "cpu", "resumed at %s", mc.PC)
	}
}

// Halted returns true if the CPU is halted. Step() and ExecuteInstruction()
// will do nothing while the CPU is halted.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// adhoc interface exposing the Peek() function to the CPU
type predictRTS interface {
	Peek(address uint16) uint8
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. Returns false if the memory does not support peeking.
func (mc *CPU) PredictRTS() (uint16, bool) {
	predict, ok := mc.mem.(predictRTS)
	if !ok {
		return 0, false
	}

	sp := mc.SP.Value() + 1
	lo := predict.Peek(stackPage | uint16(sp))
	sp++
	hi := predict.Peek(stackPage | uint16(sp))

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}

// push value onto the stack. the stack pointer wraps around within page one
func (mc *CPU) push(value uint8) {
	mc.mem.Write(stackPage|mc.SP.Address(), value)
	mc.SP.Load(mc.SP.Value() - 1)
}

// pull value from the stack. the stack pointer wraps around within page one
func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(stackPage | mc.SP.Address())
}

// push the PC onto the stack, most significant byte first
func (mc *CPU) pushPC(pc uint16) {
	mc.push(uint8(pc >> 8))
	mc.push(uint8(pc))
}

// pull a 16 bit address from the stack, least significant byte first
func (mc *CPU) pullPC() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return (uint16(hi) << 8) | uint16(lo)
}
