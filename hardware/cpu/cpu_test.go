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

package cpu_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6510/hardware/memory"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6510/test"
)

func TestReset(t *testing.T) {
	mc, _ := newTestCPU(0xfce2)

	test.ExpectEquality(t, mc.PC.Address(), 0xfce2)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.X.Value(), 0x00)
	test.ExpectEquality(t, mc.Y.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	test.ExpectEquality(t, mc.Status.Value(), 0x24)
	test.ExpectFailure(t, mc.Halted())

	test.ExpectEquality(t, mc.LastResult.Event, execution.ResetEvent)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.Cycles, 7)

	test.ExpectEquality(t, mc.String(), "PC=fce2 A=00 X=00 Y=00 SP=fd SR=sv-bdIzc")

	// reset clears a halted CPU and all flags except interrupt disable
	mc.Status.Carry = true
	mc.Status.DecimalMode = true
	mc.A.Load(0x10)
	mc.HaltResume()
	test.ExpectSuccess(t, mc.Halted())
	mc.Reset()
	test.ExpectFailure(t, mc.Halted())
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Cycles, 14)
}

func TestRandomState(t *testing.T) {
	mem := newMockMem()
	mem.setVector(cpubus.Reset, 0x1000)
	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Prefs.RandomState.Set(true))
	mc.Reset()

	// registers other than A, X and Y are never random
	test.ExpectEquality(t, mc.PC.Address(), 0x1000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	test.ExpectSuccess(t, mc.LastResult.IsValid())
}

func TestStepBeforeReset(t *testing.T) {
	mem := newMockMem()
	mem.putInstructions(0x0000, 0xea)
	mc := cpu.NewCPU(mem)

	// PC starts at zero
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0001)
}

func TestBootFragment(t *testing.T) {
	mc, mem := newTestCPU(0xfce2)

	// LDX #$FF; SEI; TXS; CLD
	mem.putInstructions(0xfce2, 0xa2, 0xff, 0x78, 0x9a, 0xd8)

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.X.Value(), 0xff)
	test.ExpectEquality(t, mc.PC.Address(), 0xfce4)
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdIzc")
	test.ExpectEquality(t, mc.LastResult.String(), "fce2 LDX #$ff [2]")

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectFailure(t, mc.Status.DecimalMode)

	test.ExpectEquality(t, mc.PC.Address(), 0xfce7)
	test.ExpectEquality(t, mc.Cycles, 15)
}

func TestHaltResume(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	mem.putInstructions(0x0200, 0xe8, 0xe8)

	mc.HaltResume()
	test.ExpectSuccess(t, mc.Halted())

	// step has no effect while halted
	cycles, err := mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	test.ExpectEquality(t, mc.X.Value(), 0x00)

	// nor does ExecuteInstruction
	test.ExpectSuccess(t, mc.ExecuteInstruction(nil))
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)

	mc.HaltResume()
	test.ExpectFailure(t, mc.Halted())
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0201)
	test.ExpectEquality(t, mc.X.Value(), 0x01)
}

func TestLoadFlags(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	loads := []struct {
		opcode uint8
		reg    func() uint8
	}{
		{0xa9, func() uint8 { return mc.A.Value() }},
		{0xa2, func() uint8 { return mc.X.Value() }},
		{0xa0, func() uint8 { return mc.Y.Value() }},
	}

	for _, l := range loads {
		for v := 0; v <= 0xff; v++ {
			mem.putInstructions(0x0200, l.opcode, uint8(v))
			mc.PC.Load(0x0200)
			test.ExpectEquality(t, step(t, mc), 2)
			test.ExpectEquality(t, l.reg(), uint8(v))
			test.ExpectEquality(t, mc.Status.Zero, v == 0, v)
			test.ExpectEquality(t, mc.Status.Sign, v&0x80 == 0x80, v)
		}
	}
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// SEC; CLC; CLI; SEI; SED; CLD; LDA #$40; PHA; PLP; CLV
	mem.putInstructions(0x0200, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xa9, 0x40, 0x48, 0x28, 0xb8)

	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // LDA #$40
	step(t, mc) // PHA
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.Status.String(), "sV-bdizc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
}

func TestPHP(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// PHP; PLA
	mem.putInstructions(0x0200, 0x08, 0x68)

	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	// break flag and unused bit are set in the pushed value
	mem.assert(t, 0x01fd, 0x34)

	// the break flag in the status register is not changed
	test.ExpectFailure(t, mc.Status.Break)

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x34)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestTransfers(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// LDA #$80; TAX; TAY; LDA #$00; TXA; LDY #$00; TYA; TSX
	mem.putInstructions(0x0200, 0xa9, 0x80, 0xaa, 0xa8, 0xa9, 0x00, 0x8a, 0xa0, 0x00, 0x98, 0xba)

	step(t, mc)
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.X.Value(), 0x80)
	test.ExpectSuccess(t, mc.Status.Sign)
	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Y.Value(), 0x80)
	step(t, mc) // LDA #$00
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectFailure(t, mc.Status.Zero)
	step(t, mc) // LDY #$00
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc) // TSX
	test.ExpectEquality(t, mc.X.Value(), 0xfd)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestArithmetic(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// CLC; LDA #$50; ADC #$50
	origin := mem.putInstructions(0x0200, 0x18, 0xa9, 0x50, 0x69, 0x50)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectEquality(t, mc.Status.String(), "SV-bdIzc")

	// CLC; LDA #$ff; ADC #$01
	origin = mem.putInstructions(origin, 0x18, 0xa9, 0xff, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIZC")

	// SEC; LDA #$50; SBC #$b0
	origin = mem.putInstructions(origin, 0x38, 0xa9, 0x50, 0xe9, 0xb0)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectEquality(t, mc.Status.String(), "SV-bdIzc")

	// SEC; LDA #$05; SBC #$03
	mem.putInstructions(origin, 0x38, 0xa9, 0x05, 0xe9, 0x03)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzC")
}

func TestDecimalMode(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// SED; CLC; LDA #$09; ADC #$01
	origin := mem.putInstructions(0x0200, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	test.ExpectFailure(t, mc.Status.Carry)

	// CLC; LDA #$99; ADC #$01
	origin = mem.putInstructions(origin, 0x18, 0xa9, 0x99, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)

	// SEC; LDA #$10; SBC #$01
	origin = mem.putInstructions(origin, 0x38, 0xa9, 0x10, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x09)
	test.ExpectSuccess(t, mc.Status.Carry)

	// compare instructions are not affected by decimal mode
	// LDA #$10; CMP #$09
	mem.putInstructions(origin, 0xa9, 0x10, 0xc9, 0x09)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x10)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Zero)
}

func TestLogical(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// LDA #$f0; AND #$3c; ORA #$01; EOR #$ff
	mem.putInstructions(0x0200, 0xa9, 0xf0, 0x29, 0x3c, 0x09, 0x01, 0x49, 0xff)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x30)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x31)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xce)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestCompareAndBit(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x0010, 0xc0)

	// LDA #$10; CMP #$10; CMP #$20; LDX #$05; CPX #$04; LDY #$05; CPY #$06; LDA #$01; BIT $10
	mem.putInstructions(0x0200, 0xa9, 0x10, 0xc9, 0x10, 0xc9, 0x20,
		0xa2, 0x05, 0xe0, 0x04, 0xa0, 0x05, 0xc0, 0x06, 0xa9, 0x01, 0x24, 0x10)

	step(t, mc)
	step(t, mc) // CMP #$10
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIZC")
	step(t, mc) // CMP #$20
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdIzc")
	test.ExpectEquality(t, mc.A.Value(), 0x10)

	step(t, mc)
	step(t, mc) // CPX #$04
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzC")

	step(t, mc)
	step(t, mc) // CPY #$06
	test.ExpectEquality(t, mc.Status.String(), "Sv-bdIzc")

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3) // BIT $10
	test.ExpectEquality(t, mc.Status.String(), "SV-bdIZc")
	test.ExpectEquality(t, mc.A.Value(), 0x01)
}

func TestShiftAndRotate(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x0010, 0x01)
	mem.Write(0x1234, 0x40)

	// LDA #$81; ASL A; ROR $10; ROL $1234; LSR A
	mem.putInstructions(0x0200, 0xa9, 0x81, 0x0a, 0x66, 0x10, 0x2e, 0x34, 0x12, 0x4a)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2) // ASL A
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	test.ExpectEquality(t, step(t, mc), 5) // ROR $10
	mem.assert(t, 0x0010, 0x80)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	test.ExpectEquality(t, step(t, mc), 6) // ROL $1234
	mem.assert(t, 0x1234, 0x81)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc) // LSR A
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Sign)
}

func TestIncrementDecrement(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x0020, 0xff)
	mem.Write(0x0300, 0x01)

	// INC $20; DEC $0300; DEX; INY
	mem.putInstructions(0x0200, 0xe6, 0x20, 0xce, 0x00, 0x03, 0xca, 0xc8)

	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x0020, 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)

	test.ExpectEquality(t, step(t, mc), 6)
	mem.assert(t, 0x0300, 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0xff)
	test.ExpectSuccess(t, mc.Status.Sign)

	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x01)
	test.ExpectFailure(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Zero)
}

func TestStore(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// LDA #$11; LDX #$22; LDY #$33; STA $4000; STX $41; STY $42,X; STA $4000,Y
	mem.putInstructions(0x0200, 0xa9, 0x11, 0xa2, 0x22, 0xa0, 0x33,
		0x8d, 0x00, 0x40, 0x86, 0x41, 0x94, 0x42, 0x99, 0x00, 0x40)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	mem.assert(t, 0x4000, 0x11)
	test.ExpectEquality(t, step(t, mc), 3)
	mem.assert(t, 0x0041, 0x22)
	test.ExpectEquality(t, step(t, mc), 4)
	mem.assert(t, 0x0064, 0x33)

	// store instructions are never subject to the page crossing penalty
	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x4033, 0x11)
	test.ExpectFailure(t, mc.LastResult.PageFault)
}

func TestPageCrossing(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x2100, 0xaa)
	mem.Write(0x2001, 0xbb)

	// LDX #$01; LDA $20ff,X; LDA $2000,X
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xbd, 0xff, 0x20, 0xbd, 0x00, 0x20)

	step(t, mc)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0xaa)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.LastResult.String(), "0202 LDA $20ff,X [5] page-fault")

	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0xbb)
	test.ExpectFailure(t, mc.LastResult.PageFault)
}

func TestAbsoluteIndexWrap(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x0001, 0x5a)

	// LDY #$02; LDA $ffff,Y
	mem.putInstructions(0x0200, 0xa0, 0x02, 0xb9, 0xff, 0xff)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x5a)
}

func TestZeroPageIndexWrap(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x0000, 0x42)
	mem.Write(0x0100, 0x99)
	mem.Write(0x0004, 0x24)

	// LDX #$01; LDA $ff,X; LDY #$05; LDX $ff,Y
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xb5, 0xff, 0xa0, 0x05, 0xb6, 0xff)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.X.Value(), 0x24)
}

func TestJmpIndirectBug(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x30ff, 0x80)
	mem.Write(0x3000, 0x50)
	mem.Write(0x3100, 0x40)

	// JMP ($30ff)
	mem.putInstructions(0x0200, 0x6c, 0xff, 0x30)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.PC.Address(), 0x5080)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)

	// the bug does not occur if the pointer is not at the end of a page.
	// JMP ($3100)
	mem.Write(0x3101, 0x60)
	mem.putInstructions(0x5080, 0x6c, 0x00, 0x31)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x6040)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
}

func TestIndexedIndirect(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x0024, 0x00)
	mem.Write(0x0025, 0x30)
	mem.Write(0x3000, 0x11)

	// the pointer wraps around in page zero
	mem.Write(0x00ff, 0x34)
	mem.Write(0x0000, 0x12)
	mem.Write(0x1234, 0x77)

	// LDX #$04; LDA ($20,X); LDX #$01; LDA ($fe,X)
	mem.putInstructions(0x0200, 0xa2, 0x04, 0xa1, 0x20, 0xa2, 0x01, 0xa1, 0xfe)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), 0x11)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)
}

func TestIndirectIndexed(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	mem.Write(0x0080, 0xf8)
	mem.Write(0x0081, 0x20)
	mem.Write(0x2108, 0x55)
	mem.Write(0x20f9, 0x66)

	// the high byte of the pointer is read from the start of page zero
	mem.Write(0x00ff, 0x00)
	mem.Write(0x0000, 0x30)
	mem.Write(0x3001, 0x88)

	// LDY #$10; LDA ($80),Y; LDY #$01; LDA ($80),Y; LDA ($ff),Y
	mem.putInstructions(0x0200, 0xa0, 0x10, 0xb1, 0x80, 0xa0, 0x01, 0xb1, 0x80, 0xb1, 0xff)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x66)
	test.ExpectFailure(t, mc.LastResult.PageFault)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.A.Value(), 0x88)
}

func TestBranching(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// LDA #$00; BNE +5; BEQ +2
	mem.putInstructions(0x0200, 0xa9, 0x00, 0xd0, 0x05, 0xf0, 0x02)

	step(t, mc)

	// branch not taken
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0204)
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)

	// branch taken to same page
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), 0x0208)
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)
	test.ExpectFailure(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.LastResult.String(), "0204 BEQ $0208 [3]")

	// branch taken to next page. BEQ +$20
	mem.putInstructions(0x02f0, 0xf0, 0x20)
	mc.PC.Load(0x02f0)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x0312)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// branch taken backwards to previous page. BEQ -4
	mem.putInstructions(0x0300, 0xf0, 0xfc)
	mc.PC.Load(0x0300)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), 0x02fe)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// branch not taken never suffers a page fault, even if destination is
	// on another page. BNE -4
	mem.putInstructions(0x0300, 0xd0, 0xfc)
	mc.PC.Load(0x0300)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0302)
	test.ExpectFailure(t, mc.LastResult.PageFault)
}

func TestBranchConditions(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	branches := []struct {
		opcode uint8
		setup  func()
	}{
		{0x10, func() { mc.Status.Sign = false }},     // BPL
		{0x30, func() { mc.Status.Sign = true }},      // BMI
		{0x50, func() { mc.Status.Overflow = false }}, // BVC
		{0x70, func() { mc.Status.Overflow = true }},  // BVS
		{0x90, func() { mc.Status.Carry = false }},    // BCC
		{0xb0, func() { mc.Status.Carry = true }},     // BCS
		{0xd0, func() { mc.Status.Zero = false }},     // BNE
		{0xf0, func() { mc.Status.Zero = true }},      // BEQ
	}

	for _, b := range branches {
		mem.putInstructions(0x0200, b.opcode, 0x10)
		mc.PC.Load(0x0200)
		b.setup()
		test.ExpectEquality(t, step(t, mc), 3, b.opcode)
		test.ExpectEquality(t, mc.PC.Address(), 0x0212, b.opcode)
	}
}

func TestStackWrap(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// LDX #$00; TXS; LDA #$42; PHA; LDA #$00; PLA
	mem.putInstructions(0x0200, 0xa2, 0x00, 0x9a, 0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	step(t, mc)
	step(t, mc) // PHA
	mem.assert(t, 0x0100, 0x42)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	step(t, mc)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// JSR $0300
	mem.putInstructions(0x0200, 0x20, 0x00, 0x03)

	// RTS
	mem.putInstructions(0x0300, 0x60)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)

	rts, ok := mc.PredictRTS()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, rts, 0x0203)

	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0203)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestBRK(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	mem.setVector(cpubus.IRQ, 0x0400)

	// BRK (with padding byte); RTI at interrupt vector
	mem.putInstructions(0x0200, 0x00, 0xea)
	mem.putInstructions(0x0400, 0x40)

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)
	test.ExpectEquality(t, mc.LastResult.ByteCount, 1)
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x34)
	test.ExpectSuccess(t, mc.Status.Break)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// return to the address after the padding byte
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x0202)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)

	// the status value pulled by RTI was pushed by BRK and so the break bit
	// remains set
	test.ExpectSuccess(t, mc.Status.Break)
	test.ExpectEquality(t, strings.Contains(mc.String(), "SR=sv-BdIzc"), true)
}

func TestIRQ(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	mem.setVector(cpubus.IRQ, 0x0400)

	// CLI; RTI at interrupt vector
	mem.putInstructions(0x0200, 0x58)
	mem.putInstructions(0x0400, 0x40)

	// interrupt disable is set after reset
	test.ExpectFailure(t, mc.IRQ())
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
	test.ExpectEquality(t, mc.LastResult.Event, execution.ResetEvent)

	step(t, mc)
	cycles := mc.Cycles
	test.ExpectSuccess(t, mc.IRQ())
	test.ExpectEquality(t, mc.PC.Address(), 0x0400)
	test.ExpectEquality(t, mc.LastResult.Event, execution.IRQEvent)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.Cycles, cycles+7)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// break flag is clear in the pushed status value
	mem.assert(t, 0x01fd, 0x02)
	mem.assert(t, 0x01fc, 0x01)
	mem.assert(t, 0x01fb, 0x20)

	// interrupt disable is restored by RTI
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0201)
	test.ExpectFailure(t, mc.Status.InterruptDisable)
	test.ExpectFailure(t, mc.Status.Break)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
}

func TestNMI(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	mem.setVector(cpubus.NMI, 0x0500)
	mem.putInstructions(0x0500, 0x40)

	// NMI is taken even though interrupt disable is set
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	mc.NMI()
	test.ExpectEquality(t, mc.PC.Address(), 0x0500)
	test.ExpectEquality(t, mc.LastResult.Event, execution.NMIEvent)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	mem.assert(t, 0x01fb, 0x24)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0200)
}

func TestNMIVectored(t *testing.T) {
	mem := memory.NewMemory()
	mem.Load(cpubus.Reset, []uint8{0x00, 0x02})
	mem.Load(cpubus.NMI, []uint8{0x34, 0x12})

	mc := cpu.NewCPU(mem)
	mc.Reset()
	mc.NMI()
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
}

func TestCycleCallback(t *testing.T) {
	mc, mem := newTestCPU(0x0200)

	// LDX #$01; LDA $20ff,X; NOP
	mem.putInstructions(0x0200, 0xa2, 0x01, 0xbd, 0xff, 0x20, 0xea)

	var count int
	callback := func() error {
		count++
		return nil
	}

	test.ExpectSuccess(t, mc.ExecuteInstruction(callback))
	test.ExpectEquality(t, count, 2)

	count = 0
	test.ExpectSuccess(t, mc.ExecuteInstruction(callback))
	test.ExpectEquality(t, count, 5)

	// errors from the callback are returned
	errCallback := errors.New("callback error")
	err := mc.ExecuteInstruction(func() error {
		return errCallback
	})
	test.ExpectSuccess(t, errors.Is(err, errCallback))

	// the instruction has completed regardless
	test.ExpectEquality(t, mc.PC.Address(), 0x0206)
}

func TestUndefinedFault(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	defs := instructions.GetDefinitions()

	var n int
	for opcode, defn := range defs {
		if defn != nil {
			continue
		}
		n++

		mc.Reset()
		mem.putInstructions(0x0200, uint8(opcode))

		cycles, err := mc.Step()
		test.ExpectSuccess(t, curated.Is(err, cpu.UndefinedOpcode), opcode)
		test.ExpectEquality(t, cycles, 0, opcode)
		test.ExpectSuccess(t, mc.Halted(), opcode)
		test.ExpectEquality(t, mc.PC.Address(), 0x0200, opcode)
		test.ExpectEquality(t, mc.LastResult.OpCode, uint8(opcode), opcode)
		test.ExpectSuccess(t, mc.LastResult.Defn == nil, opcode)
		test.ExpectSuccess(t, mc.LastResult.IsValid(), opcode)

		// the CPU remains halted
		cycles, err = mc.Step()
		test.ExpectSuccess(t, err, opcode)
		test.ExpectEquality(t, cycles, 0, opcode)
	}

	test.ExpectEquality(t, n, 105)
}

func TestUndefinedNop(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	test.DemandSuccess(t, mc.Prefs.Undefined.Set("nop"))
	test.DemandEquality(t, mc.Prefs.UndefinedPolicy(), cpu.NopOnUndefined)

	defs := instructions.GetDefinitions()

	var n int
	for opcode, defn := range defs {
		if defn != nil {
			continue
		}
		n++

		mem.putInstructions(0x0200, uint8(opcode))
		mc.PC.Load(0x0200)

		test.ExpectEquality(t, step(t, mc), 2, opcode)
		test.ExpectFailure(t, mc.Halted(), opcode)
		test.ExpectEquality(t, mc.PC.Address(), 0x0201, opcode)
		test.ExpectSuccess(t, mc.LastResult.Defn == nil, opcode)
		test.ExpectEquality(t, mc.LastResult.Error, "", opcode)
	}

	test.ExpectEquality(t, n, 105)
}

func TestSnapshot(t *testing.T) {
	mc, mem := newTestCPU(0x0200)
	mem.putInstructions(0x0200, 0xa9, 0x01)

	snapshot := mc.Snapshot()
	step(t, mc)

	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, snapshot.A.Value(), 0x00)
	test.ExpectEquality(t, snapshot.PC.Address(), 0x0200)
	test.ExpectEquality(t, snapshot.LastResult.Event, execution.ResetEvent)
}
