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
	"testing"

	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
)

// mockMem implements cpubus.Memory but not cpubus.NMIVectored. the CPU must
// read the NMI vector itself
type mockMem struct {
	internal [0x10000]uint8
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) word(address uint16) uint16 {
	return uint16(mem.internal[address+1])<<8 | uint16(mem.internal[address])
}

func (mem *mockMem) ResetVector() uint16 {
	return mem.word(cpubus.Reset)
}

func (mem *mockMem) InterruptVector() uint16 {
	return mem.word(cpubus.IRQ)
}

// Peek allows the CPU to predict the result of RTS
func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) setVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%#04x - wanted %#04x at address %#06x)", d, value, address)
	}
}

// create a new CPU with the reset vector pointing to origin. the CPU has been
// reset and is ready to run
func newTestCPU(origin uint16) (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mem.setVector(cpubus.Reset, origin)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// step the CPU one instruction and check that the result is valid. returns
// the number of cycles consumed
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	if err := mc.LastResult.IsValid(); err != nil {
		t.Fatalf("%v: %s", err, mc.LastResult.String())
	}
	return cycles
}
