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

package main

import (
	"testing"

	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/memory"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
)

func BenchmarkStep(b *testing.B) {
	mem := memory.NewMemory()

	// loop at 0x0200: INX; BNE $0200; INY; JMP $0200
	mem.Load(0x0200, []uint8{0xe8, 0xd0, 0xfd, 0xc8, 0x4c, 0x00, 0x02})
	mem.Poke(cpubus.Reset, 0x00)
	mem.Poke(cpubus.Reset+1, 0x02)

	mc := cpu.NewCPU(mem)
	mc.Reset()

	for b.Loop() {
		if _, err := mc.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
