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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/disassembly"
	"github.com/jetsetilly/gopher6510/hardware/memory"
	"github.com/jetsetilly/gopher6510/test"
)

func TestDisassemble(t *testing.T) {
	mem := memory.NewMemory()
	mem.Load(0xfce2, []uint8{0xa2, 0xff, 0x78, 0x9a, 0xd8, 0x6c, 0xfc, 0xff, 0xd0, 0xfe, 0x02})

	entries := disassembly.Disassemble(mem, 0xfce2, 7)
	test.DemandEquality(t, len(entries), 7)

	test.ExpectEquality(t, entries[0].String(), "fce2  a2 ff     LDX #$ff")
	test.ExpectEquality(t, entries[1].String(), "fce4  78        SEI")
	test.ExpectEquality(t, entries[2].String(), "fce5  9a        TXS")
	test.ExpectEquality(t, entries[3].String(), "fce6  d8        CLD")
	test.ExpectEquality(t, entries[4].String(), "fce7  6c fc ff  JMP ($fffc)")
	test.ExpectEquality(t, entries[5].String(), "fcea  d0 fe     BNE $fcea")
	test.ExpectEquality(t, entries[6].String(), "fcec  02        .byte $02")

	// decoding is not execution
	test.ExpectFailure(t, entries[0].Result.Final)
	test.ExpectEquality(t, entries[4].Result.InstructionData, uint16(0xfffc))
}

func TestDisassembleWrap(t *testing.T) {
	mem := memory.NewMemory()
	mem.Load(0xfffe, []uint8{0xea, 0xad, 0x34, 0x12})

	entries := disassembly.Disassemble(mem, 0xfffe, 2)
	test.ExpectEquality(t, entries[0].String(), "fffe  ea        NOP")
	test.ExpectEquality(t, entries[1].String(), "ffff  ad 34 12  LDA $1234")
}
