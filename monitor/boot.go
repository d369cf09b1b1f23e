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

package monitor

import (
	"github.com/jetsetilly/gopher6510/hardware/memory"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
)

// BootOrigin is the address of the boot fragment. The reset vector points
// here after LoadBootFragment().
const BootOrigin = uint16(0xfce2)

// BootFragment is the machine code of the first instructions executed after a
// reset: LDX #$ff; SEI; TXS; CLD
var BootFragment = []uint8{0xa2, 0xff, 0x78, 0x9a, 0xd8}

// LoadBootFragment copies the BootFragment to BootOrigin and points the reset
// vector to it.
func LoadBootFragment(mem *memory.Memory) {
	mem.Load(BootOrigin, BootFragment)
	mem.Load(cpubus.Reset, []uint8{uint8(BootOrigin & 0xff), uint8(BootOrigin >> 8)})
}
