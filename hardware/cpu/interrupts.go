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
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
)

// IRQ requests a maskable interrupt. The interrupt is not taken if the
// interrupt disable flag is set. Returns true if the interrupt was taken.
//
// Interrupts are serviced between instructions and so the request is
// serviced immediately. The halted state of the CPU is not considered.
func (mc *CPU) IRQ() bool {
	if mc.Status.InterruptDisable {
		return false
	}
	mc.interrupt(execution.IRQEvent, mc.mem.InterruptVector())
	return true
}

// NMI requests a non-maskable interrupt. The interrupt is always taken.
func (mc *CPU) NMI() {
	var vector uint16
	if v, ok := mc.mem.(cpubus.NMIVectored); ok {
		vector = v.NMIVector()
	} else {
		vector = mc.read16(cpubus.NMI)
	}
	mc.interrupt(execution.NMIEvent, vector)
}

// the interrupt sequence is the same as BRK except that the break flag is
// clear in the pushed status value and the PC is not advanced
func (mc *CPU) interrupt(event execution.Event, vector uint16) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Event = event

	mc.pushPC(mc.PC.Address())
	mc.push(mc.Status.Value() &^ registers.BreakMask)
	mc.Status.InterruptDisable = true
	mc.PC.Load(vector)

	mc.Cycles += sequenceCycles
	mc.LastResult.Cycles = sequenceCycles
	mc.LastResult.Final = true
}
