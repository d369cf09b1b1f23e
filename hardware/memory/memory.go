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

package memory

import (
	"github.com/jetsetilly/gopher6510/hardware/memory/cpubus"
)

// Size of the address space in bytes.
const Size = 0x10000

// Memory is the flat address space of the emulated system.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// All bytes are zero.
func NewMemory() *Memory {
	return &Memory{}
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// read a little-endian word from address. the high byte is read from the
// following address, wrapping around at the end of memory
func (mem *Memory) word(address uint16) uint16 {
	lo := uint16(mem.data[address])
	hi := uint16(mem.data[address+1])
	return hi<<8 | lo
}

// ResetVector implements the cpubus.Memory interface.
func (mem *Memory) ResetVector() uint16 {
	return mem.word(cpubus.Reset)
}

// InterruptVector implements the cpubus.Memory interface.
func (mem *Memory) InterruptVector() uint16 {
	return mem.word(cpubus.IRQ)
}

// NMIVector implements the cpubus.NMIVectored interface.
func (mem *Memory) NMIVector() uint16 {
	return mem.word(cpubus.NMI)
}

// Load copies data into memory starting at the origin address. Data that
// extends beyond the end of memory wraps around to address zero.
func (mem *Memory) Load(origin uint16, data []uint8) {
	for i, d := range data {
		mem.data[origin+uint16(i)] = d
	}
}

// Peek returns the value at address without any side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.Read(address)
}

// Poke sets the value at address without any side effects.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.Write(address, data)
}

// Clear sets every byte in memory to zero.
func (mem *Memory) Clear() {
	clear(mem.data[:])
}
