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

// Package cpubus defines the interface between the CPU and the memory it is
// attached to.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. There are no error conditions. Every address in the 16-bit address
// space can be read and written.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// ResetVector returns the address stored at the Reset address
	ResetVector() uint16

	// InterruptVector returns the address stored at the IRQ address. The BRK
	// instruction also uses this vector
	InterruptVector() uint16
}

// NMIVectored is implemented by memory that can supply the address stored at
// the NMI address. The CPU falls back to reading the two bytes itself if the
// memory does not implement this interface.
type NMIVectored interface {
	NMIVector() uint16
}

// Addresses of the three vectors stored at the top of memory. Each vector is
// two bytes stored in little-endian order.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)
