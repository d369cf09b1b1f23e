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

package execution

// Bug describes a known defect of the 6510 that was triggered during
// instruction execution.
type Bug string

// List of valid Bug values.
const (
	NoBug Bug = ""

	// JMP (indirect) with a pointer at the end of a page reads the high byte
	// of the destination address from the start of the same page
	JmpIndirectAddressingBug Bug = "indirect addressing bug (JMP bug)"

	// the pointer of (ind,X) addressing wraps around in page zero
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// zero page indexing wraps around in page zero
	ZeroPageIndexBug Bug = "zero page index bug"
)
