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

// Package disassembly decodes memory into a list of instructions.
//
// Decoding is linear: every entry starts immediately after the bytes of the
// previous entry. Bytes that are not the start of a defined instruction are
// decoded as single byte entries. Addresses wrap around at the end of memory.
//
// Decoding has no side effects on memory.
package disassembly
