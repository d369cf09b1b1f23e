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

// Package instructions defines the table of instruction definitions for the
// 6510. There is one Definition for each of the 151 documented opcodes. The
// remaining 105 opcodes are undefined and have no entry in the table.
//
// The table is generated from the CSV file in the generator directory:
//
//	go generate ./hardware/cpu/instructions
//
// The table returned by GetDefinitions() is shared and must not be altered.
package instructions
