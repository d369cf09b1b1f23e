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

// Package registers implements the three types of register found in the 6510.
// The three types are the 8-bit register, the 16-bit program counter and the
// status register.
//
// The 8-bit Register type implements the arithmetic and logical operations
// required by the CPU. The operations do not affect the status register,
// which the CPU updates with the information returned by the operation or by
// interrogating the register afterwards. For example:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// In this case the zero flag will be false and the sign flag will be true.
package registers
