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

package registers

// AddDecimal adds value to register as though both are binary coded decimal
// values. Returns the new carry, zero, overflow and sign states.
//
// The flags follow the behaviour of the NMOS 6502. The zero flag reflects
// the binary sum. The sign and overflow flags are taken after the low nibble
// has been adjusted but before the high nibble is adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	var c int
	if carry {
		c = 1
	}

	zero = uint8(int(r.value)+int(val)+c) == 0

	lo := int(r.value&0x0f) + int(val&0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	sum := int(r.value&0xf0) + int(val&0xf0) + lo

	sign = sum&0x80 == 0x80
	overflow = (int(r.value)^sum)&(int(val)^sum)&0x80 != 0

	if sum >= 0xa0 {
		sum += 0x60
	}
	rcarry = sum >= 0x100

	r.value = uint8(sum & 0xff)
	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal values. Returns the new carry, zero, overflow and sign
// states.
//
// On the NMOS 6502 all flags reflect the equivalent binary subtraction. Only
// the value left in the register is decimal adjusted.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry, zero, overflow, sign bool) {
	binary := Register{value: r.value}
	rcarry, overflow = binary.Subtract(val, carry)
	zero = binary.IsZero()
	sign = binary.IsNegative()

	var borrow int
	if !carry {
		borrow = 1
	}

	lo := int(r.value&0x0f) - int(val&0x0f) - borrow
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	diff := int(r.value&0xf0) - int(val&0xf0) + lo
	if diff < 0 {
		diff -= 0x60
	}

	r.value = uint8(diff & 0xff)
	return rcarry, zero, overflow, sign
}
