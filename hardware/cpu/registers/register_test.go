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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6510/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "A")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.IsNegative(), false)
	test.ExpectEquality(t, r8.Label(), "A")
	test.ExpectEquality(t, r8.String(), "A=00")

	// loading then addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), uint8(127))
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), uint8(129))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r8.IsNegative(), true)

	// addition with carry in
	r8.Load(1)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(3))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, false)

	// addition producing carry out
	r8.Load(255)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(0))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// carry in on its own causes carry out
	r8.Load(255)
	carry, _ = r8.Add(0, true)
	test.ExpectEquality(t, r8.Value(), uint8(0))
	test.ExpectEquality(t, carry, true)

	// subtraction with borrow. carry set means no borrow
	r8.Load(11)
	carry, overflow = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(10))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)

	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(255))
	test.ExpectEquality(t, carry, false)

	r8.Load(10)
	carry, _ = r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), uint8(8))
	test.ExpectEquality(t, carry, true)

	// signed overflow on subtraction
	r8.Load(0x80)
	_, overflow = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectEquality(t, overflow, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	test.ExpectEquality(t, r8.IsBitV(), true)
}

func TestShiftAndRotate(t *testing.T) {
	r8 := registers.NewRegister(0xff, "A")

	test.ExpectEquality(t, r8.ASL(), true)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))

	test.ExpectEquality(t, r8.LSR(), false)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))

	test.ExpectEquality(t, r8.ROL(true), false)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))

	test.ExpectEquality(t, r8.ROR(false), true)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))

	test.ExpectEquality(t, r8.ROR(true), true)
	test.ExpectEquality(t, r8.Value(), uint8(0xbf))

	r8.Load(0x01)
	test.ExpectEquality(t, r8.LSR(), true)
	test.ExpectEquality(t, r8.IsZero(), true)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))
	test.ExpectEquality(t, pc.Label(), "PC")

	test.ExpectEquality(t, pc.Add(2), false)
	test.ExpectEquality(t, pc.Address(), uint16(2))

	pc.Load(0xffff)
	test.ExpectEquality(t, pc.String(), "ffff")
	test.ExpectEquality(t, pc.Add(1), true)
	test.ExpectEquality(t, pc.Address(), uint16(0))
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister

	// unused bit is always set
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	sr.InterruptDisable = true
	sr.Carry = true
	test.ExpectEquality(t, sr.Value(), uint8(0x25))
	test.ExpectEquality(t, sr.String(), "sv-bdIzC")

	for v := range 256 {
		sr.FromValue(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)|registers.UnusedMask)
	}

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
}
