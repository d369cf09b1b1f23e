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

import (
	"strings"
)

// Bit masks for the flags in the byte representation of the status register.
const (
	SignMask             uint8 = 0x80
	OverflowMask         uint8 = 0x40
	UnusedMask           uint8 = 0x20
	BreakMask            uint8 = 0x10
	DecimalModeMask      uint8 = 0x08
	InterruptDisableMask uint8 = 0x04
	ZeroMask             uint8 = 0x02
	CarryMask            uint8 = 0x01
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The unused bit is not represented but is always set in the value
// returned by Value().
type StatusRegister struct {
	Sign     bool
	Overflow bool

	// Break is not a flag in the hardware. It reflects the B bit of the most
	// recent status value pushed by BRK or pulled by PLP or RTI. It remains
	// set throughout a BRK handler until one of those instructions, or a
	// Reset, changes it
	Break bool

	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string of letters. An upper case letter
// indicates a set flag. The unused bit is shown as a hyphen.
func (sr StatusRegister) String() string {
	flags := []struct {
		set  bool
		name rune
	}{
		{sr.Sign, 's'},
		{sr.Overflow, 'v'},
		{false, '-'},
		{sr.Break, 'b'},
		{sr.DecimalMode, 'd'},
		{sr.InterruptDisable, 'i'},
		{sr.Zero, 'z'},
		{sr.Carry, 'c'},
	}

	s := strings.Builder{}
	for _, f := range flags {
		if f.set {
			s.WriteRune(f.name - 'a' + 'A')
		} else {
			s.WriteRune(f.name)
		}
	}
	return s.String()
}

// Reset clears all flags.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value converts the StatusRegister into a byte suitable for pushing onto
// the stack.
func (sr StatusRegister) Value() uint8 {
	v := UnusedMask

	if sr.Sign {
		v |= SignMask
	}
	if sr.Overflow {
		v |= OverflowMask
	}
	if sr.Break {
		v |= BreakMask
	}
	if sr.DecimalMode {
		v |= DecimalModeMask
	}
	if sr.InterruptDisable {
		v |= InterruptDisableMask
	}
	if sr.Zero {
		v |= ZeroMask
	}
	if sr.Carry {
		v |= CarryMask
	}

	return v
}

// FromValue converts a byte (taken from the stack for example) into the
// StatusRegister.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&SignMask == SignMask
	sr.Overflow = v&OverflowMask == OverflowMask
	sr.Break = v&BreakMask == BreakMask
	sr.DecimalMode = v&DecimalModeMask == DecimalModeMask
	sr.InterruptDisable = v&InterruptDisableMask == InterruptDisableMask
	sr.Zero = v&ZeroMask == ZeroMask
	sr.Carry = v&CarryMask == CarryMask
}
