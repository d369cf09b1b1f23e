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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns intended to be checked for should be stored as
// exported string constants. For example, the cpu package declares:
//
//	const UndefinedOpcode = "cpu: undefined opcode (%#04x) at (%#06x)"
//
// and callers can then test for the condition with:
//
//	if curated.Is(err, cpu.UndefinedOpcode) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is created by using a curated error as one of the
// values of another curated error:
//
//	e := curated.Errorf(cpu.UndefinedOpcode, 0x02, 0xfce2)
//	f := curated.Errorf("monitor: %v", e)
//
//	curated.Has(f, cpu.UndefinedOpcode) // true
//	curated.Is(f, cpu.UndefinedOpcode)  // false
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: halted"))
//
// results in the message "cpu: halted" and not "cpu: cpu: halted".
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
