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

import (
	"github.com/jetsetilly/gopher6510/curated"
)

// Sentinel error patterns returned by IsValid().
const (
	NotFinalised  = "execution: result not finalised"
	InvalidResult = "execution: %s"
)

// the number of cycles taken by the reset and interrupt sequences
const eventCycles = 7

// the number of cycles taken by an undefined opcode treated as a no-op
const undefinedCycles = 2

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinalised)
	}

	if r.Event != NoEvent {
		if r.Defn != nil {
			return curated.Errorf(InvalidResult, "event with instruction definition")
		}
		if r.Cycles != eventCycles {
			return curated.Errorf(InvalidResult, "wrong number of cycles for event")
		}
		return nil
	}

	// undefined opcodes are either executed as a single byte no-op or not at
	// all, in which case the result will have an error
	if r.Defn == nil {
		if r.ByteCount != 1 {
			return curated.Errorf(InvalidResult, "undefined opcode with more than one byte")
		}
		if r.Error == "" && r.Cycles != undefinedCycles {
			return curated.Errorf(InvalidResult, "wrong number of cycles for undefined opcode")
		}
		if r.Error != "" && r.Cycles != 0 {
			return curated.Errorf(InvalidResult, "cycles consumed by faulting opcode")
		}
		return nil
	}

	if r.Defn.OpCode != r.OpCode {
		return curated.Errorf(InvalidResult, "opcode does not match definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf(InvalidResult, "unexpected page fault")
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf(InvalidResult, "branch success for non-branch instruction")
	}

	expected := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			expected++
		} else if r.PageFault {
			return curated.Errorf(InvalidResult, "page fault for unsuccessful branch")
		}
	}
	if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("execution: number of cycles wrong for opcode %#04x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
