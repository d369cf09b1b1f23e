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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6510/hardware/cpu/instructions"
)

// Event indicates that the Result describes something other than the
// execution of an instruction.
type Event int

// List of valid Event values.
const (
	NoEvent Event = iota
	ResetEvent
	IRQEvent
	NMIEvent
)

func (e Event) String() string {
	switch e {
	case ResetEvent:
		return "RESET"
	case IRQEvent:
		return "IRQ"
	case NMIEvent:
		return "NMI"
	}
	return ""
}

// Result records the state and outcome of the most recent CPU instruction or
// event.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the opcode read from Address. for undefined opcodes Defn is nil and
	// this is the only indication of what was read
	OpCode uint8

	// the instruction definition. nil if the opcode is undefined or if the
	// result describes an Event
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. will equal
	// Defn.Bytes once the instruction has completed
	ByteCount int

	// the operand bytes of the instruction, little-endian. only the first
	// ByteCount-1 bytes are meaningful
	InstructionData uint16

	// the number of cycles consumed
	Cycles int

	// whether an extra cycle was required because of a page crossing
	PageFault bool

	// whether a branch instruction succeeded
	BranchSuccess bool

	// a known CPU defect was triggered
	CPUBug Bug

	// the result describes a reset or interrupt sequence rather than an
	// instruction
	Event Event

	// whether this data has been finalised
	Final bool

	// an error message for an opcode that could not be executed
	Error string
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Mnemonic returns the mnemonic of the instruction or the name of the event.
func (r Result) Mnemonic() string {
	if r.Event != NoEvent {
		return r.Event.String()
	}
	if r.Defn == nil {
		return instructions.Nil.String()
	}
	return r.Defn.Operator.String()
}

// Operand returns the operand formatted according to the addressing mode.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	var data string
	switch r.Defn.Bytes {
	case 2:
		data = fmt.Sprintf("$%02x", uint8(r.InstructionData))
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#%s", data)
	case instructions.Relative:
		// show the branch destination rather than the offset
		dest := r.Address + 2 + uint16(int8(r.InstructionData))
		return fmt.Sprintf("$%04x", dest)
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		return fmt.Sprintf("%s,Y", data)
	}

	return data
}

func (r Result) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Mnemonic()))
	if r.Defn == nil && r.Event == NoEvent {
		s.WriteString(fmt.Sprintf(" (%02x)", r.OpCode))
	}
	if op := r.Operand(); op != "" {
		s.WriteString(" ")
		s.WriteString(op)
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}

	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}
	if r.Error != "" {
		s.WriteString(fmt.Sprintf(" ! %s", r.Error))
	}

	return s.String()
}
