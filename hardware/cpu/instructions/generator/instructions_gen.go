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

// Package main generates the table of instruction definitions for the
// instructions package from the CSV file in the same directory. It is run
// with go generate from the instructions package directory.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"
)

const definitionsCSVFile = "generator/instructions.csv"
const generatedGoFile = "table.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// the table of instruction definitions for the 6510. undefined opcodes are nil\n" +
	"var definitions = [256]*Definition{\n"

const trailingBoilerPlate = "}\n"

// the Go identifier for each addressing mode in the CSV file and the number of
// bytes an instruction using that mode occupies
var addressingModes = map[string]struct {
	ident string
	bytes int
}{
	"IMPLIED":             {"Implied", 1},
	"ACCUMULATOR":         {"Accumulator", 1},
	"IMMEDIATE":           {"Immediate", 2},
	"RELATIVE":            {"Relative", 2},
	"ABSOLUTE":            {"Absolute", 3},
	"ZERO_PAGE":           {"ZeroPage", 2},
	"INDIRECT":            {"Indirect", 3},
	"INDEXED_INDIRECT":    {"IndexedIndirect", 2},
	"INDIRECT_INDEXED":    {"IndirectIndexed", 2},
	"ABSOLUTE_INDEXED_X":  {"AbsoluteIndexedX", 3},
	"ABSOLUTE_INDEXED_Y":  {"AbsoluteIndexedY", 3},
	"ZERO_PAGE_INDEXED_X": {"ZeroPageIndexedX", 2},
	"ZERO_PAGE_INDEXED_Y": {"ZeroPageIndexedY", 2},
}

var effects = map[string]string{
	"READ":       "Read",
	"WRITE":      "Write",
	"RMW":        "RMW",
	"FLOW":       "Flow",
	"SUBROUTINE": "Subroutine",
	"INTERRUPT":  "Interrupt",
}

type definition struct {
	opcode        uint8
	operator      string
	bytes         int
	cycles        int
	mode          string
	pageSensitive bool
	effect        string
}

func (d definition) String() string {
	return fmt.Sprintf("{OpCode: %#04x, Operator: %s, Bytes: %d, Cycles: %d, AddressingMode: %s, PageSensitive: %v, Effect: %s},",
		d.opcode, d.operator, d.bytes, d.cycles, d.mode, d.pageSensitive, d.effect)
}

func parseCSV() (map[uint8]definition, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return nil, fmt.Errorf("error opening instruction definitions: %w", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// the effect field is optional
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]definition)

	for {
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvr.FieldPos(0)

		if len(rec) != 5 && len(rec) != 6 {
			return nil, fmt.Errorf("wrong number of fields in instruction definition [line %d]", line)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		var defn definition

		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.opcode = uint8(n)

		if _, ok := deftable[defn.opcode]; ok {
			return nil, fmt.Errorf("duplicate opcode (%#04x) [line %d]", defn.opcode, line)
		}

		// mnemonic to operator identifier. eg. LDA to Lda
		mnemonic := strings.ToUpper(rec[1])
		if len(mnemonic) != 3 {
			return nil, fmt.Errorf("invalid mnemonic for %#04x (%s) [line %d]", defn.opcode, rec[1], line)
		}
		defn.operator = mnemonic[:1] + strings.ToLower(mnemonic[1:])

		defn.cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cycle count for %#04x (%s) [line %d]", defn.opcode, rec[2], line)
		}

		am, ok := addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return nil, fmt.Errorf("invalid addressing mode for %#04x (%s) [line %d]", defn.opcode, rec[3], line)
		}
		defn.mode = am.ident
		defn.bytes = am.bytes

		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			defn.pageSensitive = true
		case "FALSE":
			defn.pageSensitive = false
		default:
			return nil, fmt.Errorf("invalid page sensitivity for %#04x (%s) [line %d]", defn.opcode, rec[4], line)
		}

		defn.effect = effects["READ"]
		if len(rec) == 6 {
			defn.effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return nil, fmt.Errorf("unknown effect for %#04x (%s) [line %d]", defn.opcode, rec[5], line)
			}
		}

		deftable[defn.opcode] = defn
	}

	return deftable, nil
}

func generate(deftable map[uint8]definition) ([]byte, error) {
	s := strings.Builder{}
	s.WriteString(leadingBoilerPlate)
	for opcode := range 256 {
		if defn, ok := deftable[uint8(opcode)]; ok {
			s.WriteString(defn.String())
		} else {
			s.WriteString("nil,")
		}
		s.WriteString("\n")
	}
	s.WriteString(trailingBoilerPlate)

	return format.Source([]byte(s.String()))
}

func main() {
	deftable, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	output, err := generate(deftable)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, output, 0o644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	fmt.Printf("%d opcodes defined, %d undefined\n", len(deftable), 256-len(deftable))
}
