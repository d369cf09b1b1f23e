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

package monitor

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher6510/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6510/hardware/cpu/registers"
)

// the parts of the CPU written by the MEMVIZ command. the CPU type itself is
// not used because of the reference to memory
type cpuState struct {
	PC         uint16
	A          uint8
	X          uint8
	Y          uint8
	SP         uint8
	Status     registers.StatusRegister
	Cycles     uint64
	Halted     bool
	LastResult execution.Result
}

func (mon *Monitor) memviz(filename string) error {
	snapshot := mon.mc.Snapshot()
	state := cpuState{
		PC:         snapshot.PC.Address(),
		A:          snapshot.A.Value(),
		X:          snapshot.X.Value(),
		Y:          snapshot.Y.Value(),
		SP:         snapshot.SP.Value(),
		Status:     snapshot.Status,
		Cycles:     snapshot.Cycles,
		Halted:     snapshot.Halted(),
		LastResult: snapshot.LastResult,
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("monitor: memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, &state)

	return nil
}
