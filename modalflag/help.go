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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// print help message for the current mode to the Output writer
func (md *Modes) help() {
	output := md.Output
	if output == nil {
		output = os.Stdout
	}

	var numFlags int
	md.flags.VisitAll(func(_ *flag.Flag) {
		numFlags++
	})

	if numFlags == 0 && len(md.subModes) == 0 {
		io.WriteString(output, "No help available")
		if len(md.path) > 0 {
			fmt.Fprintf(output, " for %s", md.Path())
		}
		io.WriteString(output, "\n")
		return
	}

	if len(md.path) > 0 {
		fmt.Fprintf(output, "Usage for %s mode:\n", md.Path())
	} else {
		io.WriteString(output, "Usage:\n")
	}

	if numFlags > 0 {
		md.flags.SetOutput(output)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)
	}

	if len(md.subModes) > 0 {
		if numFlags > 0 {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", md.additionalHelp)
	}
}
