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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/hardware/memory"
	"github.com/jetsetilly/gopher6510/logger"
	"github.com/jetsetilly/gopher6510/modalflag"
	"github.com/jetsetilly/gopher6510/monitor"
	"github.com/jetsetilly/gopher6510/monitor/script"
	"github.com/jetsetilly/gopher6510/monitor/terminal"
	"github.com/jetsetilly/gopher6510/monitor/terminal/colorterm"
	"github.com/jetsetilly/gopher6510/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher6510/paths"
	"github.com/jetsetilly/gopher6510/performance"
	"github.com/jetsetilly/gopher6510/prefs"
	"github.com/jetsetilly/gopher6510/statsview"
	"github.com/jetsetilly/gopher6510/version"
	"golang.org/x/term"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("MONITOR", "SCRIPT", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "MONITOR":
		err = monitorMode(md)

	case "SCRIPT":
		err = scriptMode(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// flags common to all modes
type machineFlags struct {
	noboot    *bool
	undefined *string
	prefs     *string
	log       *bool
	stats     *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		noboot:    md.AddBool("noboot", false, "do not load the boot fragment"),
		undefined: md.AddString("undefined", "", "policy for undefined opcodes: FAULT, NOP"),
		prefs:     md.AddString("prefs", "", "preferences to apply for this session (eg. \"cpu.randomState::true\")"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		stats:     md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available())),
	}
}

// create memory and a CPU attached to it, configured according to the
// command line flags
func newMachine(flgs machineFlags) (*cpu.CPU, *memory.Memory, error) {
	if *flgs.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *flgs.stats {
		if !statsview.Available() {
			return nil, nil, fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	// command line preferences are applied when the preferences are loaded
	if *flgs.prefs != "" {
		prefs.PushCommandLineStack(*flgs.prefs)
	}
	if *flgs.undefined != "" {
		prefs.PushCommandLineStack(fmt.Sprintf("cpu.undefined::%s", strings.ToLower(*flgs.undefined)))
	}

	pth, err := paths.ResourcePath("", cpu.PrefsFile)
	if err != nil {
		return nil, nil, err
	}
	p, err := cpu.NewPreferences(pth)
	if err != nil {
		return nil, nil, err
	}

	mem := memory.NewMemory()
	if !*flgs.noboot {
		monitor.LoadBootFragment(mem)
	}

	mc := cpu.NewCPU(mem)
	mc.Prefs = p
	mc.Reset()

	return mc, mem, nil
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mc, mem, err := newMachine(flgs)
	if err != nil {
		return err
	}

	var trm terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(nil, nil)
	case "COLOR":
		// the color terminal requires a real terminal device
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(nil, nil)
		}
	}

	return monitor.NewMonitor(mc, mem, trm).Run()
}

func scriptMode(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script required for %s mode", md)
	case 1:
		mc, mem, err := newMachine(flgs)
		if err != nil {
			return err
		}
		return script.NewScript(mc, mem, os.Stdout).RunFile(md.GetArg(0))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	flgs := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mc, _, err := newMachine(flgs)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, *profile, mc, *duration)
}
