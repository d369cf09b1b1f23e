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

// Package script runs Lua scripts against the emulated CPU and memory.
//
// Scripts see three globals in addition to the standard Lua libraries. The
// cpu table controls the CPU:
//
//	cpu.step([n])   execute n instructions (default 1) and return the cycles consumed
//	cpu.reset()     reset the CPU
//	cpu.halt()      toggle the halted state and return the new state
//	cpu.halted()    return the halted state
//	cpu.irq()       request an IRQ and return whether it was taken
//	cpu.nmi()       request an NMI
//	cpu.reg(name)   return the value of a register: pc, a, x, y, sp, sr, cycles
//	cpu.state()     return the CPU state as a string
//
// The mem table accesses memory:
//
//	mem.peek(addr)
//	mem.poke(addr, value)
//
// And log(tag, msg) adds an entry to the central log. If only one argument
// is given then the entry is tagged "script".
//
// The Lua print function writes to the output given to NewScript().
package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher6510/curated"
	"github.com/jetsetilly/gopher6510/hardware/cpu"
	"github.com/jetsetilly/gopher6510/logger"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the curated error pattern for errors raised while running a
// script.
const ScriptError = "script: %v"

// Memory defines the memory operations available to scripts.
type Memory interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Script is used to run Lua scripts. A new Lua state is created for every
// script that is run.
type Script struct {
	mc     *cpu.CPU
	mem    Memory
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(mc *cpu.CPU, mem Memory, output io.Writer) *Script {
	return &Script{
		mc:     mc,
		mem:    mem,
		output: output,
	}
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	L := scr.newState()
	defer L.Close()

	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua script in src.
func (scr *Script) RunString(src string) error {
	L := scr.newState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) newState() *lua.LState {
	L := lua.NewState()

	cpuTbl := L.NewTable()
	L.SetFuncs(cpuTbl, map[string]lua.LGFunction{
		"step":   scr.step,
		"reset":  scr.reset,
		"halt":   scr.halt,
		"halted": scr.halted,
		"irq":    scr.irq,
		"nmi":    scr.nmi,
		"reg":    scr.reg,
		"state":  scr.state,
	})
	L.SetGlobal("cpu", cpuTbl)

	memTbl := L.NewTable()
	L.SetFuncs(memTbl, map[string]lua.LGFunction{
		"peek": scr.peek,
		"poke": scr.poke,
	})
	L.SetGlobal("mem", memTbl)

	L.SetGlobal("log", L.NewFunction(scr.log))
	L.SetGlobal("print", L.NewFunction(scr.print))

	return L
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "number of instructions must not be negative")
		return 0
	}

	cycles := 0
	for range n {
		c, err := scr.mc.Step()
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}
		cycles += c
	}

	L.Push(lua.LNumber(cycles))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	scr.mc.Reset()
	return 0
}

func (scr *Script) halt(L *lua.LState) int {
	scr.mc.HaltResume()
	L.Push(lua.LBool(scr.mc.Halted()))
	return 1
}

func (scr *Script) halted(L *lua.LState) int {
	L.Push(lua.LBool(scr.mc.Halted()))
	return 1
}

func (scr *Script) irq(L *lua.LState) int {
	L.Push(lua.LBool(scr.mc.IRQ()))
	return 1
}

func (scr *Script) nmi(L *lua.LState) int {
	scr.mc.NMI()
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	var v lua.LNumber

	switch strings.ToLower(L.CheckString(1)) {
	case "pc":
		v = lua.LNumber(scr.mc.PC.Address())
	case "a":
		v = lua.LNumber(scr.mc.A.Value())
	case "x":
		v = lua.LNumber(scr.mc.X.Value())
	case "y":
		v = lua.LNumber(scr.mc.Y.Value())
	case "sp":
		v = lua.LNumber(scr.mc.SP.Value())
	case "sr":
		v = lua.LNumber(scr.mc.Status.Value())
	case "cycles":
		v = lua.LNumber(scr.mc.Cycles)
	default:
		L.ArgError(1, "unknown register")
		return 0
	}

	L.Push(v)
	return 1
}

func (scr *Script) state(L *lua.LState) int {
	L.Push(lua.LString(scr.mc.String()))
	return 1
}

func (scr *Script) checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range (%d)", a))
	}
	return uint16(a)
}

func (scr *Script) peek(L *lua.LState) int {
	a := scr.checkAddress(L, 1)
	L.Push(lua.LNumber(scr.mem.Peek(a)))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	a := scr.checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range (%d)", v))
		return 0
	}
	scr.mem.Poke(a, uint8(v))
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	if L.GetTop() < 2 {
		logger.Log(logger.Allow, "script", L.CheckString(1))
		return 0
	}
	logger.Log(logger.Allow, L.CheckString(1), L.CheckString(2))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	if scr.output == nil {
		return 0
	}

	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	io.WriteString(scr.output, strings.Join(s, "\t"))
	io.WriteString(scr.output, "\n")

	return 0
}
