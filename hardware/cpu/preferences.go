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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher6510/logger"
	"github.com/jetsetilly/gopher6510/prefs"
)

// PrefsFile is the name of the preferences file in the resource directory.
const PrefsFile = "preferences"

// UndefinedPolicy determines how the CPU reacts to an opcode that has no
// definition in the instruction table.
type UndefinedPolicy int

// List of valid UndefinedPolicy values.
const (
	// halt the CPU with an UndefinedOpcode error. the PC is left pointing at
	// the undefined opcode
	FaultOnUndefined UndefinedPolicy = iota

	// treat the undefined opcode as a single byte, two cycle NOP
	NopOnUndefined
)

func (p UndefinedPolicy) String() string {
	switch p {
	case FaultOnUndefined:
		return "fault"
	case NopOnUndefined:
		return "nop"
	}
	return "unknown"
}

// Preferences for the CPU. The zero value is not usable. Use NewPreferences().
type Preferences struct {
	dsk *prefs.Disk

	// initialise A, X and Y to random values on reset
	RandomState prefs.Bool

	// one of "fault" or "nop". see UndefinedPolicy type
	Undefined prefs.String

	policy UndefinedPolicy
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path argument is the location of the preferences
// file. An empty path means that the preferences will not be loaded from or
// saved to disk.
//
// Values are set to their defaults and then loaded from disk.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Undefined.SetOptions(FaultOnUndefined.String(), NopOnUndefined.String())
	p.Undefined.SetHookPost(func(v prefs.Value) error {
		switch v.(string) {
		case NopOnUndefined.String():
			p.policy = NopOnUndefined
		default:
			p.policy = FaultOnUndefined
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}
	err = p.dsk.Add("cpu.randomState", &p.RandomState)
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}
	err = p.dsk.Add("cpu.undefined", &p.Undefined)
	if err != nil {
		return nil, fmt.Errorf("cpu: %w", err)
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.Undefined.Set(FaultOnUndefined.String())
}

// Load preferences from disk. Does nothing if the preferences are not backed
// by a file.
func (p *Preferences) Load() error {
	if p.dsk == nil || p.dsk.Path() == "" {
		return nil
	}
	if err := p.dsk.Load(); err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	return nil
}

// Save preferences to disk. Does nothing if the preferences are not backed by
// a file.
func (p *Preferences) Save() error {
	if p.dsk.Path() == "" {
		return nil
	}
	if err := p.dsk.Save(); err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	logger.Logf(logger.Allow, "cpu", "preferences saved to %s", p.dsk.Path())
	return nil
}

// Set the preference identified by key.
func (p *Preferences) Set(key string, value prefs.Value) error {
	if err := p.dsk.Set(key, value); err != nil {
		return fmt.Errorf("cpu: %w", err)
	}
	return nil
}

// Get the string representation of the preference identified by key.
func (p *Preferences) Get(key string) (string, bool) {
	return p.dsk.Get(key)
}

// Keys returns the sorted list of preference keys.
func (p *Preferences) Keys() []string {
	return p.dsk.Keys()
}

// UndefinedPolicy returns the current policy for undefined opcodes.
func (p *Preferences) UndefinedPolicy() UndefinedPolicy {
	return p.policy
}
