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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Source is implemented by any type that can report the amount of time that
// has elapsed in the emulation. For the CPU this is the number of cycles
// executed.
type Source interface {
	Elapsed() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	src Source

	// use zero seed rather than the random base seed
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(src Source) *Random {
	return &Random{
		src: src,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	var seed uint64
	if !rnd.ZeroSeed {
		seed = baseSeed
	}
	return rand.New(rand.NewPCG(seed, rnd.src.Elapsed()))
}

// Intn returns a random number in the range 0 to n-1. The same number will be
// returned for the same elapsed time.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}

// Uint8 returns a random byte.
func (rnd *Random) Uint8() uint8 {
	return uint8(rnd.rand().UintN(0x100))
}
