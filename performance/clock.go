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

package performance

// PALClock is the clock speed of the CPU in a PAL machine, in MHz.
const PALClock = 0.985248

// CalcMHz takes the number of cycles and duration (in seconds) and returns
// the effective clock speed in MHz and the accuracy of that value as a
// percentage of the PAL clock speed.
func CalcMHz(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / PALClock
	return mhz, accuracy
}
