// This file is part of Gopher2000.
//
// Gopher2000 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2000 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2000.  If not, see <https://www.gnu.org/licenses/>.

package performance

import "github.com/jetsetilly/gopher2000/hardware/clocks"

// CalcPhaseRate takes the number of clock phases and duration (in seconds)
// and returns the phases-per-second and the accuracy of that value as a
// percentage of the rate of the real deck.
func CalcPhaseRate(numPhases int64, duration float64) (rate float64, accuracy float64) {
	rate = float64(numPhases) / duration
	accuracy = 100 * rate / float64(clocks.BitRate)
	return rate, accuracy
}
