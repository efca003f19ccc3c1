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

package cassetteloader

import (
	"math/rand"
)

// AlternatingPattern returns a bit sequence of alternating ones and zeros,
// starting with a one. Useful for azimuth style deck checks where the
// content of the tape doesn't matter but the cadence does.
func AlternatingPattern(n int) []bool {
	bits := make([]bool, n)
	for i := 0; i < n; i += 2 {
		bits[i] = true
	}
	return bits
}

// Noise returns a bit sequence of random levels drawn from src.
func Noise(n int, src *rand.Rand) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = src.Intn(2) == 1
	}
	return bits
}
