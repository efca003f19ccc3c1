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

package mdcr

import "fmt"

// FlipFlop is the read clock presented by the deck electronics on the status
// port. The monitor ROM synchronises tape transfer to its transitions.
type FlipFlop struct {
	level bool
	count int64
}

func (ff *FlipFlop) String() string {
	lvl := "low"
	if ff.level {
		lvl = "high"
	}
	return fmt.Sprintf("clock: %s (%d transitions)", lvl, ff.count)
}

// Toggle inverts the clock level. Called once per clock phase.
func (ff *FlipFlop) Toggle() {
	ff.level = !ff.level
	ff.count++
}

// Level returns the current clock level.
func (ff *FlipFlop) Level() bool {
	return ff.level
}

// PhaseCount returns the number of times the clock has toggled since the
// last reset.
func (ff *FlipFlop) PhaseCount() int64 {
	return ff.count
}

// Reset the clock to the low level and zero the phase count.
func (ff *FlipFlop) Reset() {
	ff.level = false
	ff.count = 0
}

// Snapshot creates a copy of the FlipFlop in its current state.
func (ff *FlipFlop) Snapshot() *FlipFlop {
	n := *ff
	return &n
}
