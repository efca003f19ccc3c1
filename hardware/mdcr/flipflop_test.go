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

package mdcr_test

import (
	"testing"

	"github.com/jetsetilly/gopher2000/hardware/mdcr"
	"github.com/jetsetilly/gopher2000/test"
)

func TestFlipFlopParity(t *testing.T) {
	ff := &mdcr.FlipFlop{}

	// the clock starts low
	test.ExpectFailure(t, ff.Level())

	// the level after n toggles depends only on the parity of n
	for i := 1; i <= 100; i++ {
		ff.Toggle()
		test.ExpectEquality(t, ff.Level(), i%2 == 1, i)
	}
	test.ExpectEquality(t, ff.PhaseCount(), int64(100))
}

func TestFlipFlopReset(t *testing.T) {
	ff := &mdcr.FlipFlop{}

	ff.Toggle()
	ff.Toggle()
	ff.Toggle()
	test.ExpectSuccess(t, ff.Level())

	ff.Reset()
	test.ExpectFailure(t, ff.Level())
	test.ExpectEquality(t, ff.PhaseCount(), int64(0))
}
