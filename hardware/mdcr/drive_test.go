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

	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware/mdcr"
	"github.com/jetsetilly/gopher2000/test"
)

func testEnvironment(t *testing.T) *environment.Environment {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)

	// tests must not be affected by whatever is in the user's prefs file
	env.Normalise()

	return env
}

func TestNewDrive(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)

	test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)
	test.ExpectEquality(t, drv.Capacity(), 4096)
	test.ExpectEquality(t, drv.Position(), 512)
	test.ExpectSuccess(t, drv.Valid())

	// a fresh tape reads all zeros by default
	test.ExpectFailure(t, drv.ReadBit())
}

func TestReverseRunsOffTheReel(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)

	drv.Reverse()
	test.ExpectEquality(t, drv.Motor(), mdcr.Reverse)

	// more steps than there is tape between the head and the start of the
	// reel
	for range 600 {
		drv.Step()
	}

	// the first 512 steps wind back to the leader, the remaining steps do
	// nothing
	test.ExpectEquality(t, drv.Position(), 0)
	test.ExpectFailure(t, drv.Valid())

	// stopping pulls the head back over oxide
	drv.Stop()
	test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)
	test.ExpectEquality(t, drv.Position(), 1)
	test.ExpectSuccess(t, drv.Valid())
}

func TestStopIsIdempotent(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)

	drv.Stop()
	p := drv.Position()

	drv.Stop()
	drv.Stop()
	test.ExpectEquality(t, drv.Position(), p)
	test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)
}

func TestForwardAlwaysStops(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)

	for range 100 {
		drv.Forward()
		test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)
	}
	test.ExpectEquality(t, drv.Position(), 612)
}

func TestForwardAfterReverse(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)

	// winding forward while the motor is set to reverse: the forward step
	// wins and the motor is left stopped
	drv.Reverse()
	drv.Forward()
	test.ExpectEquality(t, drv.Position(), 513)
	test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)

	// with the motor stopped, stepping does not move the tape
	drv.Step()
	test.ExpectEquality(t, drv.Position(), 513)
}

func TestForwardAtEndOfTape(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 64)

	// short tape so the preferred park position is clamped
	test.ExpectEquality(t, drv.Position(), 32)

	for range 100 {
		drv.Forward()
	}

	// the head does not advance past the end-of-tape leader
	test.ExpectEquality(t, drv.Position(), 64)
	test.ExpectFailure(t, drv.Valid())

	drv.Stop()
	test.ExpectEquality(t, drv.Position(), 63)
	test.ExpectSuccess(t, drv.Valid())
}

func TestReadWriteRoundTrip(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)

	pattern := []bool{true, false, true, true, false, false, true, false}

	// write the pattern walking forward
	start := drv.Position()
	for _, b := range pattern {
		drv.WriteBit(b)
		drv.Forward()
	}

	// rewind to the start of the pattern
	drv.Reverse()
	for drv.Position() > start {
		drv.Step()
	}
	drv.Stop()

	// and read it back
	for _, b := range pattern {
		test.ExpectEquality(t, drv.ReadBit(), b)
		drv.Forward()
	}
}

func TestAttach(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 64)

	// an image longer than the tape
	image := make([]bool, 100)
	for i := range image {
		image[i] = i%2 == 0
	}
	drv.Attach(image)

	// the head is at the load point and the motor stopped
	test.ExpectEquality(t, drv.Position(), 1)
	test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)
	test.ExpectSuccess(t, drv.Valid())

	// the bits that fit on the tape were attached
	for i := 1; i < drv.Capacity(); i++ {
		v, err := drv.Peek(i)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, (i-1)%2 == 0, i)
	}
}

func TestUnformattedNoise(t *testing.T) {
	env := testEnvironment(t)
	env.Prefs.RandomState.Set(true)

	drv := mdcr.NewDrive(env, 4096)

	// with randstate enabled a fresh tape is noise rather than zeros
	n := 0
	for i := 1; i < drv.Capacity(); i++ {
		v, err := drv.Peek(i)
		test.DemandSuccess(t, err)
		if v {
			n++
		}
	}
	test.ExpectInequality(t, n, 0)
}

func TestSnapshot(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)

	drv.WriteBit(true)
	snap := drv.Snapshot()

	// changes after the snapshot do not affect the copy
	drv.WriteBit(false)
	drv.Forward()

	test.ExpectEquality(t, snap.Position(), 512)
	test.ExpectEquality(t, snap.ReadBit(), true)
	test.ExpectEquality(t, drv.Position(), 513)
}
