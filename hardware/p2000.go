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

package hardware

import (
	"time"

	"github.com/jetsetilly/gopher2000/curated"
	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware/clocks"
	"github.com/jetsetilly/gopher2000/hardware/mdcr"
	"github.com/jetsetilly/gopher2000/hardware/ports"
	"github.com/jetsetilly/gopher2000/monitor/govern"
)

// The continueCheck() function is called once per clock phase, six thousand
// times a second. That is cheap enough for most checks but the
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// P2000 is the nexus of the emulated storage subsystem.
type P2000 struct {
	Env *environment.Environment

	Deck  *mdcr.Drive
	Clock *mdcr.FlipFlop
	Ports *ports.Ports

	// whether Run() paces clock phases at the deck's real-time rate
	phaseCap bool
}

// NewP2000 is the preferred method of initialisation for the P2000 type. The
// deck starts out with a blank cassette inserted, sized per the deck
// capacity preference.
//
// The keyboard argument can be nil, in which case a keyboard with no keys
// pressed is wired in.
func NewP2000(env *environment.Environment, keyboard ports.KeyboardMatrix) (*P2000, error) {
	if keyboard == nil {
		keyboard = ports.NoKeys{}
	}

	p2 := &P2000{
		Env:      env,
		Clock:    &mdcr.FlipFlop{},
		phaseCap: true,
	}

	p2.Deck = mdcr.NewDrive(env, env.Prefs.DeckCapacity.Get().(int))
	p2.Ports = ports.NewPorts(env, p2.Deck, p2.Clock, keyboard)

	return p2, nil
}

// Reset the subsystem to its power-on state. The cassette stays in the deck
// and the head stays where it is; a reset stops the motor, restarts the read
// clock and clears the port registers, which is what mains power does to the
// real machine.
func (p2 *P2000) Reset() error {
	p2.Deck.Stop()
	p2.Clock.Reset()
	p2.Ports.Reset()
	return nil
}

// AttachCassette replaces the contents of the tape in the deck with a loaded
// cassette image. The head moves to the load point.
func (p2 *P2000) AttachCassette(bits []bool) {
	p2.Deck.Attach(bits)
}

// InsertBlankCassette puts a fresh blank cassette in the deck, sized per the
// deck capacity preference.
func (p2 *P2000) InsertBlankCassette() {
	p2.Deck = mdcr.NewDrive(p2.Env, p2.Env.Prefs.DeckCapacity.Get().(int))
	p2.Ports.Plumb(p2.Env, p2.Deck, p2.Clock)
}

// SetPhaseCap controls whether Run() paces clock phases at the deck's
// real-time rate. Running uncapped is only useful for performance
// measurement. Returns the previous value.
func (p2 *P2000) SetPhaseCap(limit bool) bool {
	prev := p2.phaseCap
	p2.phaseCap = limit
	return prev
}

// Step the subsystem a single clock phase: the read clock toggles and then a
// free-running tape moves one bit. The order matters; the ROM samples the
// clock edge before the data line.
func (p2 *P2000) Step() {
	p2.Clock.Toggle()
	p2.Deck.Step()
}

// Run drives the subsystem with clock phases at the deck's real-time rate,
// or flat out if the phase cap has been lifted with SetPhaseCap(). The
// continueCheck() function is polled after every phase; have it return
// govern.Ending to stop the run. A nil continueCheck runs forever.
func (p2 *P2000) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	tck := time.NewTicker(clocks.PhaseInterval)
	defer tck.Stop()

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			if p2.phaseCap {
				<-tck.C
			}
			p2.Step()
		case govern.Paused:
			// pausing still consumes ticks so that polling continueCheck()
			// doesn't turn into a busy loop
			<-tck.C
		default:
			return curated.Errorf("p2000: unsupported emulation state (%v) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
