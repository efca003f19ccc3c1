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

import (
	"fmt"

	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/logger"
)

// MotorState records the state of the deck motor.
type MotorState int

// List of valid MotorState values. The Forward state is transient: the deck
// mechanism winds forward a single bit and stops in the same operation, so
// the motor is never observed in the Forward state from outside the package.
const (
	Stopped MotorState = iota
	Forward
	Reverse
)

func (s MotorState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return "unknown"
}

// Drive is the deck mechanism. It owns the inserted Tape exclusively; all
// head movement and all data transfer goes through the Drive.
type Drive struct {
	env *environment.Environment

	tape  *Tape
	motor MotorState
}

// NewDrive is the preferred method of initialisation for the Drive type. The
// drive starts out with a blank cassette of the specified capacity inserted,
// the motor stopped and the head parked at the preferred start position.
func NewDrive(env *environment.Environment, capacity int) *Drive {
	drv := &Drive{
		env:  env,
		tape: NewTape(capacity),
	}

	// park the head, clamping the preferred position for short tapes
	pos := env.Prefs.DeckStartPosition.Get().(int)
	if pos > drv.tape.Capacity()/2 {
		pos = drv.tape.Capacity() / 2
	}
	if pos < 1 {
		pos = 1
	}
	drv.tape.position = pos

	// an unformatted cassette is magnetic noise, not zeros
	if env.Prefs.RandomState.Get().(bool) {
		for i := range drv.tape.bits {
			drv.tape.bits[i] = env.Prefs.RandSrc.Intn(2) == 1
		}
	}

	return drv
}

func (drv *Drive) String() string {
	return fmt.Sprintf("%s: position %d of %d", drv.motor, drv.tape.position, drv.tape.Capacity())
}

// Snapshot creates a copy of the Drive in its current state.
func (drv *Drive) Snapshot() *Drive {
	n := *drv
	n.tape = drv.tape.Snapshot()
	return &n
}

// Plumb a new environment into the Drive. Used after restoring a snapshot.
func (drv *Drive) Plumb(env *environment.Environment) {
	drv.env = env
}

// Attach replaces the tape contents with the bits of a loaded cassette
// image. The head is moved to the load point and the motor stopped. Images
// longer than the tape are truncated.
//
// After attachment the tape contents change only through WriteBit().
func (drv *Drive) Attach(bits []bool) {
	n := copy(drv.tape.bits[:drv.tape.Capacity()-1], bits)
	if n < len(bits) {
		logger.Logf(drv.env, "mdcr", "cassette image truncated from %d to %d bits", len(bits), n)
	}
	for i := n; i < drv.tape.Capacity(); i++ {
		drv.tape.bits[i] = false
	}
	drv.tape.position = 1
	drv.motor = Stopped
}

// Motor returns the current motor state.
func (drv *Drive) Motor() MotorState {
	return drv.motor
}

// Forward winds the tape forward by a single bit. The mechanism stops after
// every forward step so the motor is always left in the stopped state.
func (drv *Drive) Forward() {
	if drv.tape.position < drv.tape.Capacity() {
		drv.tape.position++
	}
	drv.motor = Stopped
}

// Reverse starts the motor winding the tape backwards. The tape keeps moving
// on every Step() until the motor is stopped.
func (drv *Drive) Reverse() {
	drv.motor = Reverse
}

// Stop the motor. If the tape has run off either end of the reel the head is
// pulled back over the nearest oxide position, mirroring what the real
// mechanism's end-of-tape stop does.
func (drv *Drive) Stop() {
	drv.motor = Stopped
	if drv.tape.position == 0 {
		drv.tape.position = 1
	} else if drv.tape.position == drv.tape.Capacity() {
		drv.tape.position = drv.tape.Capacity() - 1
	}
}

// Step moves the tape if the motor is running. Called once per clock phase.
func (drv *Drive) Step() {
	if drv.motor == Reverse && drv.tape.position > 0 {
		drv.tape.position--
	}
}

// ReadBit returns the bit under the head. Returns false if the head is over
// leader.
func (drv *Drive) ReadBit() bool {
	return drv.tape.Read()
}

// WriteBit writes the bit under the head. The write is dropped if the head
// is over leader.
func (drv *Drive) WriteBit(bit bool) {
	drv.tape.Write(bit)
}

// Valid returns true if the head is over the oxide area of the tape.
func (drv *Drive) Valid() bool {
	return drv.tape.Valid()
}

// Position returns the current head position.
func (drv *Drive) Position() int {
	return drv.tape.Position()
}

// Capacity returns the length of the tape in bits.
func (drv *Drive) Capacity() int {
	return drv.tape.Capacity()
}

// Peek the bit at an arbitrary tape position without disturbing the head.
func (drv *Drive) Peek(position int) (bool, error) {
	return drv.tape.Peek(position)
}

// Poke a bit to an arbitrary tape position without disturbing the head.
func (drv *Drive) Poke(position int, bit bool) error {
	return drv.tape.Poke(position, bit)
}
