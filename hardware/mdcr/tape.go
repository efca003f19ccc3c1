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
	"github.com/jetsetilly/gopher2000/curated"
)

// PositionError is the sentinal error returned by Peek() and Poke() when the
// requested position is not over the oxide area of the tape.
const PositionError = "mdcr: position %d is not on the tape"

// Tape is the bit surface of a mini-cassette. Positions are 1-indexed. A
// position of 0 or of Capacity() means the head is over leader at the
// respective end of the tape.
type Tape struct {
	bits     []bool
	position int
}

// NewTape creates a blank tape of the specified capacity. The head is left
// at the start-of-tape leader.
func NewTape(capacity int) *Tape {
	// a tape needs at least one addressable bit between the two leaders
	if capacity < 2 {
		capacity = 2
	}

	return &Tape{
		bits: make([]bool, capacity),
	}
}

// Snapshot creates a copy of the Tape in its current state.
func (tpe *Tape) Snapshot() *Tape {
	n := *tpe
	n.bits = make([]bool, len(tpe.bits))
	copy(n.bits, tpe.bits)
	return &n
}

// Capacity returns the length of the tape in bits.
func (tpe *Tape) Capacity() int {
	return len(tpe.bits)
}

// Position returns the current head position.
func (tpe *Tape) Position() int {
	return tpe.position
}

// Valid returns true if the head is over the oxide area of the tape. When
// false the head is over leader and the tape must be wound back into range
// before reads and writes mean anything.
func (tpe *Tape) Valid() bool {
	return tpe.position > 0 && tpe.position < len(tpe.bits)
}

// Read returns the bit under the head. Returns false if the head is over
// leader.
func (tpe *Tape) Read() bool {
	return tpe.Valid() && tpe.bits[tpe.position-1]
}

// Write the bit under the head. The write is dropped if the head is over
// leader.
func (tpe *Tape) Write(bit bool) {
	if tpe.Valid() {
		tpe.bits[tpe.position-1] = bit
	}
}

// Peek the bit at an arbitrary tape position without disturbing the head.
func (tpe *Tape) Peek(position int) (bool, error) {
	if position <= 0 || position >= len(tpe.bits) {
		return false, curated.Errorf(PositionError, position)
	}
	return tpe.bits[position-1], nil
}

// Poke a bit to an arbitrary tape position without disturbing the head.
func (tpe *Tape) Poke(position int, bit bool) error {
	if position <= 0 || position >= len(tpe.bits) {
		return curated.Errorf(PositionError, position)
	}
	tpe.bits[position-1] = bit
	return nil
}
