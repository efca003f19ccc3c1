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
	"github.com/jetsetilly/gopher2000/hardware/mdcr"
	"github.com/jetsetilly/gopher2000/hardware/ports"
)

// State stores the subsystem state. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	Deck  *mdcr.Drive
	Clock *mdcr.FlipFlop
	Ports *ports.Ports
}

// Snapshot creates a copy of a previously snapshotted State.
func (s *State) Snapshot() *State {
	return &State{
		Deck:  s.Deck.Snapshot(),
		Clock: s.Clock.Snapshot(),
		Ports: s.Ports.Snapshot(),
	}
}

// Snapshot the state of the subsystem.
func (p2 *P2000) Snapshot() *State {
	return &State{
		Deck:  p2.Deck.Snapshot(),
		Clock: p2.Clock.Snapshot(),
		Ports: p2.Ports.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the machine.
func (p2 *P2000) Plumb(state *State) {
	if state == nil {
		panic("p2000: cannot plumb in a nil state")
	}

	// snapshot the state again before plumbing. the machine must not mutate
	// what the caller has stored
	p2.Deck = state.Deck.Snapshot()
	p2.Clock = state.Clock.Snapshot()
	p2.Ports = state.Ports.Snapshot()

	p2.Deck.Plumb(p2.Env)
	p2.Ports.Plumb(p2.Env, p2.Deck, p2.Clock)
}
