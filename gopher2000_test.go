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

package main_test

import (
	"testing"

	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware"
	"github.com/jetsetilly/gopher2000/hardware/mdcr"
	"github.com/jetsetilly/gopher2000/hardware/ports"
)

// shuttle the tape between the reel ends through the port interface. this is
// the hottest loop in the emulation, the same one the performance mode
// measures.
func BenchmarkDeck(b *testing.B) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		b.Fatal(err)
	}
	env.Normalise()

	p2, err := hardware.NewP2000(env, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if p2.Ports.Read(0x20)&ports.CASEND == 0 {
			if p2.Deck.Motor() == mdcr.Reverse {
				p2.Ports.Write(0x10, 0x00)
			} else {
				p2.Ports.Write(0x10, ports.CASREW)
			}
		} else if p2.Deck.Motor() != mdcr.Reverse {
			p2.Ports.Write(0x10, ports.CASCMD|ports.CASFOR)
		}
		p2.Step()
	}
}
