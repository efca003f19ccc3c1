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

// Package clocks defines the constant values that define the speed of the
// clocks in the P2000T microcomputer.
//
// Values taken from the P2000T service documentation.
package clocks

import "time"

// Main CPU clock in MHz.
const Z80 = 2.5

// The mini-cassette deck is not driven from the CPU crystal. The deck
// electronics produce a clock phase transition roughly every 166 microseconds,
// giving the quoted transfer rate of 6000 bits/s.
const (
	PhaseInterval = 166 * time.Microsecond

	// effective transfer rate of the deck in bits per second
	BitRate = int(time.Second / PhaseInterval)
)
