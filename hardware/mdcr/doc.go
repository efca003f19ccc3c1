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

// Package mdcr implements the Mini Digital Cassette Recorder that is built
// into the right-hand side of the P2000T console. The deck stores data on
// small C0110 style cassettes and is the machine's only standard storage
// device.
//
// The emulation models the tape the way the deck electronics see it: a long
// run of individually addressable bits with a read/write head somewhere over
// it. The Tape type holds the bits and the head position. Positions are
// 1-indexed; a position of zero means the head has run off the start of the
// tape and a position equal to the tape capacity means it has run off the
// end. In either of those states the head is over leader rather than oxide
// and reads return false while writes are dropped.
//
// The Drive type adds the motor. The motor is always in one of three states,
// stopped, forward or reverse, although the forward state is never observable
// from outside the package. The deck mechanism moves the tape forward in
// single bit increments, stopping after each one, while reverse winding is
// free-running and the tape moves for as long as the motor turns. Step() is
// the tick that moves a free-running tape; the caller is expected to call it
// once per clock phase.
//
// The FlipFlop type is the read clock seen by the machine on the status
// port. The deck electronics toggle it every clock phase and the monitor ROM
// synchronises tape reads to its transitions.
//
// The register interface that drives the deck from the Z80's I/O space is in
// the ports package.
package mdcr
