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

// Package monitor is the interactive front-end to the deck emulation. It
// takes the place of the machine's monitor ROM, issuing motor commands and
// bit transfers by hand rather than at 6000 times a second.
//
// Commands are read from an implementation of the terminal.Terminal
// interface and dispatched against the P2000 type from the hardware
// package. The RUN command couples the terminal to the machine's real-time
// ticker until interrupted or until the tape runs off the reel.
//
// Type HELP at the monitor prompt for the command list.
package monitor
