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

// Package hardware assembles the emulated P2000T storage subsystem: the
// mini-cassette deck, its read clock and the I/O port decoding that presents
// them to the Z80. The P2000 type is the root of the assembly and everything
// else hangs off it.
//
// The emulation is single-threaded. Clock phases (Step) and port accesses
// must come from the same goroutine; the Run() function serialises
// real-time phases with whatever its continue check wants to do. There are
// no locks in the hardware tree and sharing a P2000 between goroutines
// without external synchronisation will end badly.
//
// The CPU is not part of this subsystem. Programs drive the ports directly,
// the way the monitor ROM would.
package hardware
