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

// Package ports implements the P2000T's I/O port space as seen by the Z80.
// Ports are decoded on the high nibble of the port number:
//
//	0x00 to 0x0f    read    keyboard matrix
//	0x10 to 0x1f    write   system control (cassette motor/write, KEYINT, PRNOUT)
//	0x20 to 0x2f    read    cassette deck status
//	0x30 to 0x3f    write   scroll register
//	0x50 to 0x5f    write   beeper
//	0x70 to 0x7f    write   DISAS (display disable)
//	0x88 to 0x90    write   CTC / floppy expansion (stored, uninterpreted)
//	0x94            write   RS-232 expansion (stored, uninterpreted)
//
// The status port deserves a note. The deck's signal lines are wired
// active-low so the whole byte is inverted between the status register and
// the data bus. The monitor ROM expects the inverted sense; dropping the
// inversion makes every status check in the ROM read backwards.
//
// Reads of write-only or unmapped ports return 0xff, the floating bus value.
// Writes to unmapped ports are dropped. Neither case is an error; errors are
// reserved for the Peek() and Poke() debugger surface.
//
// The keyboard matrix and the printer lines belong to collaborators outside
// this package. See the KeyboardMatrix and Printer interfaces.
package ports
