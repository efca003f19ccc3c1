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

package ports

// Bits of the system control port at 0x10. Mnemonics are the signal names
// used in the P2000T service documentation.
const (
	CASDAT uint8 = 0x01 // data bit presented to the write head
	CASCMD uint8 = 0x02 // write command. latches CASDAT onto the tape
	CASREW uint8 = 0x04 // run the deck motor in reverse
	CASFOR uint8 = 0x08 // wind the tape forward one bit
	KEYINT uint8 = 0x40 // keyboard interrupt enable
	PRNOUT uint8 = 0x80 // serial printer output line
)

// Bits of the deck status port at 0x20. The port is wired active-low; these
// masks describe the assembled byte before it is inverted onto the data bus.
const (
	PINPUT uint8 = 0x01 // serial printer input line
	PREADY uint8 = 0x02 // printer ready
	STRAPN uint8 = 0x04 // strap N
	CASENB uint8 = 0x08 // cassette write enabled
	CASPOS uint8 = 0x10 // cassette in position
	CASEND uint8 = 0x20 // begin or end of tape under the head
	CASCLK uint8 = 0x40 // deck read clock
	CASRDT uint8 = 0x80 // read data. the manual reuses the CASDAT name for this line
)
