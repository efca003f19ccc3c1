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

// NumKeyboardRows is the number of rows in the P2000T keyboard matrix.
const NumKeyboardRows = 10

// KeyboardMatrix is the interface to the keyboard. Rows of the matrix are
// presented as active-low bytes, a zero bit meaning a pressed key. Scanning
// and debouncing are the implementation's problem, not this package's.
type KeyboardMatrix interface {
	Row(row int) uint8
}

// NoKeys is a KeyboardMatrix with no keys pressed. Useful default for
// harnesses that have no keyboard to offer.
type NoKeys struct{}

// Row implements the KeyboardMatrix interface.
func (k NoKeys) Row(_ int) uint8 {
	return 0xff
}
