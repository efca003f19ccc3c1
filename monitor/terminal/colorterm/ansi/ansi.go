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

// Package ansi holds the ANSI sequences used to control the cursor during
// line editing. Colour and emphasis are handled elsewhere.
package ansi

import "fmt"

// Sequences for controlling the cursor and the current line.
const (
	ClearLine         = "\033[2K"
	CursorStore       = "\033[s"
	CursorRestore     = "\033[u"
	CursorForwardOne  = "\033[1C"
	CursorBackwardOne = "\033[1D"
)

// CursorMove returns the sequence moving the cursor n characters along the
// line. Negative values move the cursor backwards. The empty string is
// returned for a move of zero.
func CursorMove(n int) string {
	if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}
