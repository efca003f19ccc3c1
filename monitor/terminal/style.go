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

package terminal

// Style is used to identify the category of text being sent to the
// terminal. Terminals are free to interpret the style however is
// appropriate, including ignoring it entirely.
type Style int

// List of valid Style values.
const (
	// the prompt and the echo of user input
	StylePrompt Style = iota
	StyleInput

	// help text
	StyleHelp

	// responses to commands
	StyleFeedback

	// the result of a deck step
	StyleDeckStep

	// register and machine state summaries
	StyleRegister

	// errors from the monitor or the machine
	StyleError

	// entries rescued from the central log
	StyleLog
)
