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

// Package terminal defines the operations required for command-line
// interaction with the monitor.
//
// For flexibility, terminal interaction is split into two sub-interfaces,
// Input and Output. In practice implementations will implement both, along
// with the lifecycle functions of the full Terminal interface.
package terminal

// UserInterrupt is returned by TermRead() when the user has interrupted
// input, with ctrl-c for example.
const UserInterrupt = "user interrupt"

// Prompt specifies the text and style of the prompt shown by TermRead().
type Prompt struct {
	Content string
	Style   Style
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead waits for input from the user, writes it into the buffer and
	// returns the number of bytes written.
	TermRead(buffer []byte, prompt Prompt) (int, error)

	// IsInteractive returns true if input is from a real user rather than
	// from a script.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	// TermPrintLine writes a complete line to the terminal in the given
	// style.
	TermPrintLine(style Style, s string)

	// Silence all output except error messages.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion of input.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}

// Terminal defines the operations required by the monitor's user interface.
type Terminal interface {
	// Initialise the terminal. a terminal may not be used before this
	// function has been called.
	Initialise() error

	// CleanUp restores the terminal to the state it was in before
	// Initialise().
	CleanUp()

	// RegisterTabCompletion attaches an implementation of TabCompletion to
	// the terminal. implementations may ignore it.
	RegisterTabCompletion(TabCompletion)

	Input
	Output
}
