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

// Printer is the interface to the serial printer lines. The three input
// lines surface on the status port; the output line is driven by the control
// port.
//
// When no printer is attached the input lines read as inactive.
type Printer interface {
	// the three lines read by the status port
	Input() bool
	Ready() bool
	StrapN() bool

	// Output receives the level of the PRNOUT line after every control port
	// write
	Output(level bool)
}
