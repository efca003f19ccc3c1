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

package monitor

import (
	"sort"
	"strings"
)

// tabCompletion implements the terminal.TabCompletion interface for the
// monitor's flat command set. Repeated completion of the same input cycles
// through the matching commands.
type tabCompletion struct {
	options []string
	matches []string
	last    string
	idx     int
}

func newTabCompletion() *tabCompletion {
	tc := &tabCompletion{
		options: make([]string, 0, len(help)),
	}
	for c := range help {
		tc.options = append(tc.options, c)
	}
	sort.Strings(tc.options)
	return tc
}

// Complete implements the terminal.TabCompletion interface. Only the command
// word is completed; arguments are left alone.
func (tc *tabCompletion) Complete(input string) string {
	if strings.ContainsRune(strings.TrimSpace(input), ' ') {
		return input
	}

	if input == tc.last && len(tc.matches) > 0 {
		tc.idx = (tc.idx + 1) % len(tc.matches)
	} else {
		prefix := strings.ToUpper(strings.TrimSpace(input))
		tc.matches = tc.matches[:0]
		for _, c := range tc.options {
			if strings.HasPrefix(c, prefix) {
				tc.matches = append(tc.matches, c)
			}
		}
		tc.idx = 0
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.last = tc.matches[tc.idx] + " "
	return tc.last
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.last = ""
	tc.matches = tc.matches[:0]
	tc.idx = 0
}
