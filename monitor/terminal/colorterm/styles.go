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

package colorterm

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jetsetilly/gopher2000/monitor/terminal"
)

type styles struct {
	prompt   lipgloss.Style
	input    lipgloss.Style
	help     lipgloss.Style
	feedback lipgloss.Style
	deckStep lipgloss.Style
	register lipgloss.Style
	err      lipgloss.Style
	log      lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)

func newStyles() styles {
	return styles{
		prompt:   lipgloss.NewStyle().Bold(true),
		input:    lipgloss.NewStyle(),
		help:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		feedback: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		deckStep: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		register: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1)),
		log:      lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}

// render the string in the lipgloss style corresponding to the terminal
// style.
func (s styles) render(sty terminal.Style, txt string) string {
	switch sty {
	case terminal.StylePrompt:
		return s.prompt.Render(txt)
	case terminal.StyleInput:
		return s.input.Render(txt)
	case terminal.StyleHelp:
		return s.help.Render(txt)
	case terminal.StyleFeedback:
		return s.feedback.Render(txt)
	case terminal.StyleDeckStep:
		return s.deckStep.Render(txt)
	case terminal.StyleRegister:
		return s.register.Render(txt)
	case terminal.StyleError:
		return s.err.Render(txt)
	case terminal.StyleLog:
		return s.log.Render(txt)
	}
	return txt
}
