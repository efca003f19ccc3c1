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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher2000/cassetteloader"
	"github.com/jetsetilly/gopher2000/curated"
	"github.com/jetsetilly/gopher2000/monitor/terminal"
	"github.com/jetsetilly/gopher2000/resources"
)

// UnrecognisedCommand is the error returned for input that is not in the
// command set.
const UnrecognisedCommand = "monitor: unrecognised command (%v)"

// help summaries for every command in the monitor.
var help = map[string]string{
	"STATUS":  "display deck, clock and register state",
	"STEP":    "advance the emulation by one or more clock phases",
	"RUN":     "run the emulation in real time until ctrl-c or the end of the tape",
	"FORWARD": "wind the tape forward one bit",
	"REWIND":  "start the motor winding in reverse",
	"STOP":    "stop the motor",
	"READ":    "read the bit under the head",
	"WRITE":   "write a bit (0 or 1) at the head position",
	"PEEK":    "read a bit from anywhere on the tape",
	"POKE":    "write a bit anywhere on the tape",
	"DUMP":    "display a stretch of tape contents",
	"LOAD":    "load a recording and spool it onto the deck",
	"NEW":     "spool a fresh cassette onto the deck (optionally ALT or NOISE)",
	"RESET":   "reset the subsystem. the cassette stays on the deck",
	"VIZ":     "write a graph of the machine state to a dot file",
	"HELP":    "list commands or describe a single command",
	"QUIT":    "leave the monitor",
}

func bitString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseBit(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, curated.Errorf("monitor: a bit value must be 0 or 1 (not %v)", s)
}

// dispatch a tokenised command. The returned boolean is false when the
// monitor loop should end.
func (mon *Monitor) dispatch(cmd []string) (bool, error) {
	// an empty line steps the emulation, the finger-tapping rhythm of
	// stepping through a transfer one phase at a time
	if len(cmd) == 0 {
		cmd = []string{"STEP"}
	}

	switch strings.ToUpper(cmd[0]) {
	case "STATUS":
		mon.printStatus()

	case "STEP":
		n := 1
		if len(cmd) > 1 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil || n < 1 {
				return true, curated.Errorf("monitor: STEP requires a positive number of phases (not %v)", cmd[1])
			}
		}
		for i := 0; i < n; i++ {
			mon.p2.Step()
		}
		mon.term.TermPrintLine(terminal.StyleDeckStep,
			fmt.Sprintf("%s; %s", mon.p2.Deck.String(), mon.p2.Clock.String()))

	case "RUN":
		return true, mon.run()

	case "FORWARD":
		mon.p2.Deck.Forward()
		mon.term.TermPrintLine(terminal.StyleDeckStep, mon.p2.Deck.String())

	case "REWIND":
		mon.p2.Deck.Reverse()
		mon.term.TermPrintLine(terminal.StyleFeedback, "motor winding in reverse. STEP or RUN to move the tape")

	case "STOP":
		mon.p2.Deck.Stop()
		mon.term.TermPrintLine(terminal.StyleDeckStep, mon.p2.Deck.String())

	case "READ":
		mon.term.TermPrintLine(terminal.StyleRegister,
			fmt.Sprintf("bit under the head: %s", bitString(mon.p2.Deck.ReadBit())))

	case "WRITE":
		if len(cmd) != 2 {
			return true, curated.Errorf("monitor: WRITE requires a bit value (0 or 1)")
		}
		v, err := parseBit(cmd[1])
		if err != nil {
			return true, err
		}
		mon.p2.Deck.WriteBit(v)
		mon.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("%s written at position %d", bitString(v), mon.p2.Deck.Position()))

	case "PEEK":
		if len(cmd) != 2 {
			return true, curated.Errorf("monitor: PEEK requires a tape position")
		}
		pos, err := strconv.Atoi(cmd[1])
		if err != nil {
			return true, curated.Errorf("monitor: not a tape position (%v)", cmd[1])
		}
		b, err := mon.p2.Deck.Peek(pos)
		if err != nil {
			return true, err
		}
		mon.term.TermPrintLine(terminal.StyleRegister, fmt.Sprintf("%d: %s", pos, bitString(b)))

	case "POKE":
		if len(cmd) != 3 {
			return true, curated.Errorf("monitor: POKE requires a tape position and a bit value")
		}
		pos, err := strconv.Atoi(cmd[1])
		if err != nil {
			return true, curated.Errorf("monitor: not a tape position (%v)", cmd[1])
		}
		v, err := parseBit(cmd[2])
		if err != nil {
			return true, err
		}
		if err := mon.p2.Deck.Poke(pos, v); err != nil {
			return true, err
		}
		mon.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%s written at position %d", bitString(v), pos))

	case "DUMP":
		return true, mon.dump(cmd[1:])

	case "LOAD":
		if len(cmd) < 2 || len(cmd) > 3 {
			return true, curated.Errorf("monitor: LOAD requires a filename and an optional format")
		}
		format := "AUTO"
		if len(cmd) == 3 {
			format = cmd[2]
		}

		cl := cassetteloader.NewLoader(cmd[1], format)
		n, err := mon.Attach(cl)
		if err != nil {
			return true, err
		}
		mon.term.TermPrintLine(terminal.StyleFeedback,
			fmt.Sprintf("%s: %d bits spooled onto the deck", mon.attached, n))

	case "NEW":
		usable := mon.p2.Deck.Capacity() - 1
		if len(cmd) == 1 {
			mon.p2.InsertBlankCassette()
			mon.term.TermPrintLine(terminal.StyleFeedback, "blank cassette spooled onto the deck")
		} else {
			switch strings.ToUpper(cmd[1]) {
			case "ALT":
				mon.p2.AttachCassette(cassetteloader.AlternatingPattern(usable))
				mon.term.TermPrintLine(terminal.StyleFeedback, "alternating test pattern spooled onto the deck")
			case "NOISE":
				mon.p2.AttachCassette(cassetteloader.Noise(usable, mon.env.Prefs.RandSrc))
				mon.term.TermPrintLine(terminal.StyleFeedback, "noise spooled onto the deck")
			default:
				return true, curated.Errorf("monitor: NEW pattern must be ALT or NOISE (not %v)", cmd[1])
			}
		}
		mon.attached = ""

	case "RESET":
		if err := mon.p2.Reset(); err != nil {
			return true, err
		}
		mon.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case "VIZ":
		fn := "monitor.dot"
		if len(cmd) == 2 {
			fn = cmd[1]
		}
		path, err := resources.JoinPath("viz", fn)
		if err != nil {
			return true, curated.Errorf("monitor: %v", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return true, curated.Errorf("monitor: %v", err)
		}
		memviz.Map(f, mon.p2.Snapshot())
		if err := f.Close(); err != nil {
			return true, curated.Errorf("monitor: %v", err)
		}
		mon.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("state graph written to %s", path))

	case "HELP":
		if len(cmd) == 2 {
			c := strings.ToUpper(cmd[1])
			if h, ok := help[c]; ok {
				mon.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%-8s %s", c, h))
			} else {
				return true, curated.Errorf(UnrecognisedCommand, cmd[1])
			}
		} else {
			keys := make([]string, 0, len(help))
			for c := range help {
				keys = append(keys, c)
			}
			sort.Strings(keys)
			for _, c := range keys {
				mon.term.TermPrintLine(terminal.StyleHelp, fmt.Sprintf("%-8s %s", c, help[c]))
			}
		}

	case "QUIT":
		return false, nil

	default:
		return true, curated.Errorf(UnrecognisedCommand, cmd[0])
	}

	return true, nil
}

// dump prints a stretch of tape, sixty-four bits to the row in groups of
// eight. With no arguments the stretch starts under the head. The stretch
// is clipped to the usable area of the tape.
func (mon *Monitor) dump(args []string) error {
	from := mon.p2.Deck.Position()
	to := from + 255

	var err error
	if len(args) > 0 {
		from, err = strconv.Atoi(args[0])
		if err != nil {
			return curated.Errorf("monitor: not a tape position (%v)", args[0])
		}
		to = from + 255
	}
	if len(args) > 1 {
		to, err = strconv.Atoi(args[1])
		if err != nil {
			return curated.Errorf("monitor: not a tape position (%v)", args[1])
		}
	}
	if len(args) > 2 {
		return curated.Errorf("monitor: DUMP takes at most a start and an end position")
	}

	if from < 1 {
		from = 1
	}
	if last := mon.p2.Deck.Capacity() - 1; to > last {
		to = last
	}
	if to < from {
		return curated.Errorf("monitor: nothing to dump between %d and %d", from, to)
	}

	var row strings.Builder
	for p := from; p <= to; p++ {
		if row.Len() == 0 {
			fmt.Fprintf(&row, "%6d  ", p)
		}

		b, err := mon.p2.Deck.Peek(p)
		if err != nil {
			return err
		}
		row.WriteString(bitString(b))

		if (p-from)%64 == 63 || p == to {
			mon.term.TermPrintLine(terminal.StyleRegister, row.String())
			row.Reset()
		} else if (p-from)%8 == 7 {
			row.WriteString(" ")
		}
	}

	return nil
}
