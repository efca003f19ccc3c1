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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/gopher2000/cassetteloader"
	"github.com/jetsetilly/gopher2000/curated"
	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware"
	"github.com/jetsetilly/gopher2000/logger"
	"github.com/jetsetilly/gopher2000/monitor/govern"
	"github.com/jetsetilly/gopher2000/monitor/terminal"
)

// Monitor is the heart of the interactive drive monitor.
type Monitor struct {
	env  *environment.Environment
	p2   *hardware.P2000
	term terminal.Terminal

	sig chan os.Signal

	// name of the most recently loaded recording, for the STATUS command
	attached string
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type. The terminal is initialised when Run() is called, not before.
func NewMonitor(env *environment.Environment, p2 *hardware.P2000, term terminal.Terminal) (*Monitor, error) {
	if term == nil {
		return nil, curated.Errorf("monitor: a terminal is required")
	}

	mon := &Monitor{
		env:  env,
		p2:   p2,
		term: term,
		sig:  make(chan os.Signal, 1),
	}

	return mon, nil
}

// Attach loads a recording and spools it onto the deck, returning the number
// of bits in the recording. It can be called before Run(); the LOAD command
// does the same thing from inside the monitor.
func (mon *Monitor) Attach(cl cassetteloader.Loader) (int, error) {
	if !cl.HasLoaded() {
		if err := cl.Load(); err != nil {
			return 0, err
		}
	}

	bits, err := cl.Bits(mon.env)
	if err != nil {
		return 0, err
	}

	mon.p2.AttachCassette(bits)
	mon.attached = cl.ShortName()

	return len(bits), nil
}

// logEcho forwards freshly minted log entries to the terminal.
type logEcho struct {
	output terminal.Output
}

func (e *logEcho) Write(p []byte) (int, error) {
	e.output.TermPrintLine(terminal.StyleLog, strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// Run the monitor loop until the QUIT command, the end of input or an
// unrecoverable error.
func (mon *Monitor) Run() error {
	err := mon.term.Initialise()
	if err != nil {
		return curated.Errorf("monitor: %v", err)
	}
	defer mon.term.CleanUp()

	mon.term.RegisterTabCompletion(newTabCompletion())

	// anything logged while the monitor is running appears in the terminal
	logger.SetEcho(&logEcho{output: mon.term}, true)
	defer logger.SetEcho(nil, false)

	signal.Notify(mon.sig, os.Interrupt)
	defer signal.Stop(mon.sig)

	buffer := make([]byte, 255)

	for {
		prompt := terminal.Prompt{
			Content: fmt.Sprintf("[%d] > ", mon.p2.Deck.Position()),
			Style:   terminal.StylePrompt,
		}

		n, err := mon.term.TermRead(buffer, prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				mon.term.TermPrintLine(terminal.StyleFeedback, "use QUIT to leave the monitor")
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		cont, err := mon.dispatch(strings.Fields(string(buffer[:n])))
		if err != nil {
			mon.term.TermPrintLine(terminal.StyleError, err.Error())
		}
		if !cont {
			return nil
		}
	}
}

// run couples the terminal to the machine's real-time ticker. The run ends
// on ctrl-c or when the tape runs off the reel.
func (mon *Monitor) run() error {
	mon.term.TermPrintLine(terminal.StyleFeedback, "deck running (ctrl-c to stop)")

	phases := 0
	start := time.Now()

	err := mon.p2.Run(func() (govern.State, error) {
		phases++

		select {
		case <-mon.sig:
			return govern.Ending, nil
		default:
		}

		if !mon.p2.Deck.Valid() {
			mon.term.TermPrintLine(terminal.StyleFeedback, "end of tape")
			return govern.Ending, nil
		}

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	dur := time.Since(start).Seconds()
	mon.term.TermPrintLine(terminal.StyleFeedback,
		fmt.Sprintf("%d phases in %.02f seconds (%.01f per second)", phases, dur, float64(phases)/dur))
	mon.term.TermPrintLine(terminal.StyleRegister, mon.p2.Deck.String())

	return nil
}

func (mon *Monitor) printStatus() {
	mon.term.TermPrintLine(terminal.StyleRegister, mon.p2.Deck.String())
	mon.term.TermPrintLine(terminal.StyleRegister, mon.p2.Clock.String())
	mon.term.TermPrintLine(terminal.StyleRegister,
		fmt.Sprintf("control: %#02x; status: %#02x", mon.p2.Ports.Control(), mon.p2.Ports.Read(0x20)))
	if mon.attached != "" {
		mon.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("recording: %s", mon.attached))
	}
}
