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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/gopher2000/cassetteloader"
	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware"
	"github.com/jetsetilly/gopher2000/hardware/ports"
	"github.com/jetsetilly/gopher2000/logger"
	"github.com/jetsetilly/gopher2000/modalflag"
	"github.com/jetsetilly/gopher2000/monitor"
	"github.com/jetsetilly/gopher2000/monitor/govern"
	"github.com/jetsetilly/gopher2000/monitor/terminal"
	"github.com/jetsetilly/gopher2000/monitor/terminal/colorterm"
	"github.com/jetsetilly/gopher2000/monitor/terminal/plainterm"
	"github.com/jetsetilly/gopher2000/performance"
	"github.com/jetsetilly/gopher2000/prefs"
	"github.com/jetsetilly/gopher2000/statsview"
	"github.com/jetsetilly/gopher2000/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "MONITOR":
		err = mon(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// prepare the environment and deck common to the run and monitor modes. a
// capacity of zero leaves the deck capacity preference as it was found.
func newMachine(capacity int) (*hardware.P2000, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	if capacity > 0 {
		err = env.Prefs.DeckCapacity.Set(capacity)
		if err != nil {
			return nil, err
		}
	}

	return hardware.NewP2000(env, nil)
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "force recording format: CAS, WAV, MP3")
	capacity := md.AddInt("capacity", 0, "length of a blank cassette in bits (0 uses the saved preference)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	uncapped := md.AddBool("uncapped", false, "wind the tape flat out rather than at the real deck's rate")
	clPrefs := md.AddString("prefs", "", "preference values for the duration of the program (semi-colon separated key::value pairs)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *clPrefs != "" {
		prefs.PushCommandLineStack(*clPrefs)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				fmt.Printf("! unused preference values: %s\n", s)
			}
		}()
	}

	p2, err := newMachine(*capacity)
	if err != nil {
		return err
	}

	p2.SetPhaseCap(!*uncapped)

	switch len(md.RemainingArgs()) {
	case 0:
		// with no recording the tape winds through the blank cassette the
		// deck starts out with
	case 1:
		cl := cassetteloader.NewLoader(md.GetArg(0), *format)
		err = cl.Load()
		if err != nil {
			return err
		}
		bits, err := cl.Bits(p2.Env)
		if err != nil {
			return err
		}
		p2.AttachCassette(bits)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// the default interrupt handler is good enough for the run mode. the
	// signal is polled in the continueCheck below
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	startTime := time.Now()

	// wind the tape from the load point to the far end, re-triggering the
	// forward motor every phase the way the machine's ROM does during a read
	err = p2.Run(func() (govern.State, error) {
		select {
		case <-intChan:
			fmt.Println("\r")
			return govern.Ending, nil
		default:
		}

		if p2.Ports.Read(0x20)&ports.CASEND == 0 {
			return govern.Ending, nil
		}
		p2.Ports.Write(0x10, ports.CASFOR)

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	phases := p2.Clock.PhaseCount()
	seconds := time.Since(startTime).Seconds()
	fmt.Printf("%d phases in %.02f seconds (%.01f per second)\n", phases, seconds, float64(phases)/seconds)
	fmt.Println(p2.Deck.String())

	return nil
}

func mon(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "force recording format: CAS, WAV, MP3")
	capacity := md.AddInt("capacity", 0, "length of a blank cassette in bits (0 uses the saved preference)")
	termType := md.AddString("term", "COLOR", "terminal type to use in monitor mode: COLOR, PLAIN")
	clPrefs := md.AddString("prefs", "", "preference values for the duration of the program (semi-colon separated key::value pairs)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *clPrefs != "" {
		prefs.PushCommandLineStack(*clPrefs)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				fmt.Printf("! unused preference values: %s\n", s)
			}
		}()
	}

	p2, err := newMachine(*capacity)
	if err != nil {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = colorterm.NewColorTerminal()
	}

	m, err := monitor.NewMonitor(p2.Env, p2, term)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		// the monitor starts out with a blank cassette on the deck
	case 1:
		cl := cassetteloader.NewLoader(md.GetArg(0), *format)
		_, err = m.Attach(cl)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return m.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", "AUTO", "force recording format: CAS, WAV, MP3")
	uncapped := md.AddBool("uncapped", true, "wind the tape flat out rather than at the real deck's rate")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run through a profiler: CPU, MEM, TRACE, ALL")
	stats := md.AddBool("statsview", false, "run stats server (requires the statsview build constraint)")
	clPrefs := md.AddString("prefs", "", "preference values for the duration of the program (semi-colon separated key::value pairs)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *clPrefs != "" {
		prefs.PushCommandLineStack(*clPrefs)
		defer func() {
			if s := prefs.PopCommandLineStack(); s != "" {
				fmt.Printf("! unused preference values: %s\n", s)
			}
		}()
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var cl cassetteloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		// with no recording the check runs with a blank cassette
	case 1:
		cl = cassetteloader.NewLoader(md.GetArg(0), *format)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return performance.Check(md.Output, prf, cl, *uncapped, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display vcs revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, _ := version.Version()
	fmt.Println(version.ApplicationName, ver)
	if *revision {
		fmt.Println(rev)
	}

	return nil
}
