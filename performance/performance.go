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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher2000/cassetteloader"
	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware"
	"github.com/jetsetilly/gopher2000/hardware/mdcr"
	"github.com/jetsetilly/gopher2000/hardware/ports"
	"github.com/jetsetilly/gopher2000/monitor/govern"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulation, optionally with the supplied
// recording spooled onto the deck.
//
// Emulation will run for the specified duration and will create a cpu
// profile, a memory profile, a trace (or a combination of those) as defined
// by the Profile argument.
func Check(output io.Writer, profile Profile, cl cassetteloader.Loader, uncapped bool, duration string) error {
	var err error

	env, err := environment.NewEnvironment(environment.Performance, nil)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	p2, err := hardware.NewP2000(env, nil)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// set phase cap on deck clock
	p2.SetPhaseCap(!uncapped)

	// spool recording onto the deck. without a recording the check runs with
	// the blank cassette the deck starts out with
	if cl.Filename != "" {
		if !cl.HasLoaded() {
			err = cl.Load()
			if err != nil {
				return fmt.Errorf("performance: %w", err)
			}
		}
		bits, err := cl.Bits(env)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		p2.AttachCassette(bits)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// get starting phase count (should be 0)
	startPhases := p2.Clock.PhaseCount()

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		// force a two second leadtime to allow the phase rate to settle down
		// and then restart timer for the specified duration
		//
		// the two second leadtime will put false on the timerChan. the
		// conclusion of the rest of the time will put true on the timerChan.
		go func() {
			time.AfterFunc(2*time.Second, func() {
				// signal parent function that 2 second leadtime has elapsed
				timerChan <- false

				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check for end of measurement period every PerformanceBrake
		// clock phases. checking the timerChan is relatively expensive
		performanceBrake := 0

		// run until specified time elapses
		err := p2.Run(func() (govern.State, error) {
			// keep the tape moving with the same port writes the machine's
			// ROM makes during a block transfer. the forward motor is
			// re-triggered for every bit written; when the tape runs onto
			// the far leader the deck is rewound and the tape free-runs back
			// to the near leader before writing resumes
			if p2.Ports.Read(0x20)&ports.CASEND == 0 {
				if p2.Deck.Motor() == mdcr.Reverse {
					// back at the near leader. stopping the motor puts the
					// head back over the recordable part of the tape
					p2.Ports.Write(0x10, 0x00)
				} else {
					p2.Ports.Write(0x10, ports.CASREW)
				}
			} else if p2.Deck.Motor() != mdcr.Reverse {
				ctrl := ports.CASCMD | ports.CASFOR
				if p2.Clock.PhaseCount()&0x01 == 0x01 {
					ctrl |= ports.CASDAT
				}
				p2.Ports.Write(0x10, ctrl)
			}

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					// timerChan has returned true, which means measurement
					// period has finished, return govern.Ending to cause
					// p2.Run() to return
					if v {
						return govern.Ending, timedOut
					}

					// timerChan has returned false which indicates that the
					// leadtime has concluded. this means the performance
					// measurement has begun and we should record the start
					// phase
					startPhases = p2.Clock.PhaseCount()
				default:
				}
			}

			return govern.Running, nil
		})
		if err != nil && !errors.Is(err, timedOut) {
			return err
		}
		return nil
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// get ending phase count
	endPhases := p2.Clock.PhaseCount()

	// calculate performance
	numPhases := endPhases - startPhases
	rate, accuracy := CalcPhaseRate(numPhases, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f phases per second (%d phases in %.2f seconds) %.1f%%\n", rate, numPhases, dur.Seconds(), accuracy)))

	return nil
}
