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

package monitor_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware"
	"github.com/jetsetilly/gopher2000/hardware/mdcr"
	"github.com/jetsetilly/gopher2000/monitor"
	"github.com/jetsetilly/gopher2000/monitor/terminal"
	"github.com/jetsetilly/gopher2000/test"
)

// scriptTerm implements the terminal.Terminal interface, feeding a fixed
// script of commands to the monitor and collecting everything it prints.
type scriptTerm struct {
	script []string
	idx    int
	output strings.Builder
}

func (trm *scriptTerm) Initialise() error {
	return nil
}

func (trm *scriptTerm) CleanUp() {
}

func (trm *scriptTerm) RegisterTabCompletion(terminal.TabCompletion) {
}

func (trm *scriptTerm) Silence(bool) {
}

func (trm *scriptTerm) TermPrintLine(_ terminal.Style, s string) {
	trm.output.WriteString(s)
	trm.output.WriteString("\n")
}

func (trm *scriptTerm) TermRead(buffer []byte, _ terminal.Prompt) (int, error) {
	if trm.idx >= len(trm.script) {
		return 0, io.EOF
	}
	s := trm.script[trm.idx]
	trm.idx++
	copy(buffer, s)
	return len(s), nil
}

func (trm *scriptTerm) IsInteractive() bool {
	return false
}

func (trm *scriptTerm) contains(s string) bool {
	return strings.Contains(trm.output.String(), s)
}

func testSession(t *testing.T, script []string) (*hardware.P2000, *scriptTerm) {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()
	env.Prefs.DeckCapacity.Set(4096)

	p2, err := hardware.NewP2000(env, nil)
	test.DemandSuccess(t, err)

	trm := &scriptTerm{script: script}

	mon, err := monitor.NewMonitor(env, p2, trm)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mon.Run())

	return p2, trm
}

func TestScriptedSession(t *testing.T) {
	p2, trm := testSession(t, []string{
		"STATUS",
		"REWIND",
		"STEP 511",
		"STOP",
		"READ",
		"WRITE 1",
		"READ",
		"QUIT",
	})

	test.ExpectEquality(t, p2.Deck.Position(), 1)
	test.ExpectEquality(t, p2.Deck.Motor(), mdcr.Stopped)

	test.ExpectEquality(t, trm.contains("stopped: position 512 of 4096"), true)
	test.ExpectEquality(t, trm.contains("reverse: position 1 of 4096"), true)
	test.ExpectEquality(t, trm.contains("bit under the head: 0"), true)
	test.ExpectEquality(t, trm.contains("1 written at position 1"), true)
	test.ExpectEquality(t, trm.contains("bit under the head: 1"), true)
}

func TestEmptyInputSteps(t *testing.T) {
	p2, _ := testSession(t, []string{"", "", "QUIT"})
	test.ExpectEquality(t, p2.Clock.PhaseCount(), int64(2))
}

func TestUnrecognisedCommand(t *testing.T) {
	_, trm := testSession(t, []string{"FLOOB", "QUIT"})
	test.ExpectEquality(t, trm.contains("unrecognised command (FLOOB)"), true)
}

func TestPokePeekDump(t *testing.T) {
	_, trm := testSession(t, []string{
		"POKE 10 1",
		"PEEK 10",
		"DUMP 1 64",
		"QUIT",
	})

	test.ExpectEquality(t, trm.contains("10: 1"), true)
	test.ExpectEquality(t, trm.contains("00000000 01000000"), true)
}

func TestLoadRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "image.cas")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa5, 0x01}, 0600))

	p2, trm := testSession(t, []string{
		"LOAD " + fn,
		"STATUS",
		"QUIT",
	})

	test.ExpectEquality(t, p2.Deck.Position(), 1)
	test.ExpectEquality(t, p2.Deck.ReadBit(), true)

	test.ExpectEquality(t, trm.contains("16 bits spooled onto the deck"), true)
	test.ExpectEquality(t, trm.contains("recording: image"), true)
}

func TestNewPatterns(t *testing.T) {
	p2, trm := testSession(t, []string{
		"NEW ALT",
		"READ",
		"QUIT",
	})

	// the alternating pattern starts with a one at position 1
	test.ExpectEquality(t, p2.Deck.ReadBit(), true)
	test.ExpectEquality(t, trm.contains("alternating test pattern"), true)
}

func TestRunToEndOfTape(t *testing.T) {
	p2, trm := testSession(t, []string{
		"REWIND",
		"RUN",
		"STOP",
		"QUIT",
	})

	test.ExpectEquality(t, p2.Deck.Position(), 1)
	test.ExpectEquality(t, trm.contains("end of tape"), true)
}
