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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/gopher2000/curated"
	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware/mdcr"
	"github.com/jetsetilly/gopher2000/hardware/ports"
	"github.com/jetsetilly/gopher2000/test"
)

func testEnvironment(t *testing.T) *environment.Environment {
	t.Helper()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	env.Normalise()

	return env
}

func testPorts(t *testing.T) (*ports.Ports, *mdcr.Drive, *mdcr.FlipFlop) {
	t.Helper()

	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)
	ff := &mdcr.FlipFlop{}
	return ports.NewPorts(env, drv, ff, ports.NoKeys{}), drv, ff
}

func TestStatusInversion(t *testing.T) {
	p, drv, ff := testPorts(t)

	// fresh deck: write-enable and in-position are the only active lines.
	// the byte travels over the bus inverted
	test.ExpectEquality(t, p.Read(0x20), ^(ports.CASENB | ports.CASPOS))

	// toggling the clock brings up CASCLK
	ff.Toggle()
	test.ExpectEquality(t, p.Read(0x20), ^(ports.CASENB|ports.CASPOS|ports.CASCLK))

	// a one under the head brings up CASRDT
	drv.WriteBit(true)
	test.ExpectEquality(t, p.Read(0x20), ^(ports.CASENB|ports.CASPOS|ports.CASCLK|ports.CASRDT))

	// and the clock comes down again
	ff.Toggle()
	test.ExpectEquality(t, p.Read(0x20), ^(ports.CASENB|ports.CASPOS|ports.CASRDT))
}

func TestStatusEndOfTape(t *testing.T) {
	p, drv, _ := testPorts(t)

	// run the tape off the start of the reel
	drv.Reverse()
	for drv.Valid() {
		drv.Step()
	}

	test.ExpectEquality(t, p.Read(0x20), ^(ports.CASENB|ports.CASPOS|ports.CASEND))

	// stopping pulls the head back over oxide and the line drops
	drv.Stop()
	test.ExpectEquality(t, p.Read(0x20), ^(ports.CASENB|ports.CASPOS))
}

func TestControlWriteBit(t *testing.T) {
	p, drv, _ := testPorts(t)

	// write command with the data bit set puts a one on the tape
	p.Write(0x10, ports.CASCMD|ports.CASDAT)
	test.ExpectEquality(t, drv.ReadBit(), true)
	test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)

	// write command with the data bit clear puts a zero on the tape
	p.Write(0x10, ports.CASCMD)
	test.ExpectEquality(t, drv.ReadBit(), false)

	// the data bit alone does nothing
	p.Write(0x10, ports.CASCMD|ports.CASDAT)
	p.Write(0x10, ports.CASDAT)
	test.ExpectEquality(t, drv.ReadBit(), true)
}

func TestControlMotorDecode(t *testing.T) {
	p, drv, _ := testPorts(t)

	p.Write(0x10, ports.CASREW)
	test.ExpectEquality(t, drv.Motor(), mdcr.Reverse)

	// rewind wins when both motor bits are set
	p.Write(0x10, ports.CASREW|ports.CASFOR)
	test.ExpectEquality(t, drv.Motor(), mdcr.Reverse)

	// forward is a single step and an immediate stop
	pos := drv.Position()
	p.Write(0x10, ports.CASFOR)
	test.ExpectEquality(t, drv.Position(), pos+1)
	test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)

	// neither motor bit stops the motor
	p.Write(0x10, ports.CASREW)
	p.Write(0x10, 0x00)
	test.ExpectEquality(t, drv.Motor(), mdcr.Stopped)
}

type testMatrix struct {
	rows [ports.NumKeyboardRows]uint8
}

func (m *testMatrix) Row(row int) uint8 {
	return m.rows[row]
}

func TestKeyboardRead(t *testing.T) {
	env := testEnvironment(t)
	drv := mdcr.NewDrive(env, 4096)
	ff := &mdcr.FlipFlop{}

	kb := &testMatrix{}
	for i := range kb.rows {
		kb.rows[i] = 0xff
	}
	p := ports.NewPorts(env, drv, ff, kb)

	// no keys pressed
	test.ExpectEquality(t, p.Read(0x03), uint8(0xff))

	// a key pressed in row 3 shows up on that row only
	kb.rows[3] = 0xfe
	test.ExpectEquality(t, p.Read(0x03), uint8(0xfe))
	test.ExpectEquality(t, p.Read(0x04), uint8(0xff))

	// reads beyond the ten rows of the matrix see the floating bus
	test.ExpectEquality(t, p.Read(0x0a), uint8(0xff))
	test.ExpectEquality(t, p.Read(0x0f), uint8(0xff))

	// with the keyboard interrupt enabled every row read is the AND of all
	// rows, whatever the offset
	p.Write(0x10, ports.KEYINT)
	kb.rows[7] = 0xbf
	test.ExpectEquality(t, p.Read(0x00), uint8(0xfe&0xbf))
	test.ExpectEquality(t, p.Read(0x09), uint8(0xfe&0xbf))
	test.ExpectEquality(t, p.Read(0x0a), uint8(0xfe&0xbf))
}

type testPrinter struct {
	input  bool
	ready  bool
	strapn bool
	output []bool
}

func (pr *testPrinter) Input() bool  { return pr.input }
func (pr *testPrinter) Ready() bool  { return pr.ready }
func (pr *testPrinter) StrapN() bool { return pr.strapn }

func (pr *testPrinter) Output(level bool) {
	pr.output = append(pr.output, level)
}

func TestPrinterLines(t *testing.T) {
	p, _, _ := testPorts(t)

	pr := &testPrinter{ready: true}
	p.AttachPrinter(pr)

	test.ExpectEquality(t, p.Read(0x20), ^(ports.CASENB|ports.CASPOS|ports.PREADY))

	// every control write forwards the PRNOUT level to the printer
	p.Write(0x10, ports.PRNOUT)
	p.Write(0x10, 0x00)
	test.DemandEquality(t, len(pr.output), 2)
	test.ExpectEquality(t, pr.output[0], true)
	test.ExpectEquality(t, pr.output[1], false)
}

func TestFloatingBus(t *testing.T) {
	p, _, _ := testPorts(t)

	// write-only ports and unmapped ports read as 0xff
	test.ExpectEquality(t, p.Read(0x10), uint8(0xff))
	test.ExpectEquality(t, p.Read(0x30), uint8(0xff))
	test.ExpectEquality(t, p.Read(0x40), uint8(0xff))
	test.ExpectEquality(t, p.Read(0x94), uint8(0xff))
	test.ExpectEquality(t, p.Read(0xf0), uint8(0xff))
}

func TestSimpleStores(t *testing.T) {
	p, _, _ := testPorts(t)

	p.Write(0x30, 0x17)
	test.ExpectEquality(t, p.Scroll(), uint8(0x17))

	// only bit 0 of the beeper port matters
	p.Write(0x50, 0x01)
	test.ExpectSuccess(t, p.Beeper())
	p.Write(0x50, 0xfe)
	test.ExpectFailure(t, p.Beeper())

	p.Write(0x70, 0xaa)
	v, err := p.Peek(0x70)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xaa))
}

func TestExpansionStubs(t *testing.T) {
	p, _, _ := testPorts(t)

	p.Write(0x94, 0x12)
	v, err := p.Peek(0x94)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))

	p.Write(0x89, 0x34)
	v, err = p.Peek(0x89)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x34))

	// a write to a port with nothing behind it is dropped
	p.Write(0x91, 0x56)
	_, err = p.Peek(0x91)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ports.AccessError))
}

func TestPoke(t *testing.T) {
	p, drv, _ := testPorts(t)

	// poking the control port updates the shadow register without moving
	// the motor
	drv.Reverse()
	err := p.Poke(0x10, ports.CASFOR)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Control(), ports.CASFOR)
	test.ExpectEquality(t, drv.Motor(), mdcr.Reverse)

	// ports that compute their value on read cannot be poked
	err = p.Poke(0x20, 0x00)
	test.ExpectFailure(t, err)
	err = p.Poke(0x00, 0x00)
	test.ExpectFailure(t, err)
}

func TestControlShadowAccessors(t *testing.T) {
	p, _, _ := testPorts(t)

	p.Write(0x10, ports.KEYINT|ports.PRNOUT)
	test.ExpectSuccess(t, p.KeyboardInterruptEnabled())
	test.ExpectSuccess(t, p.PrinterOutput())

	p.Write(0x10, 0x00)
	test.ExpectFailure(t, p.KeyboardInterruptEnabled())
	test.ExpectFailure(t, p.PrinterOutput())
}
