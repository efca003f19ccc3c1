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

import (
	"fmt"
	"maps"

	"github.com/jetsetilly/gopher2000/curated"
	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware/mdcr"
)

// AccessError is the sentinal error returned by Peek() and Poke() for port
// numbers with nothing behind them.
const AccessError = "ports: no access to port %#02x"

// Ports decodes the Z80's I/O space. Reads and writes are routed to the
// cassette deck, the keyboard matrix and the printer lines; the simpler
// write-only registers are stored here directly.
type Ports struct {
	env *environment.Environment

	drive *mdcr.Drive
	clock *mdcr.FlipFlop

	keyboard KeyboardMatrix
	printer  Printer

	// shadow of the last value written to the control port. bits KEYINT and
	// PRNOUT are owned by the collaborators and are only meaningful here
	control uint8

	// the simple write-only stores
	scroll uint8
	beeper bool
	disas  uint8

	// expansion board writes, stored uninterpreted and keyed by port number
	expansion map[uint8]uint8
}

// NewPorts is the preferred method of initialisation for the Ports type. The
// drive and clock arguments connect the deck to the I/O space; the keyboard
// argument must not be nil (use NoKeys if there is no keyboard to offer).
func NewPorts(env *environment.Environment, drive *mdcr.Drive, clock *mdcr.FlipFlop, keyboard KeyboardMatrix) *Ports {
	return &Ports{
		env:       env,
		drive:     drive,
		clock:     clock,
		keyboard:  keyboard,
		expansion: make(map[uint8]uint8),
	}
}

func (p *Ports) String() string {
	return fmt.Sprintf("control: %#02x  status: %#02x", p.control, p.status())
}

// Snapshot creates a copy of the Ports registers. The drive and clock are
// not copied; they are snapshotted by their owner and reconnected with
// Plumb().
func (p *Ports) Snapshot() *Ports {
	n := *p
	n.expansion = maps.Clone(p.expansion)
	return &n
}

// Plumb a new environment and deck into the Ports after a snapshot restore.
func (p *Ports) Plumb(env *environment.Environment, drive *mdcr.Drive, clock *mdcr.FlipFlop) {
	p.env = env
	p.drive = drive
	p.clock = clock
}

// AttachPrinter connects the printer lines. A nil printer detaches.
func (p *Ports) AttachPrinter(printer Printer) {
	p.printer = printer
}

// Reset the stored registers to their power-on values. Collaborator
// attachments survive a reset.
func (p *Ports) Reset() {
	p.control = 0x00
	p.scroll = 0x00
	p.beeper = false
	p.disas = 0x00
	clear(p.expansion)
}

// Read a value from the I/O space. Reads of write-only or unmapped ports
// return 0xff, the floating bus value.
func (p *Ports) Read(port uint8) uint8 {
	switch port & 0xf0 {
	case 0x00:
		return p.keyboardRead(port)
	case 0x20:
		return p.status()
	}
	return 0xff
}

// Write a value to the I/O space. Writes to unmapped ports are dropped.
func (p *Ports) Write(port uint8, data uint8) {
	switch port & 0xf0 {
	case 0x10:
		p.controlWrite(data)
	case 0x30:
		p.scroll = data
	case 0x50:
		p.beeper = data&0x01 == 0x01
	case 0x70:
		p.disas = data
	default:
		if isExpansionPort(port) {
			p.expansion[port] = data
		}
	}
}

// the CTC, floppy and RS-232 expansion boards write to a handful of ports
// above 0x80
func isExpansionPort(port uint8) bool {
	return (port >= 0x88 && port <= 0x90) || port == 0x94
}

// assemble the deck status byte. the wire sense is active-low: the byte is
// built positive-sense and the whole of it inverted at the end. the
// inversion is load-bearing, see the package documentation
func (p *Ports) status() uint8 {
	var state uint8

	if p.printer != nil {
		if p.printer.Input() {
			state |= PINPUT
		}
		if p.printer.Ready() {
			state |= PREADY
		}
		if p.printer.StrapN() {
			state |= STRAPN
		}
	}

	// writes are always enabled and the cassette is always in position. the
	// deck has no write protect tab sensor or cassette switch to report
	state |= CASENB
	state |= CASPOS

	if !p.drive.Valid() {
		state |= CASEND
	}
	if p.clock.Level() {
		state |= CASCLK
	}
	if p.drive.ReadBit() {
		state |= CASRDT
	}

	return ^state
}

// decode a control port write. the motor bits are decoded in a fixed order:
// a write command first, then rewind, then forward, then stop if neither
// motor bit is set. when both motor bits are set the rewind wins
func (p *Ports) controlWrite(data uint8) {
	p.control = data

	if data&CASCMD == CASCMD {
		p.drive.WriteBit(data&CASDAT == CASDAT)
	}

	if data&CASREW == CASREW {
		p.drive.Reverse()
	} else if data&CASFOR == CASFOR {
		p.drive.Forward()
	} else {
		p.drive.Stop()
	}

	if p.printer != nil {
		p.printer.Output(data&PRNOUT == PRNOUT)
	}
}

func (p *Ports) keyboardRead(port uint8) uint8 {
	// with the keyboard interrupt enabled every row read returns the AND of
	// all the rows. the monitor ROM uses this to spot that any key at all
	// has been pressed before scanning rows individually
	if p.control&KEYINT == KEYINT {
		and := uint8(0xff)
		for row := 0; row < NumKeyboardRows; row++ {
			and &= p.keyboard.Row(row)
		}
		return and
	}

	row := int(port & 0x0f)
	if row >= NumKeyboardRows {
		return 0xff
	}
	return p.keyboard.Row(row)
}

// Control returns the shadow of the last control port write.
func (p *Ports) Control() uint8 {
	return p.control
}

// KeyboardInterruptEnabled returns the state of the KEYINT control bit.
func (p *Ports) KeyboardInterruptEnabled() bool {
	return p.control&KEYINT == KEYINT
}

// PrinterOutput returns the state of the PRNOUT control bit.
func (p *Ports) PrinterOutput() bool {
	return p.control&PRNOUT == PRNOUT
}

// Scroll returns the stored scroll register value.
func (p *Ports) Scroll() uint8 {
	return p.scroll
}

// Beeper returns the stored beeper level.
func (p *Ports) Beeper() bool {
	return p.beeper
}

// Peek the value of a port without any of the effects of a bus read. Unlike
// Read(), the stored values of write-only ports can be peeked; and unlike
// Read(), a port with nothing behind it is an error.
func (p *Ports) Peek(port uint8) (uint8, error) {
	switch port & 0xf0 {
	case 0x00:
		return p.keyboardRead(port), nil
	case 0x10:
		return p.control, nil
	case 0x20:
		return p.status(), nil
	case 0x30:
		return p.scroll, nil
	case 0x50:
		if p.beeper {
			return 0x01, nil
		}
		return 0x00, nil
	case 0x70:
		return p.disas, nil
	}

	if v, ok := p.expansion[port]; ok {
		return v, nil
	}

	return 0, curated.Errorf(AccessError, port)
}

// Poke a stored port value directly, without the decode effects of a bus
// write. Poking the control port updates the shadow register but does not
// move the deck motor. Ports that compute their value on read cannot be
// poked.
func (p *Ports) Poke(port uint8, data uint8) error {
	switch port & 0xf0 {
	case 0x10:
		p.control = data
		return nil
	case 0x30:
		p.scroll = data
		return nil
	case 0x50:
		p.beeper = data&0x01 == 0x01
		return nil
	case 0x70:
		p.disas = data
		return nil
	}

	if isExpansionPort(port) {
		p.expansion[port] = data
		return nil
	}

	return curated.Errorf(AccessError, port)
}
