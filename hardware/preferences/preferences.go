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

package preferences

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/gopher2000/logger"
	"github.com/jetsetilly/gopher2000/prefs"
	"github.com/jetsetilly/gopher2000/resources"
)

// number of writable bits on a blank mini-cassette. the real C0110 cassettes
// held a little over 40kbits a side but the service manual quotes 32kbits as
// the dependable minimum
const defaultDeckCapacity = 32768

// where the head parks after the clear leader has run through
const defaultDeckStartPosition = 512

// fraction of the peak signal level that counts as a transition when decoding
// an audio recording of a cassette
const defaultDecodeThreshold = 0.25

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// initialise tape bits to an unknown state when a blank cassette is
	// inserted into the deck
	RandomState prefs.Bool

	// number of bits on a blank cassette
	DeckCapacity prefs.Int

	// tape position of the head when a blank cassette is inserted
	DeckStartPosition prefs.Int

	// sensitivity of the phase decoder when spooling from an audio recording.
	// noisy recordings may need a higher value
	DecodeThreshold prefs.Float

	// random values generated in the hardware package should use the
	// following number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	// initialise random number generator
	p.Reseed(0)

	p.SetDefaults()

	// setup preferences and load from disk
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("deck.capacity", &p.DeckCapacity)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("deck.position", &p.DeckStartPosition)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("cassette.decodethreshold", &p.DecodeThreshold)
	if err != nil {
		return nil, err
	}

	// a prefs file without a capacity entry indicates a new installation
	newInstallation, err := p.dsk.DoesNotHaveEntry("deck.capacity")
	if err != nil {
		return nil, err
	}
	if newInstallation {
		logger.Log(logger.Allow, "preferences", "new installation. using default deck geometry")
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.DeckCapacity.Set(defaultDeckCapacity)
	p.DeckStartPosition.Set(defaultDeckStartPosition)
	p.DecodeThreshold.Set(defaultDecodeThreshold)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	if err := p.dsk.Reset(); err != nil {
		return err
	}
	p.SetDefaults()
	return nil
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
