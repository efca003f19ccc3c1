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

// Package cassetteloader is used to specify the recording that is to be
// spooled onto the emulated deck.
//
// The Load() function handles loading of data from different sources.
// Currently, local files and data over HTTP are supported. Once loaded, the
// Bits() function turns the recording into the bit sequence that the deck
// understands.
//
// Three formats are recognised. A CAS file is a raw bit image, eight bits to
// the byte, most significant bit first. WAV and MP3 files are sound
// recordings of a real cassette. For those, Bits() recovers the bit sequence
// from the audio by looking for a signal transition in every phase-interval
// window of the stream.
//
// It is preferred that the NewLoader() function is used to initialise the
// Loader type. The NewLoader() function will set the Format field
// automatically according to the filename extension.
package cassetteloader
