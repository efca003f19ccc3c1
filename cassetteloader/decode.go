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

package cassetteloader

import (
	"math"

	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/hardware/clocks"
	"github.com/jetsetilly/gopher2000/logger"
)

// bitsFromRaw expands a raw byte image into a bit sequence, most significant
// bit first.
func bitsFromRaw(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>i)&0x01 == 0x01)
		}
	}
	return bits
}

// decodePhases recovers the bit sequence from a PCM recording of a real
// cassette. The stream is windowed at the phase interval of the deck and the
// direction of the signal transition inside each window yields one bit, a
// rising edge for a one and a falling edge for a zero. Windows without a
// discernible transition are inter-record gap and produce nothing.
func decodePhases(env *environment.Environment, pcm pcmData) []bool {
	samplesPerPhase := int(math.Round(pcm.sampleRate * clocks.PhaseInterval.Seconds()))
	if samplesPerPhase < 2 {
		return nil
	}

	// the transition threshold is relative to the loudest point in the
	// recording. a window is gap unless the two halves differ by at least the
	// decode threshold fraction of the peak
	var peak float32
	for _, s := range pcm.data {
		if s > peak {
			peak = s
		} else if -s > peak {
			peak = -s
		}
	}
	if peak == 0.0 {
		logger.Log(env, loaderLogTag, "recording is silent")
		return nil
	}
	threshold := peak * float32(env.Prefs.DecodeThreshold.Get().(float64))

	bits := make([]bool, 0, len(pcm.data)/samplesPerPhase)
	gaps := 0

	for i := 0; i+samplesPerPhase <= len(pcm.data); i += samplesPerPhase {
		w := pcm.data[i : i+samplesPerPhase]

		var head float32
		for _, s := range w[:len(w)/2] {
			head += s
		}
		head /= float32(len(w) / 2)

		var tail float32
		for _, s := range w[len(w)/2:] {
			tail += s
		}
		tail /= float32(len(w) - len(w)/2)

		switch {
		case tail-head > threshold:
			bits = append(bits, true)
		case head-tail > threshold:
			bits = append(bits, false)
		default:
			gaps++
		}
	}

	logger.Logf(env, loaderLogTag, "%d samples per phase", samplesPerPhase)
	logger.Logf(env, loaderLogTag, "%d bits decoded (%d gap windows)", len(bits), gaps)

	return bits
}
