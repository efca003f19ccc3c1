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

package cassetteloader_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher2000/cassetteloader"
	"github.com/jetsetilly/gopher2000/curated"
	"github.com/jetsetilly/gopher2000/hardware/clocks"
	"github.com/jetsetilly/gopher2000/test"
)

const (
	synthRate      = 44100
	synthAmplitude = 16000
)

// samples for one phase window at the synth rate.
func samplesPerPhase() int {
	return int(math.Round(synthRate * clocks.PhaseInterval.Seconds()))
}

// synthPhases builds a square wave recording of the given bit sequence, one
// transition per phase window, followed by the requested number of silent
// gap windows.
func synthPhases(bits []bool, gaps int) []int {
	spp := samplesPerPhase()
	lo := spp / 2
	hi := spp - lo

	samples := make([]int, 0, (len(bits)+gaps)*spp)
	for _, b := range bits {
		first, second := synthAmplitude, -synthAmplitude
		if b {
			first, second = -synthAmplitude, synthAmplitude
		}
		for i := 0; i < lo; i++ {
			samples = append(samples, first)
		}
		for i := 0; i < hi; i++ {
			samples = append(samples, second)
		}
	}
	for i := 0; i < gaps*spp; i++ {
		samples = append(samples, 0)
	}

	return samples
}

func encodeWAV(t *testing.T, fn string, samples []int) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, synthRate, 16, 1, 1)
	err = enc.Write(&audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  synthRate,
		},
		Data:           samples,
		SourceBitDepth: 16,
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())
}

func TestDecodeWAVRecording(t *testing.T) {
	env := testEnvironment(t)

	pattern := []bool{true, false, false, true, true, true, false, true}

	// leading gap, the first half of the pattern, a mid-stream gap, then the
	// second half
	samples := synthPhases(nil, 2)
	samples = append(samples, synthPhases(pattern[:4], 3)...)
	samples = append(samples, synthPhases(pattern[4:], 0)...)

	fn := filepath.Join(t.TempDir(), "recording.wav")
	encodeWAV(t, fn, samples)

	cl := cassetteloader.NewLoader(fn, "AUTO")
	test.ExpectEquality(t, cl.Format, "WAV")
	test.DemandSuccess(t, cl.Load())

	bits, err := cl.Bits(env)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(bits), len(pattern))
	for i := range pattern {
		test.ExpectEquality(t, bits[i], pattern[i], i)
	}
}

func TestDecodeSilence(t *testing.T) {
	env := testEnvironment(t)

	fn := filepath.Join(t.TempDir(), "silence.wav")
	encodeWAV(t, fn, make([]int, samplesPerPhase()*16))

	cl := cassetteloader.NewLoader(fn, "AUTO")
	test.DemandSuccess(t, cl.Load())

	bits, err := cl.Bits(env)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(bits), 0)
}

func TestDecodeThreshold(t *testing.T) {
	env := testEnvironment(t)

	fn := filepath.Join(t.TempDir(), "recording.wav")
	encodeWAV(t, fn, synthPhases([]bool{true, false, true, false}, 0))

	cl := cassetteloader.NewLoader(fn, "AUTO")
	test.DemandSuccess(t, cl.Load())

	bits, err := cl.Bits(env)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(bits), 4)

	// a threshold the recording cannot possibly meet turns every window into
	// gap
	test.DemandSuccess(t, env.Prefs.DecodeThreshold.Set(3.0))
	bits, err = cl.Bits(env)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(bits), 0)
}

func TestNotACassette(t *testing.T) {
	env := testEnvironment(t)

	// a wav extension on data that is nothing of the kind
	fn := filepath.Join(t.TempDir(), "counterfeit.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a riff header"), 0600))

	cl := cassetteloader.NewLoader(fn, "AUTO")
	test.DemandSuccess(t, cl.Load())

	_, err := cl.Bits(env)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cassetteloader.NotACassette), true)
}
