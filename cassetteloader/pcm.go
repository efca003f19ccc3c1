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
	"bytes"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher2000/curated"
	"github.com/jetsetilly/gopher2000/environment"
	"github.com/jetsetilly/gopher2000/logger"
)

type pcmData struct {
	totalTime  float64 // in seconds
	sampleRate float64

	// data is mono data (taken from the left channel in the case of stereo
	// source files)
	data []float32
}

func getPCM(env *environment.Environment, cl Loader) (pcmData, error) {
	p := pcmData{
		data: make([]float32, 0),
	}

	switch cl.Format {
	case "WAV":
		dec := wav.NewDecoder(bytes.NewReader(cl.Data))
		if dec == nil || !dec.IsValidFile() {
			return p, curated.Errorf(NotACassette, cl.ShortName())
		}

		logger.Log(env, loaderLogTag, "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, curated.Errorf("cassetteloader: wav: %v", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of the data stream
		p.data = make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
		for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
			p.data = append(p.data, floatBuf.Data[i])
		}

		p.sampleRate = float64(dec.SampleRate)

		// total time of recording in seconds
		dur, err := dec.Duration()
		if err != nil {
			return p, curated.Errorf("cassetteloader: wav: %v", err)
		}
		p.totalTime = dur.Seconds()

	case "MP3":
		dec, err := mp3.NewDecoder(bytes.NewReader(cl.Data))
		if err != nil {
			return p, curated.Errorf(NotACassette, cl.ShortName())
		}

		logger.Log(env, loaderLogTag, "loading from mp3 file")

		err = nil
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, curated.Errorf("cassetteloader: mp3: %v", err)
			}

			// index increment of 4 because:
			//  - two bytes per sample per channel
			//  - we only want the left channel
			//  - if we only wanted the right channel we could start with an
			//		index of 2
			for i := 2; i < chunkLen; i += 4 {
				// little endian 16 bit sample
				f := int(chunk[i]) | (int(chunk[i+1]) << 8)

				// adjust value if it is not zero (same as interpreting
				// as two's complement)
				if f != 0 {
					f -= 32768
				}

				p.data = append(p.data, float32(f))
			}
		}

		// according to the go-mp3 docs:
		//
		// "The stream is always formatted as 16bit (little endian) 2 channels
		// even if the source is single channel MP3. Thus, a sample always
		// consists of 4 bytes.".
		p.sampleRate = float64(dec.SampleRate())

		// total time of recording in seconds
		p.totalTime = float64(len(p.data)) / p.sampleRate

	default:
		return p, curated.Errorf(NotACassette, cl.ShortName())
	}

	logger.Logf(env, loaderLogTag, "sample rate: %0.2fHz", p.sampleRate)
	logger.Logf(env, loaderLogTag, "total time: %.02fs", p.totalTime)

	return p, nil
}
