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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher2000/archivefs"
	"github.com/jetsetilly/gopher2000/curated"
	"github.com/jetsetilly/gopher2000/environment"
)

// Sentinal errors returned by the cassetteloader package.
const (
	NotACassette      = "cassetteloader: %v is not a cassette recording"
	NothingLoaded     = "cassetteloader: no data in the loader"
	HashMismatch      = "cassetteloader: unexpected hash value"
	UnsupportedScheme = "cassetteloader: unsupported URL scheme (%s)"
)

// tag string used in calls to Log().
const loaderLogTag = "cassetteloader"

// Loader is used to specify the recording to spool onto the deck.
type Loader struct {
	// filename of recording to load
	Filename string

	// one of the entries in FileFormats. NewLoader() resolves the format
	// from the filename extension
	Format string

	// expected hash of the loaded recording. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	//
	// in the case of sound data (IsSoundData is true) the hash is of the
	// original binary file, not the decoded PCM data
	Hash string

	// copy of the loaded data. subsequent calls to Load() are no-ops once
	// this field is filled
	Data []byte

	// does the Data field consist of sound (PCM) data
	IsSoundData bool
}

// FileFormats is the list of recording formats recognised by the
// cassetteloader package.
var FileFormats = [...]string{"CAS", "WAV", "MP3"}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// Filenames with an extension that is not in FileFormats are treated as raw
// bit images, the same as a CAS file.
//
// Alphabetic characters in file extensions can be in upper or lower case or
// a mixture of both.
func NewLoader(filename string, format string) Loader {
	cl := Loader{
		Filename: filename,
		Format:   "CAS",
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != "AUTO" && format != "" {
		cl.Format = format
	} else {
		switch strings.ToUpper(filepath.Ext(filename)) {
		case ".WAV":
			cl.Format = "WAV"
		case ".MP3":
			cl.Format = "MP3"
		}
	}

	cl.IsSoundData = cl.Format == "WAV" || cl.Format == "MP3"

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the recording and store it in the Data field. Loader filenames with a
// valid scheme will use that method to load the data. Currently supported
// schemes are HTTP and local files. Local filenames can extend into a zip
// archive, as described in the archivefs package.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cassetteloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cassetteloader: %v", err)
		}

	case "file", "":
		r, _, err := archivefs.Open(cl.Filename)
		if err != nil {
			return curated.Errorf("cassetteloader: %v", err)
		}

		cl.Data, err = io.ReadAll(r)
		if err != nil {
			return curated.Errorf("cassetteloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(HashMismatch)
	}
	cl.Hash = hash

	return nil
}

// Bits returns the loaded recording as the bit sequence the deck understands.
// The Load() function must have been called first.
func (cl Loader) Bits(env *environment.Environment) ([]bool, error) {
	if !cl.HasLoaded() {
		return nil, curated.Errorf(NothingLoaded)
	}

	if cl.IsSoundData {
		pcm, err := getPCM(env, cl)
		if err != nil {
			return nil, err
		}
		return decodePhases(env, pcm), nil
	}

	return bitsFromRaw(cl.Data), nil
}
