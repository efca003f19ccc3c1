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

// Package archivefs lets a filename reach inside a zip archive as though
// the archive were a directory. Cassette recordings are often distributed
// in zipped collections and it is convenient to spool one onto the deck
// without unpacking the collection first:
//
//	gopher2000 run recordings.zip/side_a.cas
//
// The package deliberately has a very small surface. The Open() function is
// all the cassetteloader package needs.
package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher2000/curated"
)

// Open and return an io.ReadSeeker for the specified filename, along with
// the size of the data behind the ReadSeeker. The filename can extend into
// a zip archive, with the archive treated as a directory.
func Open(filename string) (io.ReadSeeker, int, error) {
	filename = filepath.Clean(filename)
	lst := strings.Split(filename, string(filepath.Separator))

	// strings.Split removes a leading filepath.Separator. add it back so
	// that filepath.Join() rebuilds an absolute path correctly
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// walk the path components until one of them turns out to be a zip
	// file. the remaining components then name a file inside the archive
	var path string

	for i, l := range lst {
		path = filepath.Join(path, l)

		fi, err := os.Stat(path)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: %v", err)
		}
		if fi.IsDir() {
			continue
		}

		zf, err := zip.OpenReader(path)
		if err != nil {
			if !errors.Is(err, zip.ErrFormat) {
				return nil, 0, curated.Errorf("archivefs: %v", err)
			}

			// a plain file. if this is the last path component then this is
			// the file we want. a plain file part way through the path is
			// caught by os.Stat() on the next loop iteration
			if i == len(lst)-1 {
				d, err := os.ReadFile(path)
				if err != nil {
					return nil, 0, curated.Errorf("archivefs: %v", err)
				}
				return bytes.NewReader(d), len(d), nil
			}

			continue
		}
		defer zf.Close()

		if i == len(lst)-1 {
			return nil, 0, curated.Errorf("archivefs: %s is an archive not a file", filename)
		}

		// paths inside a zip file always use a forward slash, whatever the
		// host filesystem does
		f, err := zf.Open(strings.Join(lst[i+1:], "/"))
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: %v", err)
		}
		defer f.Close()

		d, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: %v", err)
		}

		return bytes.NewReader(d), len(d), nil
	}

	return nil, 0, curated.Errorf("archivefs: %s is not a file", filename)
}
