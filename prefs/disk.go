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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher2000/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "gopher2000.prefs"

// WarningBoilerPlate is the first line of a prefs file. Any file that does not
// have this as the first line will not be treated as a prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// NoPrefsFile is a sentinal error returned by Load() if the prefs file does
// not exist.
const NoPrefsFile = "no prefs file (%v)"

// the string that separates the key from the value on a single line of the
// prefs file.
const entrySeparator = " :: "

// Disk represents preference values as stored on disk. Add() preference
// values to the Disk instance and Load() and Save() as required.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path argument is the path to the prefs file. Use the resources package to
// construct a path that is sympathetic to the host filesystem.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk Disk) String() string {
	s := strings.Builder{}

	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%v\n", key, entrySeparator, dsk.entries[key]))
	}

	return s.String()
}

// Add preference value to disk registry. The key argument is the string the
// value is keyed against in the prefs file.
//
// If a value for the key has been previously supplied on the command line
// then the preference value is set to that value immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, entrySeparator) || strings.ContainsAny(key, "\n") {
		return curated.Errorf("prefs: invalid key (%v)", key)
	}

	dsk.entries[key] = p

	// check command line for an initial value
	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}

// HasEntry returns true if the disk registry has an entry for the key.
func (dsk *Disk) HasEntry(key string) bool {
	_, ok := dsk.entries[key]
	return ok
}

// DoesNotHaveEntry returns true if the prefs file itself has no entry for the
// key. Useful for detecting a new installation.
func (dsk *Disk) DoesNotHaveEntry(key string) (bool, error) {
	entries, err := dsk.readFile()
	if err != nil {
		if curated.Is(err, NoPrefsFile) {
			return true, nil
		}
		return false, err
	}
	_, ok := entries[key]
	return !ok, nil
}

// Reset all preferences in the disk registry to their zero values.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Save current preference values to disk. Values in the prefs file that are
// not in this Disk instance's registry are preserved.
func (dsk *Disk) Save() error {
	// load entirety of the existing prefs file before we clobber it. entries
	// that are not in this instance's registry must survive the save
	keep, err := dsk.readFile()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		keep = make(map[string]string)
	}

	// overlay current values
	for key, p := range dsk.entries {
		keep[key] = p.String()
	}

	// sort keys for a stable file
	keys := make([]string, 0, len(keep))
	for key := range keep {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	fmt.Fprintln(f, WarningBoilerPlate)
	for _, key := range keys {
		fmt.Fprintf(f, "%s%s%s\n", key, entrySeparator, keep[key])
	}

	return nil
}

// Load preference values from disk and set every value in the disk registry
// accordingly.
//
// If the prefs file does not exist and saveOnErr is true then the file is
// created with the current values. If saveOnErr is false the NoPrefsFile
// sentinal error is returned.
func (dsk *Disk) Load(saveOnErr bool) error {
	loaded, err := dsk.readFile()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnErr {
			return dsk.Save()
		}
		return err
	}

	for key, v := range loaded {
		if p, ok := dsk.entries[key]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// read the prefs file into a map of key/value strings. defunct keys are
// dropped at this point.
func (dsk *Disk) readFile() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	entries := make(map[string]string)

	s := bufio.NewScanner(f)
	for s.Scan() {
		kv := strings.SplitN(s.Text(), entrySeparator, 2)
		if len(kv) != 2 {
			// the only line we expect not to be a key/value pair is the
			// boilerplate warning
			continue
		}
		if isDefunct(kv[0]) {
			continue
		}
		entries[kv[0]] = kv[1]
	}
	if err := s.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return entries, nil
}
