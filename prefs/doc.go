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

// Package prefs facilitates the storage of preference values alongside a
// running instance of the values.
//
// Preference values are instances of the Bool, String, Int, Float or Generic
// types. These types can be used as a live value in the program; the Disk
// type ensures the on-disk copy is kept up to date with the live value.
//
// Values are registered with a Disk instance with the Add() function, keyed
// by a period delimited string. For example:
//
//	var width prefs.Int
//
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("display.width", &width)
//
// The Load() and Save() functions transfer values between the live instances
// and the prefs file. Many Disk instances can share a single prefs file;
// entries not in a given instance's registry are preserved over a Save().
//
// Preference values can be overridden from the command line with the
// PushCommandLineStack() function. Values supplied this way are applied when
// the corresponding key is Add()ed to a Disk instance.
package prefs
