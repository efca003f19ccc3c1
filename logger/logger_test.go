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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopher2000/logger"
	"github.com/jetsetilly/gopher2000/test"
)

func TestPackageLevelLogger(t *testing.T) {
	tw := &test.Writer{}

	// the central logger is shared by every test in the package so make sure
	// it's empty before starting
	logger.Clear()

	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\n"), true)

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	logger.Clear()
}

func TestWriteRecent(t *testing.T) {
	tw := &test.Writer{}

	logger.Clear()

	logger.Log(logger.Allow, "test", "this is a test")
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test\n"), true)

	// entries already seen by WriteRecent() are not written a second time
	tw.Clear()
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	tw.Clear()
	logger.Log(logger.Allow, "test2", "this is another test")
	logger.WriteRecent(tw)
	test.ExpectEquality(t, tw.Compare("test2: this is another test\n"), true)

	logger.Clear()
}

func TestRepeatFolding(t *testing.T) {
	tw := &test.Writer{}

	logger.Clear()

	// the same tag/detail pair repeated is folded into a single entry with a
	// repeat count
	logger.Log(logger.Allow, "test", "this is a test")
	logger.Log(logger.Allow, "test", "this is a test")
	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare("test: this is a test (repeat x3)\n"), true)

	logger.Clear()
}
