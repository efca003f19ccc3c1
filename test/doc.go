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

// Package test contains helper functions to remove common boilerplate in
// test functions.
//
// The Expect functions record a test error on failure and allow the test to
// continue. The Demand functions are identical except that failure is fatal
// to the test. Both families accept optional trailing tags which are included
// in the fail message; useful when a test function loops over a table of
// values and the failing entry needs identifying.
//
// The Writer type is an implementation of io.Writer that buffers output for
// comparison with an expected string.
package test
