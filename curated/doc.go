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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by
// Errorf() with a specific pattern. For example:
//
//	e := curated.Errorf("deck: position = %d", 100)
//
//	if curated.Is(e, "deck: position = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("deck: position = %d", 100)
//	f := curated.Errorf("monitor: %v", e)
//
//	if curated.Has(f, "deck: position = %d") {
//		fmt.Println("true")
//	}
//
// In this example a call to Is() with the inner pattern would return false,
// the inner error being "wrapped" inside the pattern "monitor: %v".
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Put another way, it distinguishes 'curated' from 'uncurated' errors;
// or alternatively, 'expected' from 'unexpected' errors, depending on how the
// result of a function call is to be handled.
package curated
