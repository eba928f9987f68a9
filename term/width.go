// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package term

import "github.com/mattn/go-runewidth"

// Width returns the display width of r: 0 for combining marks and other
// zero-width runes, 2 for East-Asian Wide/Fullwidth runes, 1 otherwise.
// Control runes (below 0x20, and DEL) are never printable and report 0;
// the renderer handles them separately and they are never appended to a
// line's display.
func Width(r rune) int {
	if r < 0x20 || r == DEL {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// StringWidth returns the total display width of the given runes.
func StringWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += Width(r)
	}
	return w
}

// Printable reports whether r should be inserted into the edit buffer as a
// visible character: either it has a positive display width, or it is a
// zero-width rune that is not a control character (a combining mark,
// attached to whatever precedes it).
func Printable(r rune) bool {
	if r < 0x20 || r == DEL {
		return false
	}
	return true
}
