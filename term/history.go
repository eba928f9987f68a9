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

// history is a bounded ring of previously submitted lines, with a cursor
// used for recall. idx == len(lines) means "editing a fresh line"; the
// in-progress buffer is saved to scratch on the first recall so next() can
// restore it.
type history struct {
	cap   int
	lines [][]rune

	idx      int
	scratch  []rune
	recalled bool
}

func newHistory(capacity int) *history {
	if capacity <= 0 {
		capacity = 1000
	}
	return &history{cap: capacity}
}

// remember appends line unless it equals the immediately previous entry,
// dropping the oldest entry if capacity is exceeded. The recall cursor is
// reset to "editing a fresh line".
func (h *history) remember(line []rune) {
	if n := len(h.lines); n > 0 && runesEqual(h.lines[n-1], line) {
		h.idx = len(h.lines)
		h.recalled = false
		return
	}
	cp := make([]rune, len(line))
	copy(cp, line)
	h.lines = append(h.lines, cp)
	if len(h.lines) > h.cap {
		h.lines = h.lines[1:]
	}
	h.idx = len(h.lines)
	h.recalled = false
}

// prev recalls the previous history entry into cur, saving cur to scratch
// on first call. Returns the new buffer text and true if recall moved,
// false (no-op) if already at the oldest entry.
func (h *history) prev(cur []rune) ([]rune, bool) {
	if h.idx == 0 {
		return nil, false
	}
	if !h.recalled {
		h.scratch = append(h.scratch[:0], cur...)
		h.recalled = true
	}
	h.idx--
	return h.lines[h.idx], true
}

// next recalls the following history entry, or restores the scratch copy
// of the in-progress line once the cursor reaches the end of the ring.
// Returns the new buffer text and true if recall moved.
func (h *history) next() ([]rune, bool) {
	if h.idx >= len(h.lines) {
		return nil, false
	}
	h.idx++
	if h.idx == len(h.lines) {
		return h.scratch, true
	}
	return h.lines[h.idx], true
}

// reset returns the recall cursor to "editing a fresh line" without
// touching stored entries, used after a break clears the buffer.
func (h *history) reset() {
	h.idx = len(h.lines)
	h.recalled = false
}

func (h *history) len() int { return len(h.lines) }

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
