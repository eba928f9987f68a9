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

import (
	"bytes"
	"fmt"
)

// renderer computes the minimal output bytes that bring the remote
// display's shadow state in line with the edit buffer (spec §4.5). It
// never emits anything beyond the vocabulary of spec §6: printable UTF-8,
// \r, \n, \b, space, and \x1b[nC / \x1b[nD / \x1b[K.
//
// Two rendering strategies are supported, selected by Policy.wrapMode:
// wrap mode tracks a column within the current terminal row (grounded on
// the teacher's linechar/lineesc overwrite arithmetic, generalized from
// byte counts to display-width columns); truncate mode keeps the line on
// one physical row and scrolls a visible window, as spec §4.5 describes
// for "dumb" terminals.
type renderer struct {
	wrap  bool
	width int
	echo  bool

	col      int // wrap mode: cursor column within the current row [0,width)
	winStart int // truncate mode: index of first visible rune in the line
}

func newRenderer(p Policy) *renderer {
	return &renderer{wrap: p.wrapMode(), width: p.width(), echo: true}
}

func (r *renderer) configure(p Policy) {
	r.wrap = p.wrapMode()
	r.width = p.width()
}

func (r *renderer) setEcho(on bool) { r.echo = on }

// moveEsc returns the CSI cursor-forward/back sequence for a column delta,
// or nil if delta is zero.
func moveEsc(delta int) []byte {
	switch {
	case delta > 0:
		return []byte(fmt.Sprintf("\x1b[%dC", delta))
	case delta < 0:
		return []byte(fmt.Sprintf("\x1b[%dD", -delta))
	default:
		return nil
	}
}

// writeWrapped appends rs to out applying the width-2 margin rule of
// spec §4.5: a width-2 rune that would land on the final column is
// pushed to column 0 of the next row with a preceding space pad. Updates
// r.col as it goes. Zero-width runes (combining marks) attach to the
// preceding cell and never start a new column (spec §9 open question).
func (r *renderer) writeWrapped(out *bytes.Buffer, rs []rune) {
	for _, c := range rs {
		w := Width(c)
		if w == 0 {
			out.WriteRune(c)
			continue
		}
		if w == 2 && r.col == r.width-1 {
			out.WriteByte(' ')
			r.col = 0
		}
		out.WriteRune(c)
		r.col += w
		if r.col >= r.width {
			r.col -= r.width
		}
	}
}

// insert renders inserting r just before tail (the unchanged suffix after
// the new cursor position). Returns the bytes to write, or nil if echo is
// off.
func (r *renderer) insert(c rune, tail []rune) []byte {
	return r.insertMany([]rune{c}, tail)
}

// insertMany renders inserting cs just before tail — the general case
// insert uses for a single rune and yank uses for the kill ring's
// contents.
func (r *renderer) insertMany(cs []rune, tail []rune) []byte {
	if !r.echo {
		return nil
	}
	whole := append(append([]rune{}, cs...), tail...)
	if r.wrap {
		var out bytes.Buffer
		r.writeWrapped(&out, whole)
		tailWidth := StringWidth(tail)
		out.Write(moveEsc(-tailWidth))
		r.col -= tailWidth
		if r.col < 0 {
			r.col += r.width
		}
		return out.Bytes()
	}
	return r.truncateRewrite(whole, tail)
}

// eraseSuffix renders replacing the visible tail (whatever follows the
// cursor) with newTail — used by deleteLeft/deleteRight/kill operations,
// all of which only change a contiguous suffix of the line. moveBack is
// the number of columns to move left before rewriting (e.g. the width of
// a just-deleted character before the cursor); oldExtra is how many
// trailing columns of now-stale content are left on screen beyond
// newTail once it's redrawn, and get overwritten with spaces using the
// same \x1b[nD+spaces+\x1b[nD idiom setLine uses (spec §4.5), never
// \x1b[K.
func (r *renderer) eraseSuffix(moveBack, oldExtra int, newTail []rune) []byte {
	if !r.echo {
		return nil
	}
	var out bytes.Buffer
	if r.wrap {
		if moveBack > 0 {
			out.Write(moveEsc(-moveBack))
			r.col -= moveBack
			if r.col < 0 {
				r.col += r.width
			}
		}
		r.writeWrapped(&out, newTail)
		if oldExtra > 0 {
			for i := 0; i < oldExtra; i++ {
				out.WriteByte(' ')
			}
			out.Write(moveEsc(-oldExtra))
		}
		newWidth := StringWidth(newTail)
		out.Write(moveEsc(-newWidth))
		r.col -= newWidth
		if r.col < 0 {
			r.col += r.width
		}
		return out.Bytes()
	}
	return r.truncateRewrite(newTail, newTail)
}

// move renders a pure cursor move of the given column delta (positive
// right, negative left). Used by move-left/right/home/end.
func (r *renderer) move(delta int) []byte {
	if !r.echo || delta == 0 {
		return nil
	}
	r.col += delta
	for r.col < 0 {
		r.col += r.width
	}
	for r.col >= r.width {
		r.col -= r.width
	}
	return moveEsc(delta)
}

// setLine renders replacing the entire visible line (e.g. history
// recall, redraw) given the previously-rendered text/cursor and the new
// ones. oldWidth is the total display width previously on screen.
func (r *renderer) setLine(oldWidth int, newLine []rune, newCursor int) []byte {
	if !r.echo {
		return nil
	}
	var out bytes.Buffer
	if r.wrap {
		out.Write(moveEsc(-r.col))
		r.col = 0
		r.writeWrapped(&out, newLine)
		newWidth := StringWidth(newLine)
		if oldWidth > newWidth {
			// The cursor sits right after newLine, exactly where the
			// leftover tail of the old, longer line still is; overwrite
			// it with spaces and return to where we started.
			pad := oldWidth - newWidth
			for i := 0; i < pad; i++ {
				out.WriteByte(' ')
			}
			out.Write(moveEsc(-pad))
		}
		out.Write(moveEsc(-(newWidth - StringWidth(newLine[:newCursor]))))
		r.col -= newWidth - StringWidth(newLine[:newCursor])
		return out.Bytes()
	}
	return r.truncateRewrite(newLine, newLine[newCursor:])
}

// submit renders the end of a line: CRLF, and resets the shadow to empty.
func (r *renderer) submit() []byte {
	r.col = 0
	r.winStart = 0
	if !r.echo {
		return nil
	}
	return []byte(CarriageReturn + NewLine)
}

// invalidate forces the next render to start from column 0, used after a
// resize or explicit redraw request.
func (r *renderer) invalidate() {
	r.col = 0
	r.winStart = 0
}

// truncateRewrite implements the single-row, scrolling-window rendering
// of spec §4.5 for "dumb" terminals: no ANSI escapes, only CR, BS, space,
// and printable characters. tail is used only to compute the resulting
// cursor position (len(line) - len(tail) runes from the start).
func (r *renderer) truncateRewrite(line []rune, tail []rune) []byte {
	if !r.echo {
		return nil
	}
	cursor := len(line) - len(tail)
	w := r.width
	if w <= 1 {
		w = 1
	}
	switch {
	case cursor < r.winStart:
		r.winStart = cursor
	case cursor >= r.winStart+w:
		r.winStart = cursor - w + 1
	}
	end := r.winStart + w
	if end > len(line) {
		end = len(line)
	}
	visible := line[r.winStart:end]

	var out bytes.Buffer
	out.WriteByte('\r')
	out.WriteString(string(visible))
	for i := len(visible); i < w; i++ {
		out.WriteByte(' ')
	}
	for i := 0; i < w-len(visible); i++ {
		out.WriteByte('\b')
	}
	back := len(visible) - (cursor - r.winStart)
	for i := 0; i < back; i++ {
		out.WriteByte('\b')
	}
	return out.Bytes()
}
