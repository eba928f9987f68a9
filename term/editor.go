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

import "sync"

// editorState mirrors spec §4.6's IDLE/EDITING/CLOSED states; RAW is not
// a state here but the Editor's lineMode flag being false.
type editorState int

const (
	stateIdle editorState = iota
	stateEditing
	stateClosed
)

// Editor owns the edit buffer, history, key decoder, and renderer, and
// drives the state machine of spec §4.6. It performs no I/O itself: Feed
// takes one decoded rune and returns the bytes to echo (if any) and, when
// the rune completed a line/break/soft-EOF, the LineEvent to deliver.
// Session is the concurrency and I/O boundary built around it.
//
// All of Editor's exported methods lock internally, so a host may call
// the Set* methods from a different goroutine than the one feeding
// characters — the mutex is what gives spec §5's "runs to completion on
// the current event; no event is processed partially" guarantee, in
// place of the teacher's channel-based yield/update rendezvous.
type Editor struct {
	mu sync.Mutex

	policy   Policy
	lineMode bool

	buf  *buffer
	hist *history
	dec  *decoder
	rend *renderer

	state editorState
}

// NewEditor creates an Editor for a session starting with the given
// policy snapshot (spec §3 Lifecycle: "constructed once per session").
func NewEditor(p Policy) *Editor {
	return &Editor{
		policy:   p,
		lineMode: true,
		buf:      newBuffer(p.MaxLineLength),
		hist:     newHistory(p.HistorySize),
		dec:      newDecoder(p.Bindings),
		rend:     newRenderer(p),
		state:    stateIdle,
	}
}

// SetEcho enables or disables interactive echo (spec §4.7 set_echo).
func (e *Editor) SetEcho(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rend.setEcho(on)
}

// SetLineMode toggles line vs. raw mode (spec §4.7 set_line_mode). A
// buffer in progress is preserved; it simply stops being interpreted by
// the decoder until line mode is restored. Turning line mode off while
// the shadow still shows a rendered line erases it from the remote
// display first — the consumer takes over raw echo duties from here, and
// otherwise those bytes would sit there forever (the original corpus's
// test_editor_line_mode_off teardown).
func (e *Editor) SetLineMode(on bool) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []byte
	if e.lineMode && !on && len(e.buf.line) > 0 {
		out = e.rend.setLine(StringWidth(e.buf.line), nil, 0)
	}
	e.lineMode = on
	return out
}

// GetEncoding returns the policy's encoding name (spec §4.7 get_encoding).
func (e *Editor) GetEncoding() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.policy.Encoding
}

// Resize updates the policy's dimensions and returns the full-redraw
// bytes to bring the remote display back in sync (spec §4.5 "On
// terminal-resize, the shadow is invalidated and a full redraw is
// emitted").
func (e *Editor) Resize(w, h int) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.policy.Width, e.policy.Height = w, h
	e.rend.configure(e.policy)
	e.rend.invalidate()
	return e.rend.setLine(0, e.buf.line, e.buf.cursor)
}

// Redraw forces the renderer to repaint from scratch (spec §4.2 redraw).
func (e *Editor) Redraw() []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rend.invalidate()
	return e.rend.setLine(0, e.buf.line, e.buf.cursor)
}

// Feed processes one decoded character per spec §4.6 and returns the
// bytes to echo (possibly nil) and, if the character completed a line,
// a break, or a soft-EOF, the event to deliver. With line mode off, every
// character is returned as its own EventLine.
func (e *Editor) Feed(r rune) ([]byte, *LineEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == stateClosed {
		return nil, nil
	}

	if !e.lineMode {
		var out []byte
		if e.rend.echo {
			out = []byte(string(r))
		}
		return out, &LineEvent{Kind: EventLine, Text: string(r)}
	}

	da := e.dec.feed(r)
	switch da.action {
	case ActionPending, ActionUnknown, ActionNone:
		return nil, nil

	case ActionInsert:
		tail := append([]rune{}, e.buf.line[e.buf.cursor:]...)
		if !e.buf.insert(da.r) {
			return nil, nil
		}
		e.state = stateEditing
		return e.rend.insert(da.r, tail), nil

	case ActionSubmit:
		line := e.buf.text()
		e.hist.remember(line)
		e.buf.clear()
		e.dec.reset()
		e.state = stateIdle
		return e.rend.submit(), &LineEvent{Kind: EventLine, Text: string(line)}

	case ActionBreak:
		e.buf.clear()
		e.hist.reset()
		e.dec.reset()
		e.state = stateIdle
		return nil, &LineEvent{Kind: EventBreak}

	case ActionDeleteRightOrSoftEOF:
		if len(e.buf.line) == 0 {
			return nil, &LineEvent{Kind: EventEOF}
		}
		if e.buf.cursor >= len(e.buf.line) {
			return nil, nil
		}
		delW := Width(e.buf.line[e.buf.cursor])
		e.buf.deleteRight()
		tail := append([]rune{}, e.buf.line[e.buf.cursor:]...)
		return e.rend.eraseSuffix(0, delW, tail), nil

	case ActionDeleteLeft:
		if e.buf.cursor == 0 {
			return nil, nil
		}
		w := Width(e.buf.line[e.buf.cursor-1])
		if !e.buf.deleteLeft() {
			return nil, nil
		}
		tail := append([]rune{}, e.buf.line[e.buf.cursor:]...)
		return e.rend.eraseSuffix(w, w, tail), nil

	case ActionMoveLeft:
		if e.buf.cursor == 0 {
			return nil, nil
		}
		w := Width(e.buf.line[e.buf.cursor-1])
		e.buf.moveLeft()
		return e.rend.move(-w), nil

	case ActionMoveRight:
		if e.buf.cursor >= len(e.buf.line) {
			return nil, nil
		}
		w := Width(e.buf.line[e.buf.cursor])
		e.buf.moveRight()
		return e.rend.move(w), nil

	case ActionMoveHome:
		w := StringWidth(e.buf.line[:e.buf.cursor])
		if !e.buf.moveHome() {
			return nil, nil
		}
		return e.rend.move(-w), nil

	case ActionMoveEnd:
		w := StringWidth(e.buf.line[e.buf.cursor:])
		if !e.buf.moveEnd() {
			return nil, nil
		}
		return e.rend.move(w), nil

	case ActionKillLine:
		oldWidth := StringWidth(e.buf.line)
		e.buf.killLine()
		return e.rend.setLine(oldWidth, e.buf.line, e.buf.cursor), nil

	case ActionKillToEnd:
		oldTailWidth := StringWidth(e.buf.line[e.buf.cursor:])
		e.buf.killToEnd()
		return e.rend.eraseSuffix(0, oldTailWidth, nil), nil

	case ActionYank:
		tail := append([]rune{}, e.buf.line[e.buf.cursor:]...)
		cs := append([]rune{}, e.buf.kill...)
		e.buf.yank()
		return e.rend.insertMany(cs, tail), nil

	case ActionHistoryPrev:
		newLine, moved := e.hist.prev(e.buf.line)
		if !moved {
			return nil, nil
		}
		oldWidth := StringWidth(e.buf.line)
		e.buf.setText(newLine)
		return e.rend.setLine(oldWidth, e.buf.line, e.buf.cursor), nil

	case ActionHistoryNext:
		newLine, moved := e.hist.next()
		if !moved {
			return nil, nil
		}
		oldWidth := StringWidth(e.buf.line)
		e.buf.setText(newLine)
		return e.rend.setLine(oldWidth, e.buf.line, e.buf.cursor), nil

	case ActionRedraw:
		e.rend.invalidate()
		return e.rend.setLine(0, e.buf.line, e.buf.cursor), nil
	}
	return nil, nil
}

// FeedEOF handles source closure (spec §4.6 source_eof): a non-empty
// buffer is submitted as a final line; the editor then moves to CLOSED.
func (e *Editor) FeedEOF() ([]byte, *LineEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.buf.line) == 0 {
		e.state = stateClosed
		return nil, &LineEvent{Kind: EventEOF}
	}
	line := e.buf.text()
	e.hist.remember(line)
	e.buf.clear()
	e.state = stateClosed
	return e.rend.submit(), &LineEvent{Kind: EventLine, Text: string(line)}
}
