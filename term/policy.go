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

// Policy is the session policy external collaborator contract of spec
// §6: terminal type, encoding, echo/line-mode state, and dimensions. It
// replaces implicit reads of channel attributes (the design note in
// spec §9) with an explicit struct the editor holds and a caller updates
// via setter methods on Session, which invalidate the renderer shadow
// when a change requires a redraw.
type Policy struct {
	// LineEditor, when false, makes the editor pure pass-through: inbound
	// bytes flow straight to the consumer and writes are unchanged.
	LineEditor bool

	// Encoding is a text encoding name, or empty to bypass the editor
	// entirely (spec §3 encoding==bytes).
	Encoding string

	// TermType selects wrap vs. truncate rendering. "dumb", empty, or
	// "None" select truncate (or pass-through, for "None"); anything else
	// selects wrap mode.
	TermType string

	// Width and Height are the terminal dimensions. Default 80x24.
	Width, Height int

	// HistorySize is the history ring capacity H. Default 1000.
	HistorySize int

	// MaxLineLength, if positive, silently rejects insertions past this
	// length.
	MaxLineLength int

	// Bindings overrides the default control-character action table
	// (spec §4.4). Nil means "use the defaults".
	Bindings map[byte]Action
}

// DefaultPolicy returns the Policy used when a host supplies none: ANSI
// wrap-capable terminal, text encoding, 80x24, 1000-line history.
func DefaultPolicy() Policy {
	return Policy{
		LineEditor:  true,
		Encoding:    "utf-8",
		TermType:    "ansi",
		Width:       80,
		Height:      24,
		HistorySize: 1000,
	}
}

// bypass reports whether the editor should be pure pass-through per spec
// §3/§6: line editing disabled, no encoding (bytes mode), or no pty
// ("None" term type).
func (p Policy) bypass() bool {
	return !p.LineEditor || p.Encoding == "" || p.TermType == "None"
}

// wrapMode reports whether the renderer should use wrap mode (spec §4.5).
// dumb or unknown/empty terminal types use truncate mode instead.
func (p Policy) wrapMode() bool {
	switch p.TermType {
	case "", "dumb", "None":
		return false
	default:
		return true
	}
}

func (p Policy) width() int {
	if p.Width <= 0 {
		return 80
	}
	return p.Width
}

func (p Policy) height() int {
	if p.Height <= 0 {
		return 24
	}
	return p.Height
}
