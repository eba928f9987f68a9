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

// Terminal Control Codes bound to editor actions by decoder.go's
// defaultBindings, or otherwise consulted directly by the decoder.
const (
	SOH = 1  // Start of Header: move to line start
	STX = 2  // Start of Text: move left
	ETX = 3  // End of Text: break
	EOT = 4  // End of Transmission: delete right / soft EOF
	ENQ = 5  // Enquire: move to line end
	ACK = 6  // Acknowledge: move right
	BS  = 8  // Backspace: delete left
	TAB = 9  // Horizontal tab: inserted verbatim
	LF  = 10 // Line feed: submit
	VT  = 11 // Vertical tab: kill to end of line
	CR  = 13 // Carriage return: submit
	SO  = 14 // Shift out: recall next history entry
	DLE = 16 // Data link escape: recall previous history entry
	DC2 = 18 // Device Control 2: redraw
	NAK = 21 // Negative Acknowledge: kill whole line
	EM  = 25 // End of Medium: yank
	ESC = 27 // Escape: begins a CSI sequence

	DEL = 127 // Delete: delete left
)

// Control Constants
//
// Strings the renderer emits verbatim rather than through the
// escape-sequence machinery above.
const (
	CarriageReturn = "\r"
	NewLine        = "\n"
)
