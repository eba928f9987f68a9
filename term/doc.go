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

// Package term provides a line editor for interactive byte streams
// embedded in another transport, such as an SSH session's pty.
//
// A Session wraps an io.Reader/io.Writer pair under a Policy and runs
// its own goroutine decoding inbound UTF-8, feeding an Editor, and
// echoing back the minimal bytes needed to keep the remote display in
// sync: backspace-and-retype for edits, cursor-forward/back escapes for
// moves, carriage-return/newline on submit. Completed lines, breaks,
// resizes, and end-of-file all arrive from ReadLine as a LineEvent,
// rather than as distinct error types.
//
// Editing
//
// Typing inserts at the cursor; backspace (^H or DEL) removes the
// character before it and ^D the character after it. The arrow keys move
// the cursor and recall history:
//
//	LEFT/RIGHT  move one character
//	UP/DOWN     recall the previous/next submitted line
//	^A/^E       move to the start/end of the line
//	^K          kill from the cursor to the end of the line
//	^U          kill the whole line
//	^Y          yank back the most recently killed text
//	^C          break: discard the line and its history recall position
//	^D          delete right, or (on an empty line) signal EOF
//
// History
//
// Each submitted line is remembered up to Policy.HistorySize entries.
// Recalling with UP saves the line in progress so DOWN can restore it
// once recall returns to the bottom of the ring.
//
// Bypass
//
// When Policy.LineEditor is false, Policy.Encoding is empty, or the
// terminal type is "None", a Session skips the editor entirely and
// delivers raw '\n'-terminated lines unchanged, terminator included.
//
// Example
//
//	sess := term.NewSession(conn, conn, term.DefaultPolicy())
//	for {
//		ev, err := sess.ReadLine()
//		if err != nil {
//			return
//		}
//		switch ev.Kind {
//		case term.EventLine:
//			runCommand(ev.Text)
//		case term.EventBreak:
//			fmt.Fprint(sess, "\r\n")
//		case term.EventEOF:
//			return
//		}
//	}
//
// NewSSHSession wires the same Session around a github.com/gliderlabs/ssh
// Session, seeding the Policy from its pty and forwarding its window
// resize channel into ChangeTerminalSize.
package term
