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

import "github.com/gliderlabs/ssh"

// NewSSHSession wires a gliderlabs/ssh Session as the external
// collaborator of spec §6: the pty's term type and starting window size
// seed the Policy, and the session's resize channel feeds
// ChangeTerminalSize for the lifetime of the connection. A session with
// no pty (s.Pty() returning ok==false) gets the TermType "None", which
// Policy.bypass treats as pass-through.
func NewSSHSession(s ssh.Session) *Session {
	p := DefaultPolicy()

	pty, winCh, ok := s.Pty()
	if ok {
		p.TermType = pty.Term
		p.Width, p.Height = pty.Window.Width, pty.Window.Height
	} else {
		p.TermType = "None"
	}

	sess := NewSession(s, s, p)

	if ok {
		go func() {
			for win := range winCh {
				sess.ChangeTerminalSize(win.Width, win.Height)
			}
		}()
	}

	return sess
}
