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

// lineshell
//
// It is a basic example of embedding the "lineshell/term" package's line
// editor in an SSH server. It echoes back whatever line a client submits,
// and disconnects a client that sends four consecutive breaks with no
// completed line in between.
//
// Connect with: ssh -p 2222 localhost
package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/gliderlabs/ssh"

	"github.com/kylelemons/lineshell/term"
)

var addr = flag.String("addr", ":2222", "address to listen on")

func main() {
	flag.Parse()

	srv := &ssh.Server{
		Addr:    *addr,
		Handler: handle,
	}

	log.Printf("listening on %s", *addr)
	log.Fatal(srv.ListenAndServe())
}

// handle runs one client's session to completion. Four consecutive
// breaks with no completed line in between disconnects the client with a
// literal "BREAK" message; this policy lives here, in the consumer, not
// in the editor itself, since a different host embedding the same editor
// might want a different break policy entirely.
func handle(s ssh.Session) {
	sess := term.NewSSHSession(s)
	defer sess.Close()

	io.WriteString(sess, "lineshell> ")

	breaks := 0
	for {
		ev, err := sess.ReadLine()
		if err != nil {
			return
		}

		switch ev.Kind {
		case term.EventLine:
			breaks = 0
			fmt.Fprintf(sess, "\r\nyou said: %s\r\nlineshell> ", ev.Text)

		case term.EventBreak:
			breaks++
			if breaks >= 4 {
				io.WriteString(sess, "\r\nBREAK\r\n")
				return
			}
			io.WriteString(sess, "\r\nlineshell> ")

		case term.EventEOF:
			io.WriteString(sess, "\r\ngoodbye\r\n")
			return

		case term.EventResized:
			// Nothing to do; the session already redrew the line in
			// progress (the prompt is not redrawn).
		}
	}
}
