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
	"bufio"
	"io"
	"sync"
)

// eventBufferLength mirrors the teacher's ReadBufferLength: enough slack
// that a burst of submitted lines doesn't stall the reading goroutine
// waiting for a slow consumer.
const eventBufferLength = 32

// Session is the I/O and concurrency boundary around an Editor (spec §5):
// one goroutine owns the inbound byte stream and feeds it through the
// UTF-8 decoder and Editor, writing echo bytes out as it goes and
// delivering completed LineEvents over a channel. It is the equivalent
// of the teacher's TTY, generalized from a single Line-mode byte
// processor to the rune-based, policy-driven editor of this package.
//
// Construct one with NewSession (or NewSSHSession for a gliderlabs/ssh
// pty) per inbound connection; Session is not reusable across streams.
type Session struct {
	r io.Reader
	w io.Writer

	mu     sync.Mutex
	policy Policy

	editor *Editor
	utf8   *utf8Decoder

	events chan *LineEvent
	runes  chan rune // raw decoded characters, fed in parallel with events (for Read)
	closed chan struct{}
	once   sync.Once

	readErr error
}

// NewSession wraps r/w as a line-edited session under p. If p bypasses
// the editor (spec §3/§6), reads are delivered as whole lines split on
// '\n', including the trailing newline, unchanged from the wire — this
// is the pass-through contract a consumer relying on term_type=None or
// encoding=="" expects, distinct from the edited-mode contract of a
// stripped terminator.
func NewSession(r io.Reader, w io.Writer, p Policy) *Session {
	s := &Session{
		r:      r,
		w:      w,
		policy: p,
		events: make(chan *LineEvent, eventBufferLength),
		runes:  make(chan rune, eventBufferLength),
		closed: make(chan struct{}),
	}
	if !p.bypass() {
		s.editor = NewEditor(p)
		s.utf8 = newUTF8Decoder()
	}
	go s.run()
	return s
}

func (s *Session) run() {
	if s.editor == nil {
		s.runBypass()
		return
	}
	s.runEdited()
}

// runEdited drives the decode/feed/echo loop for an active Editor.
func (s *Session) runEdited() {
	buf := make([]byte, 4096)
	for {
		n, err := s.r.Read(buf)
		if n > 0 {
			for _, r := range s.utf8.decode(buf[:n]) {
				s.deliverRune(r)
				out, ev := s.editor.Feed(r)
				s.echo(out)
				if ev != nil {
					s.deliver(ev)
				}
			}
		}
		if err != nil {
			s.readErr = err
			for _, r := range s.utf8.flush() {
				s.deliverRune(r)
				out, ev := s.editor.Feed(r)
				s.echo(out)
				if ev != nil {
					s.deliver(ev)
				}
			}
			out, ev := s.editor.FeedEOF()
			s.echo(out)
			if ev != nil {
				s.deliver(ev)
			}
			close(s.events)
			close(s.runes)
			return
		}
	}
}

// runBypass implements the pure pass-through contract: lines split on
// '\n' with the terminator included, delivered verbatim.
func (s *Session) runBypass() {
	br := bufio.NewReader(s.r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			for _, r := range line {
				s.deliverRune(r)
			}
			s.deliver(&LineEvent{Kind: EventLine, Text: line})
		}
		if err != nil {
			s.readErr = err
			close(s.events)
			close(s.runes)
			return
		}
	}
}

func (s *Session) echo(b []byte) {
	if len(b) == 0 || s.w == nil {
		return
	}
	s.w.Write(b)
}

func (s *Session) deliver(ev *LineEvent) {
	select {
	case s.events <- ev:
	case <-s.closed:
	}
}

// deliverRune feeds a single decoded character to Read's raw stream,
// alongside whatever line-oriented event it produces.
func (s *Session) deliverRune(r rune) {
	select {
	case s.runes <- r:
	case <-s.closed:
	}
}

// ReadLine blocks for the next completed line, break, resize, or EOF
// event (spec §4.7 read_line / §7's tagged-result replacement for
// exception-driven delivery).
func (s *Session) ReadLine() (*LineEvent, error) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil, s.readErr
		}
		return ev, nil
	case <-s.closed:
		return nil, ErrClosed
	}
}

// Read returns up to n decoded characters from the inbound stream (spec
// §4.7 read), independent of line buffering — the raw counterpart to
// ReadLine used by a protocol that frames its own messages rather than
// waiting on a newline, and by the soft-EOF scenario the original corpus
// drives via stdin.read() rather than readline(). If the stream closes
// after some but fewer than n characters arrive, it returns an
// *IncompleteReadError (spec §7) carrying whatever was read; if it closes
// before any arrive, it returns the stream's own read error.
func (s *Session) Read(n int) (*LineEvent, error) {
	buf := make([]rune, 0, n)
	for len(buf) < n {
		select {
		case r, ok := <-s.runes:
			if !ok {
				if len(buf) > 0 {
					return nil, &IncompleteReadError{Partial: string(buf), Requested: n}
				}
				return nil, s.readErr
			}
			buf = append(buf, r)
		case <-s.closed:
			return nil, ErrClosed
		}
	}
	return &LineEvent{Kind: EventLine, Text: string(buf)}, nil
}

// Write sends bytes to the remote side, bypassing the editor (spec §4.7
// write).
func (s *Session) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, io.EOF
	}
	return s.w.Write(p)
}

// writeEOFer is implemented by a half-closable outbound writer, such as
// the ssh.Session (via its embedded gossh.Channel) that NewSSHSession
// wraps.
type writeEOFer interface {
	CloseWrite() error
}

// WriteEOF signals end-of-output to the remote side (spec §4.7
// write_eof) by half-closing the outbound writer, if it supports that;
// otherwise it is a no-op.
func (s *Session) WriteEOF() error {
	if wc, ok := s.w.(writeEOFer); ok {
		return wc.CloseWrite()
	}
	return nil
}

// SetEcho toggles interactive echo (spec §4.7 set_echo); a no-op in
// bypass mode.
func (s *Session) SetEcho(on bool) {
	if s.editor != nil {
		s.editor.SetEcho(on)
	}
}

// SetLineMode toggles line vs. raw interpretation of inbound bytes
// (spec §4.7 set_line_mode), echoing the teardown erase sequence when
// turning line mode off erases a shadow still showing rendered text; a
// no-op in bypass mode.
func (s *Session) SetLineMode(on bool) {
	if s.editor != nil {
		s.echo(s.editor.SetLineMode(on))
	}
}

// GetEncoding reports the session's text encoding (spec §4.7
// get_encoding), or "" in bypass mode with no encoding configured.
func (s *Session) GetEncoding() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy.Encoding
}

// ChangeTerminalSize updates the editor's notion of the terminal size and
// emits the bytes needed to redraw the current line at the new width
// (spec §4.5), also delivering an EventResized so a blocked ReadLine
// returns immediately (spec §7).
func (s *Session) ChangeTerminalSize(w, h int) {
	s.mu.Lock()
	s.policy.Width, s.policy.Height = w, h
	s.mu.Unlock()

	if s.editor == nil {
		s.deliver(&LineEvent{Kind: EventResized, Width: w, Height: h})
		return
	}
	out := s.editor.Resize(w, h)
	s.echo(out)
	s.deliver(&LineEvent{Kind: EventResized, Width: w, Height: h})
}

// Close stops delivery of further events; a goroutine blocked in
// ReadLine unblocks with ErrClosed. It does not close the underlying
// reader or writer, which the caller owns.
func (s *Session) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}
