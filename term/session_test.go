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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(input string, p Policy) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	s := NewSession(bytes.NewBufferString(input), &out, p)
	return s, &out
}

func TestSessionReadLineDeliversSubmittedLine(t *testing.T) {
	s, out := newTestSession("abc\r", wrapPolicy())
	ev, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, EventLine, ev.Kind)
	assert.Equal(t, "abc", ev.Text)
	assert.Contains(t, out.String(), "abc")
}

func TestSessionReadLineReportsErrorAtEOFWithNoInput(t *testing.T) {
	s, _ := newTestSession("", wrapPolicy())
	// The closed source is first reported as an EventEOF; once the events
	// channel is drained, ReadLine returns the stream's error.
	ev, err := s.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, EventEOF, ev.Kind)
	_, err = s.ReadLine()
	assert.Error(t, err)
}

// TestSessionReadBoundedCharacters exercises spec §4.7's read alongside
// read_line: Read(n) pulls raw decoded characters independent of line
// buffering, the surface the original corpus's soft-EOF scenario drives
// via stdin.read() rather than readline().
func TestSessionReadBoundedCharacters(t *testing.T) {
	s, _ := newTestSession("hello", wrapPolicy())
	ev, err := s.Read(3)
	require.NoError(t, err)
	assert.Equal(t, "hel", ev.Text)
}

func TestSessionReadIncompleteAtStreamClose(t *testing.T) {
	s, _ := newTestSession("hi", wrapPolicy())
	_, err := s.Read(5)
	require.Error(t, err)
	incomplete, ok := err.(*IncompleteReadError)
	require.True(t, ok)
	assert.Equal(t, "hi", incomplete.Partial)
	assert.Equal(t, 5, incomplete.Requested)
}

func TestSessionWriteEOFNoOpWithoutHalfClose(t *testing.T) {
	s, _ := newTestSession("", wrapPolicy())
	assert.NoError(t, s.WriteEOF())
}

// closeWriteRecorder implements writeEOFer so WriteEOF can be observed
// exercising the half-close path a real ssh.Session channel provides.
type closeWriteRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeWriteRecorder) CloseWrite() error {
	c.closed = true
	return nil
}

func TestSessionWriteEOFHalfClosesSupportingWriter(t *testing.T) {
	w := &closeWriteRecorder{}
	s := NewSession(bytes.NewBufferString(""), w, wrapPolicy())
	require.NoError(t, s.WriteEOF())
	assert.True(t, w.closed)
}
