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
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf8Decoder incrementally decodes a byte stream into runes, buffering a
// partial multi-byte sequence split across reads rather than misdecoding
// it (spec §6). Invalid sequences are replaced with the Unicode
// replacement character and decoding continues (spec §7 EncodingError);
// that error never reaches the consumer.
//
// Generalized from the charset-transcoding idiom in the cataloged
// ryanfowler-fetch client (internal/fetch/charset.go), which wraps
// golang.org/x/text encoding.Decoders around an io.Reader for a similar
// "don't choke on encoding edge cases mid-stream" need.
type utf8Decoder struct {
	tr      transform.Transformer
	pending []byte
}

func newUTF8Decoder() *utf8Decoder {
	return &utf8Decoder{tr: unicode.UTF8.NewDecoder()}
}

// decode consumes chunk (appended to any leftover partial sequence from a
// previous call) and returns the runes it could decode.
func (d *utf8Decoder) decode(chunk []byte) []rune {
	src := append(d.pending, chunk...)
	d.pending = nil

	var runes []rune
	dst := make([]byte, len(src)*4+16)

	for len(src) > 0 {
		nDst, nSrc, err := d.tr.Transform(dst, src, false)
		if nDst > 0 {
			for _, r := range string(dst[:nDst]) {
				runes = append(runes, r)
			}
		}
		src = src[nSrc:]

		switch err {
		case nil:
			if nSrc == 0 && nDst == 0 {
				// No progress possible without more input.
				d.pending = append(d.pending, src...)
				return runes
			}
		case transform.ErrShortSrc:
			d.pending = append(d.pending, src...)
			return runes
		default:
			// Malformed sequence the transformer couldn't resync from on
			// its own; drop one byte, substitute the replacement rune,
			// and keep going so one bad byte doesn't stall the session.
			if len(src) > 0 {
				runes = append(runes, utf8.RuneError)
				src = src[1:]
			} else {
				return runes
			}
		}
	}
	return runes
}

// flush decodes any buffered partial sequence at stream close, reporting
// it as replacement characters rather than silently dropping it.
func (d *utf8Decoder) flush() []rune {
	if len(d.pending) == 0 {
		return nil
	}
	runes := make([]rune, len(d.pending))
	for i := range runes {
		runes[i] = utf8.RuneError
	}
	d.pending = nil
	return runes
}
