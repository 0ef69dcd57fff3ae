// Copyright 2023 Jesus Ruiz. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package sliceedit uses the edit queue of rsc.io/edit to replace
// substrings of a byte slice with a single allocation for the result.
// It is used to escape text before writing it as HTML.
package sliceedit

import (
	"bytes"

	"rsc.io/edit"
)

// A Buffer is a queue of edits to apply to a given byte slice.
type Buffer struct {
	ed  *edit.Buffer
	buf []byte
}

// NewBuffer returns a new buffer to accumulate changes to an initial data slice.
// The returned buffer maintains a reference to the data, so the caller must ensure
// the data is not modified until after the Buffer is done being used.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{
		ed:  edit.NewBuffer(buf),
		buf: buf,
	}
}

// Replace queues the replacement of buf[start:end] with new.
// Queued edits must not overlap.
func (b *Buffer) Replace(start, end int, new string) {
	b.ed.Replace(start, end, new)
}

// Bytes returns a new byte slice containing the original data
// with the queued edits applied.
func (b *Buffer) Bytes() []byte {
	return b.ed.Bytes()
}

// String returns a string containing the original data
// with the queued edits applied.
func (b *Buffer) String() string {
	return b.ed.String()
}

// A Replacer replaces a list of strings with replacements, like strings.Replacer,
// but queuing the edits in a Buffer.
// At each position the first old string that matches wins, so edits never overlap.
type Replacer struct {
	oldnew []string
}

// NewReplacer returns a Replacer from a list of old, new string pairs.
// It panics if given an odd number of arguments.
func NewReplacer(oldnew ...string) *Replacer {
	if len(oldnew)%2 == 1 {
		panic("sliceedit.NewReplacer: odd argument count")
	}
	return &Replacer{oldnew: append([]string(nil), oldnew...)}
}

// Replace returns a copy of buf with all replacements performed.
// When there is nothing to replace, buf itself is returned.
func (r *Replacer) Replace(buf []byte) []byte {
	var b *Buffer

	for i := 0; i < len(buf); {
		n := 0
		for j := 0; j < len(r.oldnew); j += 2 {
			old := r.oldnew[j]
			if len(old) > 0 && bytes.HasPrefix(buf[i:], []byte(old)) {
				if b == nil {
					b = NewBuffer(buf)
				}
				b.Replace(i, i+len(old), r.oldnew[j+1])
				n = len(old)
				break
			}
		}
		if n == 0 {
			n = 1
		}
		i += n
	}

	if b == nil {
		return buf
	}
	return b.Bytes()
}

var htmlEscaper = NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// EscapeHTML replaces the characters &, <, > and " with their HTML entities.
func EscapeHTML(buf []byte) []byte {
	return htmlEscaper.Replace(buf)
}

// EscapeString is EscapeHTML for strings.
func EscapeString(s string) string {
	return string(EscapeHTML([]byte(s)))
}
