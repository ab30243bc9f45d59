// Copyright 2025 Ian Lewis
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

// Package decode implements the primitive decoders shared by all mandoc.db
// structures.
//
// A mandoc.db file is a flat byte buffer containing a pointer graph: integers
// are 32-bit big-endian, and most of them are byte offsets into the same
// buffer. Strings are NUL-terminated UTF-8. There are two kinds of
// self-delimiting lists: string lists terminated by one extra empty string,
// and pointer lists terminated by a zero entry.
//
// Decoded strings alias the source buffer rather than copying it. They are
// only valid as long as the buffer is live and unmodified.
package decode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
	"unsafe"
)

var (
	// ErrOutOfBounds indicates a read past the end of the buffer.
	ErrOutOfBounds = errors.New("read out of bounds")

	// ErrInvalidUTF8 indicates a string that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrMalformedList indicates bad list framing or a bad list entry.
	ErrMalformedList = errors.New("malformed list")

	// ErrCountMismatch indicates that a declared element count disagrees
	// with the decoded data.
	ErrCountMismatch = errors.New("count mismatch")
)

// Uint32 reads a big-endian 32-bit integer at off.
func Uint32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, fmt.Errorf("%w: u32 at offset %d in %d byte buffer", ErrOutOfBounds, off, len(b))
	}
	return binary.BigEndian.Uint32(b[off:]), nil
}

// String reads the NUL-terminated UTF-8 string starting at off. The NUL is
// not included. A string that runs to the end of the buffer without a NUL is
// truncated at the buffer end. The returned string aliases b.
func String(b []byte, off int) (string, error) {
	if off < 0 || off > len(b) {
		return "", fmt.Errorf("%w: string at offset %d in %d byte buffer", ErrOutOfBounds, off, len(b))
	}
	s := b[off:]
	if i := bytes.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if !utf8.Valid(s) {
		return "", fmt.Errorf("%w: string at offset %d", ErrInvalidUTF8, off)
	}
	return view(s), nil
}

// Scan walks the string list starting at off and calls fn with the offset
// and bytes of each entry, without its NUL terminator. A NUL byte at the
// expected start of an entry terminates the list and is not reported to fn.
// A list that reaches the end of the buffer without a terminator fails with
// ErrOutOfBounds.
func Scan(b []byte, off int, fn func(off int, entry []byte) error) error {
	if off < 0 || off > len(b) {
		return fmt.Errorf("%w: list at offset %d in %d byte buffer", ErrOutOfBounds, off, len(b))
	}
	for {
		i := bytes.IndexByte(b[off:], 0)
		if i < 0 {
			return fmt.Errorf("%w: unterminated list at offset %d", ErrOutOfBounds, off)
		}
		if i == 0 {
			// A lone NUL byte marks the end of the list.
			return nil
		}
		if err := fn(off, b[off:off+i]); err != nil {
			return err
		}
		off += i + 1
	}
}

// List reads the string list starting at off. The result is never nil; a
// terminator at off yields an empty list. The returned strings alias b.
func List(b []byte, off int) ([]string, error) {
	list := []string{}
	err := Scan(b, off, func(entryOff int, entry []byte) error {
		if !utf8.Valid(entry) {
			return fmt.Errorf("%w: list entry at offset %d", ErrInvalidUTF8, entryOff)
		}
		list = append(list, view(entry))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ScanPointers walks up to max consecutive big-endian 32-bit entries at off
// and calls fn with each value. A zero entry terminates the list and is not
// reported to fn. Reaching max entries without a terminator ends the list
// silently.
func ScanPointers(b []byte, off, max int, fn func(ptr int) error) error {
	for i := 0; i < max; i++ {
		v, err := Uint32(b, off+4*i)
		if err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
		if err := fn(int(v)); err != nil {
			return err
		}
	}
	return nil
}

// view returns a string aliasing b without copying. Safe because decoded
// buffers are never modified after parsing begins.
func view(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
