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

package pages

import (
	"errors"
	"fmt"

	"github.com/ianlewis/go-mandocdb/decode"
)

// ErrUnknownFormat indicates a page format byte that is not a known format.
var ErrUnknownFormat = errors.New("unknown page format")

// RecordSize is the size of one page entry in the pages table.
const RecordSize = 20

// Name source bits. The bits in a name's source byte record the structural
// contexts the name appeared in and may combine freely.
const (
	// SourceSynopsis is set for names from a SYNOPSIS section .Nm block.
	SourceSynopsis = 0x01

	// SourceNameMacro is set for names from any NAME section .Nm macro.
	SourceNameMacro = 0x02

	// SourceFirstNameMacro is set for names from the first NAME section .Nm
	// macro.
	SourceFirstNameMacro = 0x04

	// SourceHeader is set for names from a header line (a .Dt or .TH macro).
	SourceHeader = 0x08

	// SourceFileName is set for names taken from a file name.
	SourceFileName = 0x10
)

// sourceMax is the largest valid combination of name source bits.
const sourceMax = SourceSynopsis |
	SourceNameMacro |
	SourceFirstNameMacro |
	SourceHeader |
	SourceFileName

// Format is a page's source format. It is recorded as a single byte
// preceding the page's first filename.
type Format byte

const (
	// FormatMdocMan indicates the page source is mdoc(7) or man(7).
	FormatMdocMan = Format(1)

	// FormatPreformatted indicates the page is preformatted.
	FormatPreformatted = Format(2)
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatMdocMan:
		return "man(7) or mdoc(7)"
	case FormatPreformatted:
		return "preformatted"
	default:
		return fmt.Sprintf("unknown (0x%02x)", byte(f))
	}
}

// Name is a single name for a page together with the contexts it appeared
// in. The value aliases the database buffer.
type Name struct {
	// Value is the name itself.
	Value string

	// Source records where the name appeared. It is a combination of the
	// Source* bits and is always in the range 1 to 31.
	Source byte
}

// String implements fmt.Stringer.
func (n Name) String() string {
	return n.Value
}

// ParseNames reads the names list starting at off. Each list entry carries a
// leading source byte followed by the name string. A NUL byte at the
// expected start of an entry terminates the list; a source byte outside the
// valid bit range fails with decode.ErrMalformedList.
func ParseNames(b []byte, off int) ([]Name, error) {
	names := []Name{}
	err := decode.Scan(b, off, func(entryOff int, entry []byte) error {
		src := entry[0]
		if src < 1 || src > sourceMax {
			return fmt.Errorf("%w: invalid source byte 0x%02x at offset %d", decode.ErrMalformedList, src, entryOff)
		}
		name, err := decode.String(b, entryOff+1)
		if err != nil {
			return err
		}
		names = append(names, Name{
			Value:  name,
			Source: src,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Page is a single manual page entry. All strings alias the database buffer.
type Page struct {
	// Names are the page's names.
	Names []Name

	// Sections are the manual sections the page belongs to.
	Sections []string

	// Archs are the architectures the page applies to. Archs is nil if the
	// page is machine-independent. A non-nil empty list means the page
	// declared an architecture list with no entries.
	Archs []string

	// Description is the page's one-line description.
	Description string

	// Files are the files the page was generated from.
	Files []string

	// Format is the page's source format.
	Format Format
}

// ParsePage reads the 20-byte page entry at off and resolves everything it
// points at. ParsePage reads only from b and has no side effects.
func ParsePage(b []byte, off int) (*Page, error) {
	// Five offsets: names, sections, architectures, description, files.
	var fields [5]int
	for i := range fields {
		v, err := decode.Uint32(b, off+4*i)
		if err != nil {
			return nil, err
		}
		fields[i] = int(v)
	}

	names, err := ParseNames(b, fields[0])
	if err != nil {
		return nil, err
	}

	sects, err := decode.List(b, fields[1])
	if err != nil {
		return nil, err
	}

	// A zero architecture offset means the page is machine-independent.
	var archs []string
	if fields[2] != 0 {
		archs, err = decode.List(b, fields[2])
		if err != nil {
			return nil, err
		}
	}

	desc, err := decode.String(b, fields[3])
	if err != nil {
		return nil, err
	}

	// The files offset points at the format byte. The files list starts
	// directly after it.
	if fields[4] >= len(b) {
		return nil, fmt.Errorf("%w: format byte at offset %d in %d byte buffer", decode.ErrOutOfBounds, fields[4], len(b))
	}
	var format Format
	switch tag := b[fields[4]]; tag {
	case byte(FormatMdocMan):
		format = FormatMdocMan
	case byte(FormatPreformatted):
		format = FormatPreformatted
	default:
		return nil, fmt.Errorf("%w: 0x%02x at offset %d", ErrUnknownFormat, tag, fields[4])
	}

	files, err := decode.List(b, fields[4]+1)
	if err != nil {
		return nil, err
	}

	return &Page{
		Names:       names,
		Sections:    sects,
		Archs:       archs,
		Description: desc,
		Files:       files,
		Format:      format,
	}, nil
}
