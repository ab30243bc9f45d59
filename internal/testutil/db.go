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

// Package testutil builds mandoc.db buffers for tests.
package testutil

import (
	"encoding/binary"
)

const (
	magicNumber   = 0x3a7d0cdb
	versionNumber = 1

	// macroTableCount is the number of macro tables a well-formed database
	// contains.
	macroTableCount = 36

	// maxValuePages is the pages list bound. Lists this long are written
	// without a zero terminator, as mandoc does.
	maxValuePages = 21
)

// Name is a single page name with its source byte.
type Name struct {
	Source byte
	Text   string
}

// Page describes one page entry to build.
type Page struct {
	Names    []Name
	Sections []string
	// Archs nil means machine-independent: the entry's architecture offset
	// is written as zero.
	Archs []string
	Desc  string
	Files []string
	// Format is the format tag byte written before the files list.
	Format byte
}

// Value describes one macro value to build.
type Value struct {
	Text string
	// PageRefs are indexes into the database's Pages slice. The built pages
	// list points at those pages' entries.
	PageRefs []int
}

// DB describes a mandoc.db buffer to build.
type DB struct {
	Magic        uint32
	Version      uint32
	TrailerMagic uint32
	Pages        []*Page
	// Tables holds the macro tables. If nil, 36 empty tables are written.
	// Tests exercising the fixed-count validation can set a different
	// number of tables.
	Tables [][]*Value
}

// New returns a DB with a valid header, trailer, and empty macros
// collection.
func New() *DB {
	return &DB{
		Magic:        magicNumber,
		Version:      versionNumber,
		TrailerMagic: magicNumber,
	}
}

// Build writes the database buffer.
func (d *DB) Build() []byte {
	var b []byte

	appendU32 := func(v uint32) {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	patch := func(at int, v uint32) {
		binary.BigEndian.PutUint32(b[at:], v)
	}
	appendString := func(s string) {
		b = append(b, s...)
		b = append(b, 0)
	}
	appendList := func(list []string) {
		for _, s := range list {
			appendString(s)
		}
		b = append(b, 0)
	}

	// Header.
	appendU32(d.Magic)
	appendU32(d.Version)
	macrosPtrAt := len(b)
	appendU32(0)
	trailerPtrAt := len(b)
	appendU32(0)
	appendU32(uint32(len(d.Pages)))

	// Page entries are patched once their payloads are placed.
	entryAt := make([]int, len(d.Pages))
	for i := range d.Pages {
		entryAt[i] = len(b)
		b = append(b, make([]byte, 20)...)
	}

	for i, p := range d.Pages {
		patch(entryAt[i], uint32(len(b)))
		for _, n := range p.Names {
			b = append(b, n.Source)
			appendString(n.Text)
		}
		b = append(b, 0)

		patch(entryAt[i]+4, uint32(len(b)))
		appendList(p.Sections)

		if p.Archs != nil {
			patch(entryAt[i]+8, uint32(len(b)))
			appendList(p.Archs)
		}

		patch(entryAt[i]+12, uint32(len(b)))
		appendString(p.Desc)

		patch(entryAt[i]+16, uint32(len(b)))
		b = append(b, p.Format)
		appendList(p.Files)
	}

	// Macros collection.
	tables := d.Tables
	if tables == nil {
		tables = make([][]*Value, macroTableCount)
	}
	patch(macrosPtrAt, uint32(len(b)))
	appendU32(uint32(len(tables)))
	tablePtrAt := len(b)
	for range tables {
		appendU32(0)
	}

	for ti, values := range tables {
		patch(tablePtrAt+ti*4, uint32(len(b)))
		appendU32(uint32(len(values)))
		valueAt := len(b)
		b = append(b, make([]byte, 8*len(values))...)

		for vi, v := range values {
			patch(valueAt+vi*8, uint32(len(b)))
			appendString(v.Text)
			// mandoc pads value strings to a 4-byte boundary.
			for len(b)%4 != 0 {
				b = append(b, 0)
			}

			patch(valueAt+vi*8+4, uint32(len(b)))
			for _, ref := range v.PageRefs {
				appendU32(uint32(entryAt[ref]))
			}
			if len(v.PageRefs) < maxValuePages {
				appendU32(0)
			}
		}
	}

	// Trailer.
	patch(trailerPtrAt, uint32(len(b)))
	appendU32(d.TrailerMagic)

	return b
}
