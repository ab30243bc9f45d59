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

package mandocdb

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-mandocdb/decode"
	"github.com/ianlewis/go-mandocdb/internal/folding"
	"github.com/ianlewis/go-mandocdb/internal/index"
	"github.com/ianlewis/go-mandocdb/macros"
	"github.com/ianlewis/go-mandocdb/pages"
)

const (
	// Magic is the magic number found at the start and end of every
	// database.
	Magic = 0x3a7d0cdb

	// Version is the only supported database version.
	Version = 1
)

// Header field offsets.
const (
	magicOffset   = 0
	versionOffset = 4
	macrosOffset  = 8
	trailerOffset = 12
)

var (
	// ErrInvalidMagic indicates a bad magic number in the header or
	// trailer.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidVersion indicates an unsupported database version.
	ErrInvalidVersion = errors.New("invalid version")
)

// DB is a decoded mandoc.db database. All strings reachable from a DB alias
// the buffer given to Parse; the DB must not outlive it and the buffer must
// not be modified. A DB is read-only and safe for concurrent use.
type DB struct {
	buf     []byte
	version int
	pages   *pages.Pages
	macros  *macros.Macros

	indexOnce sync.Once
	nameIndex *index.Index[*indexedName]
}

// indexedName is one page name keyed by its case-folded value. The page and
// name positions keep equal folded names in database order.
type indexedName struct {
	folded string
	page   *pages.Page
}

// String implements fmt.Stringer.
func (n *indexedName) String() string {
	return n.folded
}

// Parse decodes and validates the database in buf. Parse either returns a
// fully decoded database or an error; it never returns partial results.
// Decoded strings alias buf, so buf must outlive the returned DB and must
// not be modified after Parse is called.
func Parse(buf []byte) (*DB, error) {
	magic, err := decode.Uint32(buf, magicOffset)
	if err != nil {
		return nil, err
	}
	trailerPtr, err := decode.Uint32(buf, trailerOffset)
	if err != nil {
		return nil, err
	}
	trailer, err := decode.Uint32(buf, int(trailerPtr))
	if err != nil {
		return nil, err
	}
	// The first and last four bytes must both be the magic number.
	if magic != Magic {
		return nil, fmt.Errorf("%w: header 0x%08x, want 0x%08x", ErrInvalidMagic, magic, uint32(Magic))
	}
	if trailer != Magic {
		return nil, fmt.Errorf("%w: trailer 0x%08x at offset %d, want 0x%08x", ErrInvalidMagic, trailer, trailerPtr, uint32(Magic))
	}

	version, err := decode.Uint32(buf, versionOffset)
	if err != nil {
		return nil, err
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d, want %d", ErrInvalidVersion, version, Version)
	}

	p, err := pages.Parse(buf)
	if err != nil {
		return nil, err
	}

	macrosPtr, err := decode.Uint32(buf, macrosOffset)
	if err != nil {
		return nil, err
	}
	m, err := macros.Parse(buf, int(macrosPtr))
	if err != nil {
		return nil, err
	}

	return &DB{
		buf:     buf,
		version: int(version),
		pages:   p,
		macros:  m,
	}, nil
}

// Open reads and parses the database at path. Databases compressed with
// dictzip(1) are decompressed when the path has a .dz extension.
func Open(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".dz") {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		r = z
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	db, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return db, nil
}

// Version returns the database format version.
func (db *DB) Version() int {
	return db.version
}

// PageCount returns the number of manual page entries.
func (db *DB) PageCount() int {
	return db.pages.Count
}

// MacroCount returns the number of macro tables.
func (db *DB) MacroCount() int {
	return db.macros.Count
}

// FileCount returns the total number of files across all pages.
func (db *DB) FileCount() int {
	var n int
	for _, p := range db.pages.Table {
		n += len(p.Files)
	}
	return n
}

// Pages returns the page entries in database order.
func (db *DB) Pages() []*pages.Page {
	return db.pages.Table
}

// Macros returns the macros collection.
func (db *DB) Macros() *macros.Macros {
	return db.macros
}

// PreformattedPages returns the pages whose source is not mdoc(7) or
// man(7), in database order.
func (db *DB) PreformattedPages() []*pages.Page {
	var preformatted []*pages.Page
	for _, p := range db.pages.Table {
		if p.Format == pages.FormatPreformatted {
			preformatted = append(preformatted, p)
		}
	}
	return preformatted
}

// Search performs a case-insensitive exact-name lookup and returns the
// first page matching name, by page order and then name order. ok is false
// when no page matches.
func (db *DB) Search(name string) (page *pages.Page, ok bool) {
	matches := db.index().Search(folding.Fold(name))
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0].page, true
}

// index lazily builds the case-folded name index.
func (db *DB) index() *index.Index[*indexedName] {
	db.indexOnce.Do(func() {
		var names []*indexedName
		for _, p := range db.pages.Table {
			for _, n := range p.Names {
				names = append(names, &indexedName{
					folded: folding.Fold(n.Value),
					page:   p,
				})
			}
		}
		db.nameIndex = index.NewIndex(names, strings.Compare)
	})
	return db.nameIndex
}
