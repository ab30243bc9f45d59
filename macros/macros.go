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

// Package macros implements reading the mandoc.db macros collection.
//
// The macros collection maps mdoc(7) macro keys to the values that appear
// for them and the pages they appear in. It consists of the number of macro
// tables, which is fixed at 36, followed by the offset of each table. Each
// table consists of a value count followed by 8-byte value entries holding
// the offset of the value string and the offset of a list of page offsets.
package macros

import (
	"fmt"

	"github.com/ianlewis/go-mandocdb/decode"
	"github.com/ianlewis/go-mandocdb/pages"
)

const (
	// TableCount is the fixed number of macro tables in a database. It is a
	// property of the format, not a tunable.
	TableCount = 36

	// MaxValuePages is the fixed upper bound on entries in one value's
	// pages list. A list that reaches the bound ends there even without a
	// zero terminator.
	MaxValuePages = 21
)

// Macros is the database's macros collection.
type Macros struct {
	// Count is the declared number of macro tables. It is always
	// TableCount.
	Count int

	// Tables are the macro tables in file order.
	Tables []*Table
}

// Table is a single macro table.
type Table struct {
	// Count is the declared number of values in the table.
	Count int

	// Values are the table's value entries in file order. len(Values)
	// always equals Count.
	Values []*Value
}

// Value is a single macro value entry. It records the value string and, for
// every page the value appears in, that page's names.
type Value struct {
	// Text is the macro value string. It aliases the database buffer.
	Text string

	// PageNames holds one names list per page the value appears in.
	PageNames [][]pages.Name
}

// Parse reads the macros collection starting at off. A database must contain
// exactly TableCount tables and all of them must decode; anything else fails
// with decode.ErrCountMismatch.
func Parse(b []byte, off int) (*Macros, error) {
	count, err := decode.Uint32(b, off)
	if err != nil {
		return nil, err
	}
	if count != TableCount {
		return nil, fmt.Errorf("%w: %d macro tables declared, want %d", decode.ErrCountMismatch, count, TableCount)
	}

	var tables []*Table
	for i := 0; i < TableCount; i++ {
		tableOff, err := decode.Uint32(b, off+4+i*4)
		if err != nil {
			return nil, err
		}
		table, err := parseTable(b, int(tableOff))
		if err != nil {
			return nil, fmt.Errorf("macro table %d: %w", i, err)
		}
		tables = append(tables, table)
	}

	if len(tables) != TableCount {
		return nil, fmt.Errorf("%w: %d macro tables decoded, want %d", decode.ErrCountMismatch, len(tables), TableCount)
	}

	return &Macros{
		Count:  int(count),
		Tables: tables,
	}, nil
}

// parseTable reads the macro table starting at off.
func parseTable(b []byte, off int) (*Table, error) {
	count, err := decode.Uint32(b, off)
	if err != nil {
		return nil, err
	}
	// An empty table has no value entries to resolve.
	if count == 0 {
		return &Table{}, nil
	}

	var values []*Value
	for i := 0; i < int(count); i++ {
		value, err := parseValue(b, off+4+i*8)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values = append(values, value)
	}

	if len(values) != int(count) {
		return nil, fmt.Errorf("%w: %d values declared, %d decoded", decode.ErrCountMismatch, count, len(values))
	}

	return &Table{
		Count:  int(count),
		Values: values,
	}, nil
}

// parseValue reads the 8-byte value entry at off. The entry holds the offset
// of the value string and the offset of the value's pages list. Each pages
// list entry is the offset of a page entry in the pages table; the page's
// names list is resolved through its first field.
func parseValue(b []byte, off int) (*Value, error) {
	textOff, err := decode.Uint32(b, off)
	if err != nil {
		return nil, err
	}
	text, err := decode.String(b, int(textOff))
	if err != nil {
		return nil, err
	}

	pagesOff, err := decode.Uint32(b, off+4)
	if err != nil {
		return nil, err
	}

	var pageNames [][]pages.Name
	err = decode.ScanPointers(b, int(pagesOff), MaxValuePages, func(pageOff int) error {
		namesOff, err := decode.Uint32(b, pageOff)
		if err != nil {
			return err
		}
		names, err := pages.ParseNames(b, int(namesOff))
		if err != nil {
			return err
		}
		pageNames = append(pageNames, names)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Value{
		Text:      text,
		PageNames: pageNames,
	}, nil
}
