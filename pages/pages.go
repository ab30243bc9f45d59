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
	"fmt"

	"github.com/ianlewis/go-mandocdb/decode"
)

const (
	// countOffset is the fixed offset of the page count in the database.
	countOffset = 16

	// tableOffset is the fixed offset where page entries begin.
	tableOffset = 20
)

// Pages is the database's table of manual page entries.
type Pages struct {
	// Count is the declared number of pages.
	Count int

	// Table are the page entries in file order. len(Table) always equals
	// Count.
	Table []*Page
}

// Parse reads the pages table from the database buffer.
func Parse(b []byte) (*Pages, error) {
	count, err := decode.Uint32(b, countOffset)
	if err != nil {
		return nil, err
	}

	var table []*Page
	for i := 0; i < int(count); i++ {
		page, err := ParsePage(b, tableOffset+i*RecordSize)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		table = append(table, page)
	}

	if len(table) != int(count) {
		return nil, fmt.Errorf("%w: %d pages declared, %d decoded", decode.ErrCountMismatch, count, len(table))
	}

	return &Pages{
		Count: int(count),
		Table: table,
	}, nil
}
