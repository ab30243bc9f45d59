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

package macros_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-mandocdb/decode"
	"github.com/ianlewis/go-mandocdb/internal/testutil"
	"github.com/ianlewis/go-mandocdb/macros"
	"github.com/ianlewis/go-mandocdb/pages"
)

// macrosOffset reads the macros collection offset from the database header.
func macrosOffset(t *testing.T, buf []byte) int {
	t.Helper()
	return int(binary.BigEndian.Uint32(buf[8:]))
}

// testPage returns a single-name page for macro value references.
func testPage(source byte, name string) *testutil.Page {
	return &testutil.Page{
		Names: []testutil.Name{
			{Source: source, Text: name},
		},
		Sections: []string{"1"},
		Desc:     "test page",
		Files:    []string{"man1/" + name + ".1"},
		Format:   1,
	}
}

// TestParse tests macros.Parse.
func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("empty tables", func(t *testing.T) {
		t.Parallel()

		buf := testutil.New().Build()
		got, err := macros.Parse(buf, macrosOffset(t, buf))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if want, got := macros.TableCount, got.Count; want != got {
			t.Fatalf("Parse count; want: %d, got: %d", want, got)
		}
		if want, got := macros.TableCount, len(got.Tables); want != got {
			t.Fatalf("Parse tables; want: %d, got: %d", want, got)
		}
		for i, table := range got.Tables {
			if want, got := 0, table.Count; want != got {
				t.Fatalf("Parse table %d count; want: %d, got: %d", i, want, got)
			}
		}
	})

	t.Run("too few tables", func(t *testing.T) {
		t.Parallel()

		db := testutil.New()
		db.Tables = make([][]*testutil.Value, macros.TableCount-1)
		buf := db.Build()

		_, err := macros.Parse(buf, macrosOffset(t, buf))
		if want, got := decode.ErrCountMismatch, err; !errors.Is(got, want) {
			t.Fatalf("Parse; want error: %v, got: %v", want, got)
		}
	})

	t.Run("too many tables", func(t *testing.T) {
		t.Parallel()

		db := testutil.New()
		db.Tables = make([][]*testutil.Value, macros.TableCount+1)
		buf := db.Build()

		_, err := macros.Parse(buf, macrosOffset(t, buf))
		if want, got := decode.ErrCountMismatch, err; !errors.Is(got, want) {
			t.Fatalf("Parse; want error: %v, got: %v", want, got)
		}
	})

	t.Run("value with page references", func(t *testing.T) {
		t.Parallel()

		db := testutil.New()
		db.Pages = []*testutil.Page{
			testPage(0x01, "cat"),
			testPage(0x02, "ls"),
		}
		tables := make([][]*testutil.Value, macros.TableCount)
		tables[3] = []*testutil.Value{
			{Text: "Nm", PageRefs: []int{0, 1}},
			{Text: "Xr", PageRefs: []int{1}},
		}
		db.Tables = tables
		buf := db.Build()

		got, err := macros.Parse(buf, macrosOffset(t, buf))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		table := got.Tables[3]
		if want, got := 2, table.Count; want != got {
			t.Fatalf("Parse table count; want: %d, got: %d", want, got)
		}

		expected := []*macros.Value{
			{
				Text: "Nm",
				PageNames: [][]pages.Name{
					{
						{Value: "cat", Source: 0x01},
					},
					{
						{Value: "ls", Source: 0x02},
					},
				},
			},
			{
				Text: "Xr",
				PageNames: [][]pages.Name{
					{
						{Value: "ls", Source: 0x02},
					},
				},
			},
		}
		if diff := cmp.Diff(expected, table.Values); diff != "" {
			t.Fatalf("Parse values (-want, +got):\n%s", diff)
		}
	})

	t.Run("pages list ends at bound without terminator", func(t *testing.T) {
		t.Parallel()

		db := testutil.New()
		refs := make([]int, macros.MaxValuePages)
		for i := range refs {
			db.Pages = append(db.Pages, testPage(0x01, "page"))
			refs[i] = i
		}
		tables := make([][]*testutil.Value, macros.TableCount)
		tables[0] = []*testutil.Value{
			{Text: "Sh", PageRefs: refs},
		}
		db.Tables = tables
		buf := db.Build()

		got, err := macros.Parse(buf, macrosOffset(t, buf))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if want, got := macros.MaxValuePages, len(got.Tables[0].Values[0].PageNames); want != got {
			t.Fatalf("Parse page names; want: %d, got: %d", want, got)
		}
	})

	t.Run("truncated collection", func(t *testing.T) {
		t.Parallel()

		buf := testutil.New().Build()
		_, err := macros.Parse(buf, len(buf)-2)
		if want, got := decode.ErrOutOfBounds, err; !errors.Is(got, want) {
			t.Fatalf("Parse; want error: %v, got: %v", want, got)
		}
	})
}
