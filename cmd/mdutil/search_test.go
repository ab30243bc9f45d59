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

package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-mandocdb"
	"github.com/ianlewis/go-mandocdb/internal/testutil"
)

// testREPL returns a repl over a small database.
func testREPL(t *testing.T) *repl {
	t.Helper()

	b := testutil.New()
	b.Pages = []*testutil.Page{
		{
			Names: []testutil.Name{
				{Source: 0x01, Text: "cat"},
			},
			Sections: []string{"1"},
			Desc:     "concatenate and print files",
			Files:    []string{"man1/cat.1"},
			Format:   1,
		},
		{
			Names: []testutil.Name{
				{Source: 0x02, Text: "LS"},
				{Source: 0x10, Text: "dir"},
			},
			Sections: []string{"1"},
			Desc:     "list directory contents",
			Files:    []string{"man1/ls.1"},
			Format:   1,
		},
	}

	db, err := mandocdb.Parse(b.Build())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	return &repl{
		db: db,
	}
}

// TestRepl_completer tests that completion matches names the same way
// search does.
func TestRepl_completer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string

		expected []string
	}{
		{
			name: "prefix match",
			line: "ca",

			expected: []string{"cat"},
		},
		{
			// Completion folds case like the search index does.
			name: "case-folded match",
			line: "ls",

			expected: []string{"LS"},
		},
		{
			name: "no match",
			line: "hoge",

			expected: nil,
		},
		{
			name: "empty line matches all names",
			line: "",

			expected: []string{"cat", "LS", "dir"},
		},
	}

	r := testREPL(t)

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, r.completer(test.line)); diff != "" {
				t.Fatalf("completer (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestApp_version tests that the version flag prints version information.
func TestApp_version(t *testing.T) {
	t.Parallel()

	app := newMdutilApp()
	var out bytes.Buffer
	app.Writer = &out

	if err := app.Run([]string{"mdutil", "--version"}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("Run: expected version output")
	}
}
