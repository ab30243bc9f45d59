// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type entry struct {
	key string
	pos int
}

func (e entry) String() string {
	return e.key
}

func TestIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    []entry
		query    string
		expected []entry
	}{
		{
			name: "single result",
			index: []entry{
				{key: "foo", pos: 0},
				{key: "bar", pos: 1},
				{key: "baz", pos: 2},
			},
			query: "foo",
			expected: []entry{
				{key: "foo", pos: 0},
			},
		},
		{
			name: "equal keys keep original order",
			index: []entry{
				{key: "foo", pos: 0},
				{key: "bar", pos: 1},
				{key: "baz", pos: 2},
				{key: "bar", pos: 3},
			},
			query: "bar",
			expected: []entry{
				{key: "bar", pos: 1},
				{key: "bar", pos: 3},
			},
		},
		{
			name: "no results",
			index: []entry{
				{key: "foo", pos: 0},
				{key: "bar", pos: 1},
			},
			query:    "none",
			expected: nil,
		},
		{
			name:     "empty index",
			index:    nil,
			query:    "foo",
			expected: nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex(test.index, strings.Compare)

			opts := cmp.AllowUnexported(entry{})
			if diff := cmp.Diff(test.expected, index.Search(test.query), opts); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}
