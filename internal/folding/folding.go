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

// Package folding implements text folding for index entries.
package folding

import (
	"golang.org/x/text/cases"
)

// Fold performs Unicode case folding on s so that strings differing only in
// case fold to the same value. Folding is stable across inputs and suitable
// for building case-insensitive indexes.
func Fold(s string) string {
	// Casers carry internal state and cannot be shared between calls.
	return cases.Fold().String(s)
}
