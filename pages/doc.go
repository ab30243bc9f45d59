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

// Package pages implements reading the mandoc.db pages table.
//
// The pages table starts with the total number of page entries and is
// followed by the entries themselves. Each page entry is 20 bytes and
// consists of five big-endian 32-bit offsets, in order:
//  1. The offset of the names list. Each name is preceded by a byte
//     recording where the name appeared (see Name).
//  2. The offset of the section strings list.
//  3. The offset of the architecture strings list. A zero offset means the
//     page is machine-independent.
//  4. The offset of the one-line description string.
//  5. The offset of the filename strings list. The first filename is
//     preceded by a byte indicating the page's format (see Format).
package pages
