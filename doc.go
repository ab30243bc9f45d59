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

// Package mandocdb implements a library for reading mandoc.db manual page
// index databases in pure Go.
//
// mandoc.db files are produced by makewhatis(8) and consumed by apropos(1),
// whatis(1), and man(1). A database is a single flat buffer containing (in
// order):
//  1. The magic number (0x3a7d0cdb).
//  2. The version number (currently 1).
//  3. The offset of the macros collection.
//  4. The offset of the magic number located at the end of the file.
//  5. The pages table.
//  6. The macros collection.
//  7. The magic number, again.
//
// Integers are 32-bit big-endian and offsets are relative to the start of
// the buffer. Strings are NUL-terminated UTF-8. String lists are sequences
// of strings terminated by one extra empty string.
//
// The whole database is decoded and validated up front by Parse; a database
// that decodes successfully can be read concurrently without further
// synchronization.
//
// More info on the database format can be found in mandoc.db(5):
// https://man.openbsd.org/mandoc.db.5
package mandocdb
