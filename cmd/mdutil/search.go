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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mandocdb"
	"github.com/ianlewis/go-mandocdb/internal/folding"
)

var searchCommand = &cli.Command{
	Name:  "search",
	Usage: "Search for manual pages interactively",
	Action: func(c *cli.Context) error {
		db, path, err := openDB(c)
		if err != nil {
			return err
		}

		r := &repl{
			db:   db,
			path: path,
			out:  c.App.Writer,
		}
		return r.run()
	},
}

// repl is the interactive search loop.
type repl struct {
	db   *mandocdb.DB
	path string
	out  io.Writer
	line *liner.State
}

// historyFile returns the path to the search history file.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mdutil_history")
}

// run starts the search loop.
func (r *repl) run() error {
	r.line = liner.NewLiner()
	defer r.line.Close()

	r.line.SetCtrlCAborts(true)
	r.line.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(r.out, "%s: %d pages, %d macro tables\n", r.path, r.db.PageCount(), r.db.MacroCount())
	fmt.Fprintln(r.out, `Type "quit" or Ctrl-D to exit.`)
	fmt.Fprintln(r.out)

	for {
		query, err := r.line.Prompt("search> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				break
			}
			return fmt.Errorf("%w: reading input: %w", ErrMdutil, err)
		}

		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		if strings.EqualFold(query, "quit") {
			break
		}

		r.line.AppendHistory(query)

		page, ok := r.db.Search(query)
		if !ok {
			fmt.Fprintf(r.out, "No results for %q.\n\n", query)
			continue
		}
		printPage(r.out, page)
		fmt.Fprintln(r.out)
	}

	r.saveHistory()

	return nil
}

// saveHistory persists search history to disk.
func (r *repl) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.line.WriteHistory(f)
			f.Close()
		}
	}
}

// completer completes page names by prefix. Names are folded the same way
// the search index folds them so completion and search agree on matches.
func (r *repl) completer(line string) []string {
	var completions []string
	prefix := folding.Fold(line)
	for _, p := range r.db.Pages() {
		for _, n := range p.Names {
			if strings.HasPrefix(folding.Fold(n.Value), prefix) {
				completions = append(completions, n.Value)
			}
		}
	}
	return completions
}
