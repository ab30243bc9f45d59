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
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var infoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print database summary information",
	Action: func(c *cli.Context) error {
		db, path, err := openDB(c)
		if err != nil {
			return err
		}

		tbl := table.New("Field", "Value").WithWriter(c.App.Writer)
		tbl.AddRow("Path", path)
		tbl.AddRow("Version", db.Version())
		tbl.AddRow("Pages", db.PageCount())
		tbl.AddRow("Macro tables", db.MacroCount())
		tbl.AddRow("Files", db.FileCount())
		tbl.Print()

		preformatted := db.PreformattedPages()
		if len(preformatted) == 0 {
			fmt.Fprintln(c.App.Writer, "All pages use man(7) or mdoc(7).")
			return nil
		}

		fmt.Fprintf(c.App.Writer, "%d pages do not use man(7) or mdoc(7):\n", len(preformatted))
		for i, p := range preformatted {
			if i == 5 {
				// Only print the first 5 pages.
				fmt.Fprintln(c.App.Writer, "  - ...")
				break
			}
			names := make([]string, 0, len(p.Names))
			for _, n := range p.Names {
				names = append(names, n.Value)
			}
			fmt.Fprintf(c.App.Writer, "  - %s\n", strings.Join(names, ", "))
		}

		return nil
	},
}
