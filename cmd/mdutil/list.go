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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "List the database's manual page entries",
	Action: func(c *cli.Context) error {
		db, _, err := openDB(c)
		if err != nil {
			return err
		}

		tbl := table.New("Name", "Section", "Arch", "Description").WithWriter(c.App.Writer)
		for _, p := range db.Pages() {
			names := make([]string, 0, len(p.Names))
			for _, n := range p.Names {
				names = append(names, n.Value)
			}
			arch := "machine-independent"
			if p.Archs != nil {
				arch = strings.Join(p.Archs, ", ")
			}
			tbl.AddRow(
				strings.Join(names, ", "),
				strings.Join(p.Sections, ", "),
				arch,
				p.Description,
			)
		}
		tbl.Print()

		return nil
	},
}
