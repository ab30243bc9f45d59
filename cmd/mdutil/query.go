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

	"github.com/urfave/cli/v2"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Look up a manual page by name",
	ArgsUsage: "NAME",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one NAME argument", ErrMdutil)
		}
		name := c.Args().Get(0)

		db, _, err := openDB(c)
		if err != nil {
			return err
		}

		page, ok := db.Search(name)
		if !ok {
			fmt.Fprintf(c.App.Writer, "No results for %q.\n", name)
			return nil
		}
		printPage(c.App.Writer, page)

		return nil
	},
}
