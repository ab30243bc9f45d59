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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mandocdb"
	"github.com/ianlewis/go-mandocdb/pages"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrMdutil is a parent error for all command errors.
var ErrMdutil = errors.New("mdutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrMdutil)

// ErrNoDatabase indicates that no database was given and none was found at
// the default locations.
var ErrNoDatabase = fmt.Errorf("%w: no database found", ErrMdutil)

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `mdutil --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// openDB opens the database from the --db flag or the first database found
// at the platform's default locations.
func openDB(c *cli.Context) (*mandocdb.DB, string, error) {
	path := c.String("db")
	if path == "" {
		for _, loc := range dbLocations() {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}
	if path == "" {
		return nil, "", ErrNoDatabase
	}

	db, err := mandocdb.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrMdutil, err)
	}
	return db, path, nil
}

// printPage writes a page entry in a human readable form.
func printPage(w io.Writer, p *pages.Page) {
	names := make([]string, 0, len(p.Names))
	for _, n := range p.Names {
		names = append(names, n.Value)
	}
	fmt.Fprintf(w, "* Names: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(w, "* Sections: %s\n", strings.Join(p.Sections, ", "))
	if p.Archs == nil {
		fmt.Fprintln(w, "* Architectures: machine-independent")
	} else {
		fmt.Fprintf(w, "* Architectures: %s\n", strings.Join(p.Archs, ", "))
	}
	fmt.Fprintf(w, "* Description: %s\n", p.Description)
	fmt.Fprintf(w, "* Files: %s\n", strings.Join(p.Files, ", "))
	fmt.Fprintf(w, "* Format: %s\n", p.Format)
}

var copyrightNames = []string{
	"2025 Ian Lewis",
}

func newMdutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Read mandoc.db manual page databases.",
		Description: strings.Join([]string{
			"mandoc.db utility written in Go.",
			"http://github.com/ianlewis/go-mandocdb",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db",
				Usage:   "read the database at `PATH`",
				Aliases: []string{"f"},
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			infoCommand,
			listCommand,
			queryCommand,
			searchCommand,
		},
	}
}
