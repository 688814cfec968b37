// Copyright (c) 2025-present deep.rent GmbH (https://deep.rent)
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

package argv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/deep-rent/argv/arg"
)

// std is the default, package-level parser.
var std = New(filepath.Base(os.Args[0]))

// Summary sets a one-line description for the command, shown in the
// usage message of the default parser. If not set, no summary is
// displayed.
func Summary(sum string) { std.Summary(sum) }

// Add registers an argument with the default parser.
func Add(a arg.Argument) { std.Add(a) }

// Scan derives arguments from the exported fields of the struct pointed
// to by v and registers them with the default parser.
func Scan(v any) error { return std.Scan(v) }

// Parse parses os.Args using the default parser and returns the leftover
// positional arguments.
//
// This function must be called after all arguments have been added. If a
// --help or --version flag is encountered, it prints the corresponding
// message and exits. On error, it prints the error message followed by
// the usage message and exits with a non-zero status code.
func Parse() []string {
	rest, err := std.Parse(os.Args[1:])
	if err == nil {
		return rest
	}
	if errors.Is(err, ErrVersion) {
		fmt.Fprintln(os.Stdout, std.Version())
		os.Exit(0)
	}
	code := 0
	if !errors.Is(err, ErrHelp) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = 1
	}
	Usage()
	os.Exit(code)
	return nil
}

// Update pushes the parsed values of the default parser into their
// bindings.
func Update() error { return std.Update() }

// Usage prints the help message for the default parser.
func Usage() { fmt.Fprint(os.Stdout, std.Usage()) }

// WriteValues reports the current argument values of the default parser
// to w.
func WriteValues(w io.Writer) { std.WriteValues(w) }
