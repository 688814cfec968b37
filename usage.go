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
	"fmt"
	"io"
	"strings"

	"github.com/deep-rent/argv/arg"
	"github.com/fatih/color"
)

// Templates controls the line formats used by value reports.
type Templates struct {
	// Value renders one line per argument in a value report. It is a fmt
	// format string receiving the display name and the rendered value,
	// in that order.
	Value string
}

// DefaultTemplates holds the formats used unless WithTemplates overrides
// them.
var DefaultTemplates = Templates{
	Value: "%s: %s\n",
}

// WriteValue writes one line reporting the current value of a to w, using
// the parser's value template. Boolean values render as "1" and "0".
// Write failures are ignored.
func (p *Parser) WriteValue(w io.Writer, a arg.Argument) {
	fmt.Fprintf(w, p.templates.Value, a.Describe().Display(), a.ValueString())
}

// WriteValues reports the current value of every registered argument to
// w, one line each in registration order.
func (p *Parser) WriteValues(w io.Writer) {
	for _, a := range p.args {
		p.WriteValue(w, a)
	}
}

// Version renders the version line shown for the --version flag, such as
// "foobar v1.4.2".
func (p *Parser) Version() string {
	return strings.TrimSpace(p.cmd + " " + p.version)
}

// Usage generates a formatted help message, detailing all registered
// arguments, their value types, descriptions, and default values.
// Headings and option names are colored unless WithColor disabled them.
func (p *Parser) Usage() string {
	heading := color.New(color.Bold)
	names := color.New(color.FgCyan)
	if !p.color {
		heading.DisableColor()
		names.DisableColor()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s [OPTION]...\n", heading.Sprint("Usage:"), p.cmd)
	fmt.Fprintf(&b, "       %s --help\n\n", p.cmd)
	if p.sum != "" {
		fmt.Fprintf(&b, "%s\n\n", p.sum)
	}
	fmt.Fprintf(&b, "%s\n", heading.Sprint("Options:"))

	rows := make([]arg.Info, 0, len(p.args)+2)
	for _, a := range p.args {
		rows = append(rows, a.Describe())
	}
	rows = append(rows, arg.Info{
		Long:        "help",
		Description: "Display this help message and exit",
	})
	if p.version != "" {
		rows = append(rows, arg.Info{
			Long:        "version",
			Description: "Display version information and exit",
		})
	}

	// Alignment is computed on the uncolored names, as escape codes
	// carry no width.
	offset := 0
	for _, info := range rows {
		if l := len(format(info)); l > offset {
			offset = l
		}
	}
	for _, info := range rows {
		left := format(info)
		space := strings.Repeat(" ", offset-len(left)+2)
		desc := info.Description
		if info.Required {
			desc = strings.TrimSpace(desc + " (required)")
		}
		if def := formatDefault(info); def != "" {
			desc = strings.TrimSpace(desc + " " + def)
		}
		fmt.Fprintf(&b, "  %s%s%s\n", names.Sprint(left), space, desc)
	}
	return b.String()
}

// format builds the left-hand side of a help message line.
// Example: "-p, --port [int]"
func format(info arg.Info) string {
	var out string
	if info.Short != 0 {
		out = "-" + string(info.Short)
		if info.Long != "" {
			out += ", "
		}
	} else {
		out = "    "
	}
	if info.Long != "" {
		out += "--" + info.Long
	}
	if info.Hint != "" {
		out += " [" + info.Hint + "]"
	}
	return out
}

// formatDefault creates the default value string, like "(default: 8080)".
// It returns an empty string for absent defaults to keep the help concise.
func formatDefault(info arg.Info) string {
	if info.Default == "" {
		return ""
	}
	return "(default: " + info.Default + ")"
}
