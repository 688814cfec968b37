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

// Package argv maps command-line arguments onto typed argument objects.
//
// Unlike the standard library's flag package, parsing revolves around
// self-contained argument values: each option owns its names, its default,
// its current value, and an optional binding into program state. The
// parser dispatches tokens to these objects and collects whatever is left
// over as positional arguments.
//
// The accepted syntax follows common command-line conventions: single-dash
// short options (POSIX-style, e.g., -v), double-dash long options
// (GNU-style, e.g., --verbose), grouped short options (-abc), values
// attached to short options (-p8080) or given with an equals sign
// (--port=8080), and the -- terminator after which everything is
// positional.
//
// # Usage
//
// Create a parser, register arguments from the arg package, and run a
// parse pass:
//
//	func main() {
//		p := argv.New("foobar", argv.WithVersion("1.4.2"))
//		p.Summary("A one-line summary of what the command does.")
//
//		port := arg.NewValue('p', "port", 8080, "Port to listen on")
//		host := arg.NewValue('h', "host", "localhost", "Host address to bind to")
//		verb := arg.NewSwitch('v', "verbose", false, "Enable verbose logging")
//		p.Add(port)
//		p.Add(host)
//		p.Add(verb)
//
//		rest, err := p.Parse(os.Args[1:])
//		if err != nil {
//			// Handle --help, --version, and parse errors...
//		}
//
//		fmt.Printf("%s:%d %v\n", host.Value(), port.Value(), rest)
//	}
//
// The automatically generated help message for the example above would be:
//
//	Usage: foobar [OPTION]...
//	       foobar --help
//
//	A one-line summary of what the command does.
//
//	Options:
//	  -p, --port [int]     Port to listen on (default: 8080)
//	  -h, --host [string]  Host address to bind to (default: localhost)
//	  -v, --verbose        Enable verbose logging
//	      --help           Display this help message and exit
//	      --version        Display version information and exit
//
// For the common case, the package-level functions Add, Scan, and Parse
// operate on a default parser named after the running executable.
//
// # Scanning
//
// Instead of constructing arguments by hand, Scan derives them from the
// exported fields of a struct. Field types select the argument kind: bool
// fields become toggle switches, while string, integer, float, and
// time.Duration fields become typed value arguments. Parsed values are
// written back to the fields by Update.
//
//	type Options struct {
//		Port    int           `arg:"port,short:p,desc:'Port to listen on'"`
//		Cache   time.Duration `arg:"cache,default:5m"`
//		Level   string        `arg:"level,choices:'debug,info,warn'"`
//		Verbose bool          `arg:",short:v"`
//		DB      DBOptions     // nested: --db-host, --db-port, ...
//		Ignored int           `arg:"-"`
//	}
//
// The behavior of each derived argument is controlled by the arg struct
// tag, a comma-separated option string. The first part is the long name;
// if empty, the kebab-cased field name is used (a NoColor field becomes
// --no-color). A tag of "-" skips the field. Nested structs group their
// fields under the parent's name as a prefix, and anonymous structs are
// flattened. The remaining parts are options in key:value format or
// boolean flags, with values optionally quoted:
//
//   - short:c sets a single-character alias
//   - desc:'...' sets the help text shown in the usage message
//   - default:... overrides the field's current value as the default
//   - required makes the parse pass fail unless the option occurs
//   - once rejects repeated occurrences
//   - env:KEY names an environment variable consulted when absent
//   - min:... and max:... bound the permitted values, given together
//   - choices:'a,b,c' restricts values to a fixed set
//
// # Value reports
//
// WriteValues renders the current value of every argument, one line per
// argument, through the parser's Templates. Boolean values render as "1"
// and "0".
package argv

import (
	"fmt"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/deep-rent/argv/arg"
	"golang.org/x/mod/semver"
)

// Lookup retrieves the value of an environment variable. It follows the
// signature of os.LookupEnv, returning the value and a boolean indicating
// whether the variable was present. A custom Lookup allows environment
// fallbacks to read from sources other than the actual environment, which
// is especially useful for testing.
type Lookup func(key string) (string, bool)

type config struct {
	log       *slog.Logger
	version   string
	templates Templates
	lookup    Lookup
	color     bool
}

// Option configures a Parser. It follows the functional options pattern.
type Option func(*config)

// WithLogger sets the logger used for debug output during parsing. It
// defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithVersion sets the version reported by the --version flag; providing a
// non-empty version is what enables the flag. Valid semantic versions are
// normalized to carry a leading "v", while any other string, such as
// "dev", is reported as given.
func WithVersion(version string) Option {
	return func(c *config) {
		version = strings.TrimSpace(version)
		if version == "" {
			return
		}
		if v := normalize(version); semver.IsValid(v) {
			version = v
		}
		c.version = version
	}
}

// WithTemplates sets the line formats used by value reports.
func WithTemplates(t Templates) Option {
	return func(c *config) {
		if t.Value != "" {
			c.templates.Value = t.Value
		}
	}
}

// WithLookup sets a custom lookup function for environment fallbacks. If
// not customized, os.LookupEnv is used.
func WithLookup(lookup Lookup) Option {
	return func(c *config) {
		if lookup != nil {
			c.lookup = lookup
		}
	}
}

// WithColor enables or disables color in the usage output. Colors are
// enabled by default but automatically drop out when the output is not a
// terminal or the NO_COLOR convention applies.
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.color = enabled
	}
}

// normalize prefixes v with "v" if missing, the spelling expected by the
// semver package.
func normalize(v string) string {
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// Parser manages a collection of argument objects and maps command-line
// tokens onto them.
type Parser struct {
	cmd       string
	sum       string
	version   string
	args      []arg.Argument
	short     map[rune]arg.Argument
	long      map[string]arg.Argument
	log       *slog.Logger
	templates Templates
	lookup    Lookup
	color     bool
}

// New creates an empty parser for the named command. The command name
// appears in the usage and version messages.
func New(cmd string, opts ...Option) *Parser {
	cfg := config{
		log:       slog.Default(),
		templates: DefaultTemplates,
		lookup:    os.LookupEnv,
		color:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{
		cmd:       cmd,
		version:   cfg.version,
		short:     make(map[rune]arg.Argument),
		long:      make(map[string]arg.Argument),
		log:       cfg.log,
		templates: cfg.templates,
		lookup:    cfg.lookup,
		color:     cfg.color,
	}
}

// Summary sets a one-line description for the command, shown in the usage
// message. If not set, no summary is displayed.
func (p *Parser) Summary(sum string) { p.sum = sum }

// Add registers the given argument. Registration panics when the argument
// carries no name at all or one of its names is already taken; use Scan to
// derive arguments from a struct with errors instead of panics.
func (p *Parser) Add(a arg.Argument) {
	info := a.Describe()
	if info.Short == 0 && info.Long == "" {
		panic("argument must have at least a short or long name")
	}
	if info.Short != 0 {
		if _, ok := p.short[info.Short]; ok {
			panic(fmt.Sprintf("duplicate short name %q", info.Short))
		}
		p.short[info.Short] = a
	}
	if info.Long != "" {
		if _, ok := p.long[info.Long]; ok {
			panic(fmt.Sprintf("duplicate long name %q", info.Long))
		}
		p.long[info.Long] = a
	}
	p.args = append(p.args, a)
}

// Args iterates over the registered arguments in registration order.
func (p *Parser) Args() iter.Seq[arg.Argument] {
	return slices.Values(p.args)
}
