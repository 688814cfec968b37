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

// Package arg defines the argument kinds understood by the argv parser.
//
// Every command-line option is represented by an argument object that owns
// its names, its current value, and its parsing behavior. The package ships
// the following kinds:
//
//   - Switch: a boolean option that takes no value and toggles on every
//     occurrence (e.g., -v or --verbose).
//   - Value: a typed option that consumes one value, either attached
//     (--port=8080) or as the following token (--port 8080).
//   - NewBounded and NewEnumerated: Value constructors that certify
//     parsed values against a closed interval or a fixed set of choices.
//
// All kinds implement the Argument interface consumed by the parser. They
// can equally be driven by hand: call Parse with a token slice and the
// position of the token that names the argument.
//
// # Bindings
//
// An argument can push its parsed value into program state through a
// Binding. BindTo attaches a typed setter function, while BindField targets
// a struct field by name, resolved via reflection no earlier than Update
// time. See the Binding documentation for details.
package arg

import (
	"strings"
	"unicode/utf8"
)

// Info describes an argument for display and dispatch purposes.
type Info struct {
	Short       rune   // single-character name, 0 if absent
	Long        string // long-form name, empty if absent
	Description string // help text shown in usage output
	Hint        string // value placeholder such as "int"; empty for switches
	Default     string // rendered default value; zero defaults are hidden
	EnvKey      string // environment variable consulted as fallback
	Required    bool
}

// Display returns the name an argument is referred to by in messages and
// value listings: the long name when present, otherwise the short name.
func (i Info) Display() string {
	if i.Long != "" {
		return i.Long
	}
	return string(i.Short)
}

// Argument is the contract between the parser and a single command-line
// option. The concrete kinds in this package cover the common cases; custom
// implementations may be registered with a parser all the same.
type Argument interface {
	// Describe reports the argument's names and display metadata.
	Describe() Info

	// Parsed reports whether the argument matched a token during the
	// current parse pass.
	Parsed() bool

	// ValueString renders the current value for value listings. Booleans
	// render as "1" or "0".
	ValueString() string

	// Parse consumes the argument's tokens from args, starting at position
	// i, which must name the argument. It returns the number of consumed
	// tokens. On error, no state has been modified and nothing was
	// consumed.
	Parse(args []string, i int) (int, error)

	// Init restores the default value and clears the parsed state, undoing
	// the effects of any previous pass.
	Init()

	// Update pushes the current value into the attached binding. Without a
	// binding, it does nothing.
	Update() error

	// SetDefault replaces the default value with one parsed from text.
	// Unless the argument already matched during the current pass, the
	// current value follows the new default.
	SetDefault(text string) error
}

// Base carries the metadata and per-pass state shared by all argument
// kinds: names, help text, occurrence tracking, and the optional binding.
// It is embedded by the concrete kinds and not used on its own.
type Base struct {
	short    rune
	long     string
	desc     string
	env      string
	required bool
	once     bool
	parsed   bool
	binding  *Binding
}

// newBase validates the argument names. At least one name must be given,
// and long names must not collide with the single-character space reserved
// for short names.
func newBase(short rune, long, desc string) Base {
	if short == 0 && long == "" {
		panic("argument must have at least a short or long name")
	}
	if long != "" && utf8.RuneCountInString(long) < 2 {
		panic("long name must have at least two characters")
	}
	return Base{short: short, long: long, desc: desc}
}

// Parsed reports whether the argument matched a token during the current
// parse pass.
func (b *Base) Parsed() bool { return b.parsed }

// Display returns the name the argument is referred to by in messages and
// value listings: the long name when present, otherwise the short name.
func (b *Base) Display() string {
	if b.long != "" {
		return b.long
	}
	return string(b.short)
}

// Require marks the argument as mandatory. A parse pass fails unless the
// argument occurs at least once or its environment fallback is set.
func (b *Base) Require() { b.required = true }

// Once restricts the argument to at most one occurrence per parse pass.
// Further occurrences fail with a RepeatError.
func (b *Base) Once() { b.once = true }

// FromEnv names an environment variable for the parser to consult when the
// argument does not occur on the command line.
func (b *Base) FromEnv(key string) { b.env = key }

// Bind attaches the binding that receives the current value on Update. A
// nil binding detaches.
func (b *Base) Bind(binding *Binding) { b.binding = binding }

// info assembles the name and display metadata common to all kinds.
func (b *Base) info() Info {
	return Info{
		Short:       b.short,
		Long:        b.long,
		Description: b.desc,
		EnvKey:      b.env,
		Required:    b.required,
	}
}

// match checks whether the given token names this argument. For long-form
// tokens, an attached "=value" part is split off and returned.
func (b *Base) match(token string) (string, bool, error) {
	if strings.HasPrefix(token, "--") {
		name, value, found := strings.Cut(token[2:], "=")
		if b.long != "" && name == b.long {
			return value, found, nil
		}
	} else if len(token) > 1 && token[0] == '-' {
		if b.short != 0 && token == "-"+string(b.short) {
			return "", false, nil
		}
	}
	return "", false, MatchError{Arg: b.Display(), Token: token}
}

// repeatable reports an error if the argument already matched and repeats
// are not allowed.
func (b *Base) repeatable() error {
	if b.parsed && b.once {
		return RepeatError{Arg: b.Display()}
	}
	return nil
}

// markParsed records a successful match.
func (b *Base) markParsed() { b.parsed = true }

// reset clears the per-pass state.
func (b *Base) reset() { b.parsed = false }

// update delivers v to the attached binding, if any.
func (b *Base) update(v any) error {
	if b.binding == nil {
		return nil
	}
	if err := b.binding.apply(v); err != nil {
		return BindingError{
			Arg:    b.Display(),
			Field:  b.binding.field,
			Target: b.binding.object,
			Err:    err,
		}
	}
	return nil
}
