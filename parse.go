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
	"os"
	"strings"
	"unicode/utf8"

	"github.com/deep-rent/argv/arg"
)

var (
	// ErrHelp signals that a --help flag was encountered. The caller is
	// expected to display the usage message and exit.
	ErrHelp = errors.New("show help")

	// ErrVersion signals that a --version flag was encountered. The
	// caller is expected to display the version and exit.
	ErrVersion = errors.New("show version")
)

// Parse matches the given tokens against the registered arguments and
// returns the positional arguments left over. If args is nil, os.Args[1:]
// is used. Prior state is reset first, so each pass starts from the
// argument defaults.
//
// Tokens after a -- terminator are treated as positional. A --help token
// aborts the pass with ErrHelp, and --version does the same with
// ErrVersion when a version was configured. After the last token,
// arguments that did not occur fall back to their environment variables,
// if any, and required arguments that are still missing make the pass
// fail with a MissingArgError.
func (p *Parser) Parse(args []string) ([]string, error) {
	if args == nil {
		args = os.Args[1:]
	}
	p.Reset()

	canon, err := p.expand(args)
	if err != nil {
		return nil, err
	}

	var rest []string
	for i := 0; i < len(canon); {
		token := canon[i]
		if token == "--" {
			rest = append(rest, canon[i+1:]...)
			break
		}
		if len(token) < 2 || !strings.HasPrefix(token, "-") {
			rest = append(rest, token)
			i++
			continue
		}
		if token == "--help" {
			return nil, ErrHelp
		}
		if token == "--version" && p.version != "" {
			return nil, ErrVersion
		}
		a, ok := p.find(token)
		if !ok {
			return nil, UnknownFlagError{Token: token}
		}
		n, err := a.Parse(canon, i)
		if err != nil {
			return nil, err
		}
		p.log.Debug("Matched argument", "flag", a.Describe().Display(), "token", token)
		i += n
	}

	if err := p.fallback(); err != nil {
		return nil, err
	}
	return rest, nil
}

// expand rewrites grouped short options into their canonical one-flag-
// per-token form, so that -bd becomes -b -d and -p8080 becomes -p 8080.
// Whether a group member swallows the rest of the token as its value is
// decided by its Hint: switches take none, typed values take one. A token
// owed to a preceding value-taking flag is never treated as a group, so
// -i -123 passes through intact, as does everything after a -- terminator.
func (p *Parser) expand(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	value := false
	for i, token := range args {
		if value {
			out = append(out, token)
			value = false
			continue
		}
		if token == "--" {
			out = append(out, args[i:]...)
			break
		}
		if len(token) <= 2 || !strings.HasPrefix(token, "-") || strings.HasPrefix(token, "--") {
			out = append(out, token)
			value = p.wants(token)
			continue
		}
		keys := token[1:]
		for j, r := range keys {
			a, ok := p.short[r]
			if !ok {
				return nil, UnknownFlagError{Token: string(r), Group: token}
			}
			out = append(out, "-"+string(r))
			if a.Describe().Hint == "" {
				continue
			}
			if rest := keys[j+utf8.RuneLen(r):]; rest != "" {
				out = append(out, rest)
			} else {
				value = true
			}
			break
		}
	}
	return out, nil
}

// wants reports whether token names a registered flag that consumes the
// next token as its value. A value attached with "=" counts as supplied.
func (p *Parser) wants(token string) bool {
	if !strings.HasPrefix(token, "-") || strings.Contains(token, "=") {
		return false
	}
	a, ok := p.find(token)
	if !ok {
		return false
	}
	return a.Describe().Hint != ""
}

// find resolves a canonical flag token to the matching argument.
func (p *Parser) find(token string) (arg.Argument, bool) {
	if name, ok := strings.CutPrefix(token, "--"); ok {
		name, _, _ = strings.Cut(name, "=")
		a, ok := p.long[name]
		return a, ok
	}
	key := []rune(token[1:])
	if len(key) != 1 {
		return nil, false
	}
	a, ok := p.short[key[0]]
	return a, ok
}

// fallback applies environment values to arguments that did not occur on
// the command line and verifies that required arguments are satisfied.
func (p *Parser) fallback() error {
	for _, a := range p.args {
		info := a.Describe()
		if !a.Parsed() && info.EnvKey != "" {
			if raw, ok := p.lookup(info.EnvKey); ok {
				if err := a.SetDefault(raw); err != nil {
					return err
				}
				p.log.Debug("Applied environment fallback", "flag", info.Display(), "env", info.EnvKey)
				continue
			}
		}
		if info.Required && !a.Parsed() {
			return MissingArgError{Arg: info.Display()}
		}
	}
	return nil
}

// Reset restores every registered argument to its default value and
// clears its parsed state. Parse calls it automatically at the start of a
// pass.
func (p *Parser) Reset() {
	for _, a := range p.args {
		a.Init()
	}
	p.log.Debug("Reset arguments", "count", len(p.args))
}

// Update pushes the current value of every registered argument into its
// binding, if any. Arguments without a binding are skipped. The first
// failing binding aborts the update.
func (p *Parser) Update() error {
	for _, a := range p.args {
		if err := a.Update(); err != nil {
			return err
		}
	}
	p.log.Debug("Updated bindings", "count", len(p.args))
	return nil
}
