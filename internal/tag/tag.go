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

// Package tag parses the `arg` struct tag into its option spec.
package tag

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Spec holds the parsed contents of an `arg` struct tag. String options
// appear exactly as written in the tag; conversion to the field's type is
// left to the caller.
type Spec struct {
	Name       string // long option name; empty means derive from the field
	Short      rune   // single-character alias, 0 if absent
	Desc       string // help text
	Default    string // unparsed default value
	HasDefault bool   // distinguishes an empty default from none
	Env        string // environment variable consulted as fallback
	Min        string // unparsed lower bound
	Max        string // unparsed upper bound
	HasMin     bool
	HasMax     bool
	Choices    []string // permitted values
	Required   bool
	Once       bool // reject repeated occurrences
}

// Parse parses the given `arg` tag string. The first comma-separated part is
// the option name; the remaining parts are options in key:value format or
// boolean flags. Values may be quoted to allow commas within them, e.g.,
// `choices:'a,b,c'`.
func Parse(s string) (Spec, error) {
	var spec Spec

	// The first part is always the option name.
	name, rest, _ := strings.Cut(s, ",")
	spec.Name = name

	// Scan through the remaining options.
	for rest != "" {
		// Trim leading space from the rest of the string.
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			break
		}

		// Find the end of the current option part by finding the next
		// comma that is not inside quotes.
		end := -1
		inQuote := false
		var quote rune
		for i, r := range rest {
			if r == quote {
				inQuote = false
				quote = 0
			} else if !inQuote && (r == '\'' || r == '"') {
				inQuote = true
				quote = r
			} else if !inQuote && r == ',' {
				end = i
				break
			}
		}

		var part string
		if end == -1 {
			// This is the last option part.
			part = rest
			rest = ""
		} else {
			part = rest[:end]
			rest = rest[end+1:]
		}

		// Now, parse the individual part (e.g., "desc:'height, in meters'").
		key, val, found := strings.Cut(part, ":")
		key = strings.TrimSpace(key)
		if !found {
			// This is a boolean flag like "required" or "once".
			switch key {
			case "required":
				spec.Required = true
			case "once":
				spec.Once = true
			case "":
				// An empty part can result from trailing or double commas. Ignore it.
			default:
				return spec, fmt.Errorf("unknown tag option: %q", key)
			}
			continue
		}
		val = unquote(val)
		switch key {
		case "short":
			if utf8.RuneCountInString(val) != 1 {
				return spec, fmt.Errorf("short name %q must be a single character", val)
			}
			r, _ := utf8.DecodeRuneInString(val)
			spec.Short = r
		case "desc":
			spec.Desc = val
		case "default":
			spec.Default = val
			spec.HasDefault = true
		case "env":
			spec.Env = val
		case "min":
			spec.Min = val
			spec.HasMin = true
		case "max":
			spec.Max = val
			spec.HasMax = true
		case "choices":
			for _, c := range strings.Split(val, ",") {
				if c = strings.TrimSpace(c); c != "" {
					spec.Choices = append(spec.Choices, c)
				}
			}
		default:
			return spec, fmt.Errorf("unknown tag option: %q", key)
		}
	}
	return spec, nil
}

// unquote removes a single layer of surrounding single or double quotes from a
// string. If the string is not quoted, it is returned unchanged.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	// Check for double quotes.
	if s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	// Check for single quotes.
	if s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}
