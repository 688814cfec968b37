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

package arg

import "errors"

// Switch is a boolean argument that takes no value. Each occurrence on the
// command line toggles the current value, so a switch defaulting to true is
// turned off by its first occurrence, and repeating a switch an even number
// of times leaves the default in place.
type Switch struct {
	Base
	def   bool
	value bool
}

var _ Argument = (*Switch)(nil)

var errNoValue = errors.New("switch takes no value")

// NewSwitch creates a boolean argument named by a single-character short
// name, a long name, or both. Pass 0 and "" to omit either name; omitting
// both is a programming error and panics. The default def is the value
// reported when the switch never occurs.
func NewSwitch(short rune, long string, def bool, desc string) *Switch {
	return &Switch{Base: newBase(short, long, desc), def: def, value: def}
}

// Value returns the current value.
func (s *Switch) Value() bool { return s.value }

// Describe implements the Argument interface.
func (s *Switch) Describe() Info {
	info := s.info()
	if s.def {
		info.Default = "true"
	}
	return info
}

// ValueString renders the current value as "1" or "0".
func (s *Switch) ValueString() string {
	if s.value {
		return "1"
	}
	return "0"
}

// Parse consumes the token at position i and toggles the value. The token
// must spell one of the switch names exactly; attached values in the style
// of --verbose=true are rejected because a switch carries no value. On
// success, Parse reports 1 consumed token.
func (s *Switch) Parse(args []string, i int) (int, error) {
	if i < 0 || i >= len(args) {
		return 0, MatchError{Arg: s.Display()}
	}
	value, attached, err := s.match(args[i])
	if err != nil {
		return 0, err
	}
	if attached {
		return 0, ValueError{Arg: s.Display(), Value: value, Err: errNoValue}
	}
	if err := s.repeatable(); err != nil {
		return 0, err
	}
	s.value = !s.value
	s.markParsed()
	return 1, nil
}

// Init restores the default value and clears the parsed state.
func (s *Switch) Init() {
	s.reset()
	s.value = s.def
}

// Update implements the Argument interface.
func (s *Switch) Update() error { return s.update(s.value) }

// SetDefault implements the Argument interface. The text must parse as a
// boolean.
func (s *Switch) SetDefault(text string) error {
	v, err := ParseText[bool](text)
	if err != nil {
		return ValueError{Arg: s.Display(), Value: text, Err: err}
	}
	s.def = v
	if !s.parsed {
		s.value = v
	}
	return nil
}
