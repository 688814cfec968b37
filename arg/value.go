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

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/deep-rent/argv/internal/primitive"
)

// Value is a typed argument that consumes exactly one value, attached to
// the name (--port=8080) or given as the following token (--port 8080). The
// type parameter covers bool, string, the sized integer and float types,
// and time.Duration.
type Value[T any] struct {
	Base
	def   T
	value T
	check func(T) error
}

var _ Argument = (*Value[int])(nil)

var errMissingValue = errors.New("missing value")

// NewValue creates a typed argument with the given names and default value.
// Pass 0 and "" to omit either name; omitting both is a programming error
// and panics, as is an unsupported type parameter.
func NewValue[T any](short rune, long string, def T, desc string) *Value[T] {
	if t := reflect.TypeFor[T](); !primitive.Is(t) {
		panic(fmt.Sprintf("unsupported value type: %s", t))
	}
	return &Value[T]{Base: newBase(short, long, desc), def: def, value: def}
}

// Certify installs a check that values must pass before they are accepted.
// It replaces any previously installed check. The default value is exempt.
func (v *Value[T]) Certify(check func(T) error) { v.check = check }

// Value returns the current value.
func (v *Value[T]) Value() T { return v.value }

// Describe implements the Argument interface.
func (v *Value[T]) Describe() Info {
	info := v.info()
	info.Hint = primitive.Name(reflect.TypeFor[T]())
	if !reflect.ValueOf(v.def).IsZero() {
		info.Default = fmt.Sprint(v.def)
	}
	return info
}

// ValueString renders the current value. Booleans render as "1" or "0".
func (v *Value[T]) ValueString() string {
	if b, ok := any(v.value).(bool); ok {
		if b {
			return "1"
		}
		return "0"
	}
	return fmt.Sprint(v.value)
}

// Parse consumes the token at position i and, unless the value is attached
// with "=", the following token as the value. It reports the number of
// consumed tokens: 1 for attached values, 2 otherwise. The value token is
// taken blindly, so a value may start with a dash.
func (v *Value[T]) Parse(args []string, i int) (int, error) {
	if i < 0 || i >= len(args) {
		return 0, MatchError{Arg: v.Display()}
	}
	raw, attached, err := v.match(args[i])
	if err != nil {
		return 0, err
	}
	if err := v.repeatable(); err != nil {
		return 0, err
	}
	n := 1
	if !attached {
		if i+1 >= len(args) {
			return 0, ValueError{Arg: v.Display(), Err: errMissingValue}
		}
		raw = args[i+1]
		n = 2
	}
	val, err := v.certified(raw)
	if err != nil {
		return 0, err
	}
	v.value = val
	v.markParsed()
	return n, nil
}

// Init restores the default value and clears the parsed state.
func (v *Value[T]) Init() {
	v.reset()
	v.value = v.def
}

// Update implements the Argument interface.
func (v *Value[T]) Update() error { return v.update(v.value) }

// SetDefault implements the Argument interface. The text must parse as a T
// and pass certification.
func (v *Value[T]) SetDefault(text string) error {
	val, err := v.certified(text)
	if err != nil {
		return err
	}
	v.def = val
	if !v.parsed {
		v.value = val
	}
	return nil
}

// certified converts raw into a T and runs it through the installed check.
func (v *Value[T]) certified(raw string) (T, error) {
	val, err := ParseText[T](raw)
	if err != nil {
		return val, ValueError{Arg: v.Display(), Value: raw, Err: err}
	}
	if v.check != nil {
		if err := v.check(val); err != nil {
			return val, ValueError{Arg: v.Display(), Value: raw, Err: err}
		}
	}
	return val, nil
}

// ParseText converts s into a value of type T using the same rules applied
// to command-line values. Durations accept the syntax of
// time.ParseDuration, such as "1h30m".
func ParseText[T any](s string) (T, error) {
	var v T
	if err := primitive.Parse(reflect.ValueOf(&v).Elem(), s); err != nil {
		return v, err
	}
	return v, nil
}
