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

import "fmt"

// MatchError indicates that a token does not name the argument that
// attempted to parse it.
type MatchError struct {
	Arg   string // display name of the argument
	Token string // the offending token, empty if the cursor was out of range
}

func (e MatchError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("no token to match against flag %q", e.Arg)
	}
	return fmt.Sprintf("token %q does not match flag %q", e.Token, e.Arg)
}

// ValueError indicates that a flag's value was missing or was rejected
// during parsing or certification.
type ValueError struct {
	Arg   string // display name of the argument
	Value string // the rejected input
	Err   error  // the underlying cause
}

func (e ValueError) Error() string {
	return fmt.Sprintf("invalid value for flag %q: %v", e.Arg, e.Err)
}

func (e ValueError) Unwrap() error { return e.Err }

// RepeatError indicates that a single-use flag occurred more than once
// during a parse pass.
type RepeatError struct {
	Arg string // display name of the argument
}

func (e RepeatError) Error() string {
	return fmt.Sprintf("flag %q may be given at most once", e.Arg)
}

// BindingError indicates that a parsed value could not be delivered to the
// bound target.
type BindingError struct {
	Arg    string // display name of the argument
	Field  string // name of the targeted struct field, if any
	Target any    // the bound object, nil for setter bindings
	Err    error  // the underlying cause
}

func (e BindingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("flag %q: cannot update field %q of %T: %v", e.Arg, e.Field, e.Target, e.Err)
	}
	return fmt.Sprintf("flag %q: cannot update binding: %v", e.Arg, e.Err)
}

func (e BindingError) Unwrap() error { return e.Err }
