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
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// NewBounded creates a typed argument that rejects values outside the
// interval [min, max]. The default value is exempt from the check, and the
// interval is appended to the description shown in usage output. It panics
// when the interval is empty.
func NewBounded[T cmp.Ordered](short rune, long string, def T, desc string, min, max T) *Value[T] {
	if max < min {
		panic(fmt.Sprintf("invalid interval [%v, %v]", min, max))
	}
	desc = strings.TrimSpace(fmt.Sprintf("%s (between %v and %v)", desc, min, max))
	v := NewValue(short, long, def, desc)
	v.Certify(func(val T) error {
		if val < min || val > max {
			return fmt.Errorf("value %v is outside [%v, %v]", val, min, max)
		}
		return nil
	})
	return v
}

// NewEnumerated creates a typed argument that rejects values not listed in
// choices. The default value is exempt from the check, and the choices are
// appended to the description shown in usage output. It panics when no
// choice is given.
func NewEnumerated[T comparable](short rune, long string, def T, desc string, choices ...T) *Value[T] {
	if len(choices) == 0 {
		panic("enumerated argument needs at least one choice")
	}
	choices = slices.Clone(choices)
	list := render(choices)
	desc = strings.TrimSpace(fmt.Sprintf("%s (one of: %s)", desc, list))
	v := NewValue(short, long, def, desc)
	v.Certify(func(val T) error {
		if !slices.Contains(choices, val) {
			return fmt.Errorf("value %v is not one of %s", val, list)
		}
		return nil
	})
	return v
}

// render joins the choices for error and help messages.
func render[T any](choices []T) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, ", ")
}
