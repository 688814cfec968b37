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

// Package primitive parses strings into Go's primitive types using
// reflection. It covers the types that make sense as command-line values:
// booleans, strings, integers, floats, and time.Duration.
package primitive

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeFor[time.Duration]()

// Is reports whether t is one of the types supported by Parse.
func Is(t reflect.Type) bool {
	if t == durationType {
		return true
	}
	switch t.Kind() {
	case
		reflect.Bool,
		reflect.String,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64:
		return true
	default:
		return false
	}
}

// Name returns a short label for t suitable as a value placeholder in help
// text, such as "int" or "duration".
func Name(t reflect.Type) string {
	if t == durationType {
		return "duration"
	}
	return t.Kind().String()
}

// Parse attempts to convert string v to the type expected by rv and sets it.
//
// It supports all types covered by the Is function. Other types will result
// in an error. The caller must ensure that rv is settable, or else Parse
// will panic.
func Parse(rv reflect.Value, v string) error {
	if rv.Type() == durationType {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%q is not a duration", v)
		}
		rv.SetInt(int64(d))
		return nil
	}
	switch kind := rv.Kind(); kind {
	case reflect.Bool:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%q is not a bool", v)
		}
		rv.SetBool(b)
	case reflect.String:
		rv.SetString(v)
	case
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64:
		b := rv.Type().Bits()
		i, err := strconv.ParseInt(v, 10, b)
		if err != nil {
			return fmt.Errorf("%q is not an int%d", v, b)
		}
		rv.SetInt(i)
	case
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64:
		b := rv.Type().Bits()
		u, err := strconv.ParseUint(v, 10, b)
		if err != nil {
			return fmt.Errorf("%q is not a uint%d", v, b)
		}
		rv.SetUint(u)
	case reflect.Float32, reflect.Float64:
		b := rv.Type().Bits()
		f, err := strconv.ParseFloat(v, b)
		if err != nil {
			return fmt.Errorf("%q is not a float%d", v, b)
		}
		rv.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type: %s", kind)
	}
	return nil
}
