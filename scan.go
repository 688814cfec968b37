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
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/deep-rent/argv/arg"
	"github.com/deep-rent/argv/internal/kebab"
	"github.com/deep-rent/argv/internal/tag"
)

// Scan derives and registers one argument per exported field of the
// struct pointed to by v. The given value must be a non-nil pointer to a
// struct.
//
// Field types select the argument kind: bool fields become toggle
// switches, and string, integer, float, and time.Duration fields become
// typed values, optionally bounded or enumerated through tag options. The
// field's current value serves as the default unless the tag overrides
// it. Parsed values are delivered back to the fields when Update is
// called. Nested structs register their fields with the parent's name as
// a prefix, while anonymous structs are flattened. See the package
// documentation for the full tag syntax.
func (p *Parser) Scan(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("argv: expected a non-nil pointer to a struct")
	}
	el := rv.Elem()
	if kind := el.Kind(); kind != reflect.Struct {
		return fmt.Errorf("argv: expected a pointer to a struct, but got pointer to %v", kind)
	}
	if err := p.scan(el, ""); err != nil {
		return fmt.Errorf("argv: %w", err)
	}
	return nil
}

// scan recursively walks the struct fields rooted at rv, accumulating
// nested names in prefix.
func (p *Parser) scan(rv reflect.Value, prefix string) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		ft := rt.Field(i)
		fv := rv.Field(i)

		if !ft.IsExported() || !fv.CanSet() {
			continue
		}
		raw := ft.Tag.Get("arg")
		if raw == "-" {
			continue
		}
		spec, err := tag.Parse(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", ft.Name, err)
		}

		name := spec.Name
		if name == "" {
			name = kebab.Case(ft.Name)
		}

		if ft.Type.Kind() == reflect.Struct {
			nested := prefix
			if !ft.Anonymous {
				nested += name + "-"
			}
			if err := p.scan(fv, nested); err != nil {
				return err
			}
			continue
		}

		if err := p.derive(fv, spec, prefix+name); err != nil {
			return fmt.Errorf("field %q: %w", ft.Name, err)
		}
	}
	return nil
}

// derive builds and registers the argument described by a field and its
// tag.
func (p *Parser) derive(fv reflect.Value, spec tag.Spec, long string) error {
	if utf8.RuneCountInString(long) < 2 {
		return fmt.Errorf("long name %q must have at least two characters", long)
	}
	// Durations are detected by type before the kind switch would take
	// them for a plain int64.
	if fv.Type() == reflect.TypeFor[time.Duration]() {
		return configure[time.Duration](p, fv, spec, long)
	}
	switch fv.Kind() {
	case reflect.Bool:
		return p.deriveSwitch(fv, spec, long)
	case reflect.String:
		return configure[string](p, fv, spec, long)
	case reflect.Int:
		return configure[int](p, fv, spec, long)
	case reflect.Int8:
		return configure[int8](p, fv, spec, long)
	case reflect.Int16:
		return configure[int16](p, fv, spec, long)
	case reflect.Int32:
		return configure[int32](p, fv, spec, long)
	case reflect.Int64:
		return configure[int64](p, fv, spec, long)
	case reflect.Uint:
		return configure[uint](p, fv, spec, long)
	case reflect.Uint8:
		return configure[uint8](p, fv, spec, long)
	case reflect.Uint16:
		return configure[uint16](p, fv, spec, long)
	case reflect.Uint32:
		return configure[uint32](p, fv, spec, long)
	case reflect.Uint64:
		return configure[uint64](p, fv, spec, long)
	case reflect.Float32:
		return configure[float32](p, fv, spec, long)
	case reflect.Float64:
		return configure[float64](p, fv, spec, long)
	default:
		return fmt.Errorf("unsupported type: %v", fv.Type())
	}
}

// deriveSwitch registers a toggle switch for a bool field.
func (p *Parser) deriveSwitch(fv reflect.Value, spec tag.Spec, long string) error {
	if spec.HasMin || spec.HasMax || len(spec.Choices) > 0 {
		return errors.New("min, max, and choices do not apply to switches")
	}
	s := arg.NewSwitch(spec.Short, long, fv.Bool(), spec.Desc)
	if err := apply(s, spec); err != nil {
		return err
	}
	s.Bind(arg.BindTo(func(v bool) { fv.SetBool(v) }))
	return p.register(s)
}

// configure registers a typed argument for a field, picking the plain,
// bounded, or enumerated variant based on the tag options. Named types are
// converted to and from their underlying primitive.
func configure[T cmp.Ordered](p *Parser, fv reflect.Value, spec tag.Spec, long string) error {
	def := fv.Convert(reflect.TypeFor[T]()).Interface().(T)

	var v *arg.Value[T]
	switch {
	case len(spec.Choices) > 0:
		if spec.HasMin || spec.HasMax {
			return errors.New("choices cannot be combined with min or max")
		}
		choices := make([]T, len(spec.Choices))
		for i, c := range spec.Choices {
			parsed, err := arg.ParseText[T](c)
			if err != nil {
				return fmt.Errorf("invalid choice: %w", err)
			}
			choices[i] = parsed
		}
		v = arg.NewEnumerated(spec.Short, long, def, spec.Desc, choices...)
	case spec.HasMin || spec.HasMax:
		if !spec.HasMin || !spec.HasMax {
			return errors.New("min and max must be given together")
		}
		lo, err := arg.ParseText[T](spec.Min)
		if err != nil {
			return fmt.Errorf("invalid min: %w", err)
		}
		hi, err := arg.ParseText[T](spec.Max)
		if err != nil {
			return fmt.Errorf("invalid max: %w", err)
		}
		if hi < lo {
			return errors.New("min must not exceed max")
		}
		v = arg.NewBounded(spec.Short, long, def, spec.Desc, lo, hi)
	default:
		v = arg.NewValue(spec.Short, long, def, spec.Desc)
	}

	if err := apply(v, spec); err != nil {
		return err
	}
	v.Bind(arg.BindTo(func(val T) {
		fv.Set(reflect.ValueOf(val).Convert(fv.Type()))
	}))
	return p.register(v)
}

// settings is the tag-configurable surface shared by the built-in
// argument kinds.
type settings interface {
	arg.Argument
	Require()
	Once()
	FromEnv(key string)
}

// apply transfers the remaining tag options onto the argument. It runs
// after any value check is installed, so a tag default is certified like
// a parsed value.
func apply(s settings, spec tag.Spec) error {
	if spec.Required {
		s.Require()
	}
	if spec.Once {
		s.Once()
	}
	if spec.Env != "" {
		s.FromEnv(spec.Env)
	}
	if spec.HasDefault {
		return s.SetDefault(spec.Default)
	}
	return nil
}

// register guards against name collisions before delegating to Add, so
// that scanning reports tag mistakes as errors rather than panics.
func (p *Parser) register(a arg.Argument) error {
	info := a.Describe()
	if info.Short != 0 {
		if _, ok := p.short[info.Short]; ok {
			return fmt.Errorf("duplicate short name %q", info.Short)
		}
	}
	if info.Long != "" {
		if _, ok := p.long[info.Long]; ok {
			return fmt.Errorf("duplicate long name %q", info.Long)
		}
	}
	p.Add(a)
	return nil
}
