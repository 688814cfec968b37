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
)

// Binding connects an argument to a piece of program state that receives
// the argument's value whenever Update is called. Bindings are created with
// BindTo or BindField and attached through the argument's Bind method.
type Binding struct {
	object any
	field  string
	write  func(v any) error
}

// BindTo creates a binding that passes the value to the given setter
// function. The type parameter must be the argument's value type.
func BindTo[T any](set func(T)) *Binding {
	return &Binding{
		write: func(v any) error {
			t, ok := v.(T)
			if !ok {
				return fmt.Errorf("cannot pass %T to a setter of %s", v, reflect.TypeFor[T]())
			}
			set(t)
			return nil
		},
	}
}

// BindField creates a binding that assigns the value to the named field of
// the given object, which must be a non-nil pointer to a struct with an
// exported field of the argument's value type. The object is not inspected
// before Update time; a binding may thus be created ahead of its target's
// initialization, and a broken target surfaces as a BindingError rather
// than a panic.
func BindField(object any, field string) *Binding {
	return &Binding{object: object, field: field}
}

// apply delivers v to the binding target.
func (b *Binding) apply(v any) error {
	if b.write != nil {
		return b.write(v)
	}
	rv := reflect.ValueOf(b.object)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("target must be a non-nil pointer to a struct")
	}
	el := rv.Elem()
	if el.Kind() != reflect.Struct {
		return fmt.Errorf("target must point to a struct, not %s", el.Kind())
	}
	f := el.FieldByName(b.field)
	if !f.IsValid() {
		return fmt.Errorf("no field named %q", b.field)
	}
	if !f.CanSet() {
		return fmt.Errorf("field %q cannot be set", b.field)
	}
	vv := reflect.ValueOf(v)
	if !vv.Type().AssignableTo(f.Type()) {
		return fmt.Errorf("cannot assign %T to field %q of type %s", v, b.field, f.Type())
	}
	f.Set(vv)
	return nil
}
