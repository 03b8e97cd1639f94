// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

import (
	"reflect"
	"strings"
)

// Resolve locates the factory method named by given reference.  An
// empty reference derives the factory method name from the context's
// test method.  A reference qualified with a fully qualified type name
// is resolved against the registry of external factory holders; a bare
// reference against the method set of the context's declaring type.
// Resolve validates that the reference declares no formal parameters
// but does not invoke the located factory, cf. [Producer.Invoke].
func Resolve(ctx *Context, ref string) (*Producer, error) {
	effective := ref
	if effective == "" {
		if ctx == nil || ctx.testMethod == "" {
			return nil, preconditionf("cannot derive default " +
				"factory method reference: no test method known")
		}
		effective = ctx.testMethod
	}

	class, name, err := parseReference(effective)
	if err != nil {
		return nil, err
	}

	if class != "" {
		holder, ok := defaultRegistry.lookup(class)
		if !ok {
			return nil, usagef("Could not load class [%s]", class)
		}
		bound, ok := boundFactory(holder, name)
		if !ok {
			return nil, usagef(
				"Could not find factory method [%s] in class [%s]",
				name, class)
		}
		return &Producer{
			ref: effective, class: class, name: name,
			static: true, bound: bound, ctx: ctx,
		}, nil
	}

	if ctx == nil || ctx.typ == nil {
		return nil, preconditionf("cannot resolve factory method "+
			"reference [%s]: no declaring type known", effective)
	}
	if !hasFactoryMethod(ctx.typ, name) {
		return nil, usagef(
			"Could not find factory method [%s] in class [%s]",
			name, TypeName(ctx.typ))
	}
	return &Producer{
		ref: effective, class: TypeName(ctx.typ), name: name, ctx: ctx,
	}, nil
}

// parseReference splits given factory reference into an optional fully
// qualified type name and the bare method name.  A trailing empty
// parameter list is stripped; a remaining non-empty parameter list
// violates the zero-argument factory contract.
func parseReference(ref string) (class, method string, err error) {
	rest := strings.TrimSuffix(ref, "()")
	if i := strings.LastIndex(rest, "#"); i >= 0 {
		class, rest = rest[:i], rest[i+1:]
	}
	if strings.ContainsRune(rest, '(') {
		return "", "", preconditionf(
			"factory method [%s] must not declare formal parameters",
			ref)
	}
	return class, rest, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// isFactorySignature reports whether a method type is a valid factory:
// no formal parameters and one return value, optionally followed by an
// error.  recv is the number of leading receiver parameters, i.e. 1
// for methods taken from a reflect.Type and 0 for bound method values.
func isFactorySignature(mt reflect.Type, recv int) bool {
	if mt.NumIn() != recv {
		return false
	}
	switch mt.NumOut() {
	case 1:
		return true
	case 2:
		return mt.Out(1) == errorType
	}
	return false
}

// hasFactoryMethod reports whether given type's method set, pointer
// method set included, holds a factory method with given name.
func hasFactoryMethod(t reflect.Type, name string) bool {
	if m, ok := t.MethodByName(name); ok {
		return isFactorySignature(m.Type, 1)
	}
	if t.Kind() != reflect.Pointer {
		if m, ok := reflect.PointerTo(t).MethodByName(name); ok {
			return isFactorySignature(m.Type, 1)
		}
	}
	return false
}

// boundFactory returns given holder's factory method with given name
// as a callable bound method value.  For a non-pointer holder the
// pointer method set is searched as well.
func boundFactory(holder reflect.Value, name string) (
	reflect.Value, bool,
) {
	m := holder.MethodByName(name)
	if !m.IsValid() && holder.Kind() != reflect.Pointer {
		ptr := reflect.New(holder.Type())
		ptr.Elem().Set(holder)
		m = ptr.MethodByName(name)
	}
	if !m.IsValid() || !isFactorySignature(m.Type(), 0) {
		return reflect.Value{}, false
	}
	return m, true
}
