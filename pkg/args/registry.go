// Copyright (c) 2025 The paramunit Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package args

import (
	"reflect"
	"sync"
)

// registry maps fully qualified factory type names to registered
// holder values.  It stands in for a class loader: an external factory
// reference like "example.com/mod/pkg.Factories#rows" is only
// resolvable once a Factories holder has been registered.  Holders of
// the context's declaring type additionally serve static invocations
// of bare references when no test instance is present.
type registry struct {
	mutex   sync.RWMutex
	holders map[string]reflect.Value
}

var defaultRegistry = &registry{}

// Register registers given holder value under the fully qualified name
// of its type, cf. [TypeName].  Factory methods are looked up on the
// holder's type, so registering a pointer makes pointer-receiver
// factories available too.  Registering a second holder for the same
// type replaces the first.
func Register(holder any) { RegisterAs(TypeName(holder), holder) }

// RegisterAs registers given holder under an explicit fully qualified
// name.  Use it when the reference name should differ from the
// holder's type name, e.g. for naming nested factory scopes like
// "example.com/mod/pkg.Factories$Nested".
func RegisterAs(name string, holder any) {
	defaultRegistry.mutex.Lock()
	defer defaultRegistry.mutex.Unlock()
	if defaultRegistry.holders == nil {
		defaultRegistry.holders = map[string]reflect.Value{}
	}
	defaultRegistry.holders[name] = reflect.ValueOf(holder)
}

// lookup returns the holder registered under given name.
func (r *registry) lookup(name string) (reflect.Value, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	holder, ok := r.holders[name]
	return holder, ok
}

// TypeName returns the fully qualified name of given value's type,
// i.e. its package path joined with its type name; pointers are
// dereferenced first.  It is the Go analog of a fully qualified class
// name and the name under which [Register] files a holder:
//
//	args.TypeName(&Factories{}) + "#rows"
func TypeName(v any) string {
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
