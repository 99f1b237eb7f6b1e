// Copyright (C) 2026  Nexedi SA and Contributors.
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// You can also Link and Combine this program with other software covered by
// the terms of any of the Free Software licenses or any of the Open Source
// Initiative approved licenses and Convey the resulting work. Corresponding
// source of such a combination shall include the source code for all other
// software used.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.
// See https://www.nexedi.com/licensing for rationale and options.

// Package keyview allows to look up maps keyed by structs with str.Str
// fields using keys with plain string fields, without allocation.
//
// Consider
//
//	type SchemaKey struct {
//		Subject str.Str
//		Version int32
//	}
//
//	type SchemaKeyRef struct {
//		Subject string
//		Version int32
//	}
//
// SchemaKey is what is stored in map[SchemaKey]V: its Subject owns its
// bytes. SchemaKeyRef is what a lookup has at hand, e.g. with Subject
// pointing into a request buffer. Since str.Str has the layout of string and
// Go compares and hashes both by content, a *SchemaKeyRef can be viewed as
// *SchemaKey for the duration of a lookup:
//
//	var schemaKey = keyview.MustTwin[SchemaKey, SchemaKeyRef]()
//	...
//	v, ok := m[*schemaKey.Owned(&ref)]
//
// This is sound only if the two structs are twins: same fields in the same
// order with the same offsets, with types either identical or str.Str in
// one and string in the other. Check verifies exactly that via reflection;
// MustTwin and View refuse to reinterpret structs that are not twins.
//
// An owned-shaped view of a ref key borrows the ref's strings and must not
// be stored. The opposite view, of an owned key as ref, is always safe to
// read while the owned key is alive.
package keyview

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"lab.nexedi.com/kirr/ownstr/str"
)

// Check verifies that Owned and Ref are twin structs.
//
// It returns *ParityError describing all found differences, or nil.
func Check[Owned, Ref any]() error {
	return check(reflect.TypeOf((*Owned)(nil)).Elem(), reflect.TypeOf((*Ref)(nil)).Elem())
}

// MustCheck is like Check but panics on error.
//
// It is handy to pin parity of a key pair at package initialization:
//
//	var _ = keyview.MustCheck[SchemaKey, SchemaKeyRef]()
func MustCheck[Owned, Ref any]() struct{} {
	if err := Check[Owned, Ref](); err != nil {
		panic(err)
	}
	return struct{}{}
}

// View reinterprets p as *To.
//
// From and To must be twins in either order; View panics with *ParityError
// if they are not. The result aliases p. Parity of a type pair is verified
// once and remembered.
func View[To, From any](p *From) *To {
	if err := checkCached(reflect.TypeOf((*To)(nil)).Elem(), reflect.TypeOf((*From)(nil)).Elem()); err != nil {
		panic(err)
	}
	return (*To)(unsafe.Pointer(p))
}

// Twin is verified pair of twin key types.
//
// Obtain it via NewTwin or MustTwin; zero Twin panics on use.
type Twin[Owned, Ref any] struct {
	ok bool
}

// NewTwin checks Owned and Ref for parity and returns Twin for them.
func NewTwin[Owned, Ref any]() (Twin[Owned, Ref], error) {
	err := Check[Owned, Ref]()
	if err != nil {
		return Twin[Owned, Ref]{}, err
	}
	return Twin[Owned, Ref]{ok: true}, nil
}

// MustTwin is like NewTwin but panics on error.
func MustTwin[Owned, Ref any]() Twin[Owned, Ref] {
	t, err := NewTwin[Owned, Ref]()
	if err != nil {
		panic(err)
	}
	return t
}

// Owned views ref key r as owned key for a lookup.
//
// The result borrows r's strings: it must not be stored or used after r
// data changes.
func (t Twin[Owned, Ref]) Owned(r *Ref) *Owned {
	t.verify()
	return (*Owned)(unsafe.Pointer(r))
}

// Ref views owned key o as ref key.
func (t Twin[Owned, Ref]) Ref(o *Owned) *Ref {
	t.verify()
	return (*Ref)(unsafe.Pointer(o))
}

func (t Twin[Owned, Ref]) verify() {
	if !t.ok {
		panic(fmt.Sprintf("keyview: use of unverified Twin[%v, %v]",
			reflect.TypeOf((*Owned)(nil)).Elem(), reflect.TypeOf((*Ref)(nil)).Elem()))
	}
}


// cache of check results for View
type typePair struct {
	a, b reflect.Type
}

var (
	checkMu    sync.RWMutex
	checkCache = map[typePair]error{}
)

func checkCached(a, b reflect.Type) error {
	key := typePair{a, b}
	checkMu.RLock()
	err, ok := checkCache[key]
	checkMu.RUnlock()
	if ok {
		return err
	}

	err = check(a, b)
	checkMu.Lock()
	checkCache[key] = err
	checkMu.Unlock()
	return err
}

// check verifies that a and b are twin structs.
func check(a, b reflect.Type) error {
	e := &ParityError{A: a, B: b}
	if a.Kind() != reflect.Struct {
		e.add("", "%v is not a struct", a)
	}
	if b.Kind() != reflect.Struct {
		e.add("", "%v is not a struct", b)
	}
	if len(e.Mismatch) == 0 {
		parity(e, "", a, b)
	}
	if len(e.Mismatch) != 0 {
		return e
	}
	return nil
}

// substitutable reports whether a and b are str.Str and string in any order.
func substitutable(a, b reflect.Type) bool {
	return (a == str.Type && b == str.StringType) ||
		(a == str.StringType && b == str.Type)
}

// parity compares a and b recursively and records differences into e.
func parity(e *ParityError, path string, a, b reflect.Type) {
	if a == b || substitutable(a, b) {
		return
	}
	if a.Kind() != b.Kind() {
		e.add(path, "type %v != %v", a, b)
		return
	}
	if a.Size() != b.Size() {
		e.add(path, "size %d != %d", a.Size(), b.Size())
	}
	if a.Align() != b.Align() {
		e.add(path, "align %d != %d", a.Align(), b.Align())
	}

	switch a.Kind() {
	case reflect.Struct:
		if a.NumField() != b.NumField() {
			e.add(path, "%d fields != %d fields", a.NumField(), b.NumField())
			return
		}
		for i := 0; i < a.NumField(); i++ {
			fa, fb := a.Field(i), b.Field(i)
			fpath := path + "." + fa.Name
			if fa.Name != fb.Name {
				e.add(fpath, "field #%d named %s != %s", i, fa.Name, fb.Name)
			}
			if fa.Anonymous != fb.Anonymous {
				e.add(fpath, "embedded %v != %v", fa.Anonymous, fb.Anonymous)
			}
			if fa.Offset != fb.Offset {
				e.add(fpath, "offset %d != %d", fa.Offset, fb.Offset)
			}
			parity(e, fpath, fa.Type, fb.Type)
		}

	case reflect.Array:
		if a.Len() != b.Len() {
			e.add(path, "array len %d != %d", a.Len(), b.Len())
			return
		}
		parity(e, path+"[]", a.Elem(), b.Elem())

	default:
		// same kind but different non-composite types, e.g. int32 vs MyInt32
		e.add(path, "type %v != %v", a, b)
	}
}
