// Copyright (C) 2026  Nexedi SA and Contributors.
//
// This program is free software: you can Use, Study, Modify and Redistribute
// it under the terms of the GNU General Public License version 3, or (at your
// option) any later version, as published by the Free Software Foundation.
//
// This program is distributed WITHOUT ANY WARRANTY; without even the implied
// warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//
// See COPYING file for full licensing terms.

package keyview_test

import (
	"fmt"

	"lab.nexedi.com/kirr/ownstr/keyview"
	"lab.nexedi.com/kirr/ownstr/str"
)

// SchemaKey identifies a schema in a registry cache.
type SchemaKey struct {
	Subject str.Str
	Version int32
}

// SchemaKeyRef is SchemaKey as seen by a lookup.
type SchemaKeyRef struct {
	Subject string
	Version int32
}

var schemaKey = keyview.MustTwin[SchemaKey, SchemaKeyRef]()

func Example() {
	cache := map[SchemaKey]string{}
	cache[SchemaKey{str.MustNew("User"), 1}] = "User:1"
	cache[SchemaKey{str.MustNew("User"), 2}] = "User:2"

	for _, ref := range []SchemaKeyRef{{"User", 1}, {"User", 2}, {"Absent", 1}} {
		v, ok := cache[*schemaKey.Owned(&ref)]
		fmt.Printf("%s/%d -> %q %v\n", ref.Subject, ref.Version, v, ok)
	}

	// Output:
	// User/1 -> "User:1" true
	// User/2 -> "User:2" true
	// Absent/1 -> "" false
}

// Single-text keys do not need a twin type: str.Borrow builds the lookup key.
func Example_borrow() {
	cache := map[SchemaKey]string{}
	cache[SchemaKey{str.MustNew("User"), 1}] = "User:1"

	subject := []byte("User")
	v, ok := cache[SchemaKey{str.BorrowBytes(subject), 1}]
	fmt.Println(v, ok)

	// Output:
	// User:1 true
}
