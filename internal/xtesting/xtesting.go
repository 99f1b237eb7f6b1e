// Copyright (C) 2018-2026  Nexedi SA and Contributors.
//                          Kirill Smelkov <kirr@nexedi.com>
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

// Package xtesting provides addons to std package testing.
package xtesting

import (
	"reflect"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

// Asserter is handy objects to make asserts in tests.
//
// For example:
//
//	assert := xtesting.Assert(t)
//	assert.Eq(a, b)
//	..
//
// Failed asserts stop the test via t.Fatal, so Asserter must be used only
// from the goroutine running the test. Workers spawned by a test should
// return errors instead.
type Asserter struct {
	t testing.TB
}

// Assert creates Asserter bound to t for reporting.
func Assert(t testing.TB) *Asserter {
	return &Asserter{t}
}

// Eq asserts that a and b are deeply equal.
func (x *Asserter) Eq(a, b interface{}) {
	x.t.Helper()
	if !reflect.DeepEqual(a, b) {
		x.t.Fatalf("not equal:\nhave: %v\nwant: %v\ndiff:\n%s", a, b, pretty.Compare(a, b))
	}
}

// True asserts that cond holds.
func (x *Asserter) True(cond bool, what string) {
	x.t.Helper()
	if !cond {
		x.t.Fatalf("%s: does not hold", what)
	}
}

// Panics asserts that f panics and returns the value it panicked with.
func (x *Asserter) Panics(f func()) (r interface{}) {
	x.t.Helper()
	func() {
		defer func() {
			r = recover()
		}()
		f()
	}()
	if r == nil {
		x.t.Fatalf("no panic")
	}
	return r
}

// NoAlloc asserts that f does not allocate.
func (x *Asserter) NoAlloc(what string, f func()) {
	x.t.Helper()
	if n := testing.AllocsPerRun(100, f); n != 0 {
		x.t.Fatalf("%s: %v allocations per run  ; want 0", what, n)
	}
}
