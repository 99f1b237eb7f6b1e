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

package str
// layout of Str is the layout of string

import (
	"reflect"
	"unsafe"
)

// Size and Align are size and alignment of both Str and string.
const (
	Size  = unsafe.Sizeof("")
	Align = unsafe.Alignof("")
)

// Build fails with "constant overflows uintptr" if Str and string ever
// diverge in size or alignment on the target platform.
const (
	_ = Size - unsafe.Sizeof(Str{})
	_ = unsafe.Sizeof(Str{}) - Size
	_ = Align - unsafe.Alignof(Str{})
	_ = unsafe.Alignof(Str{}) - Align
)

// Type and StringType are reflect types of Str and string.
//
// A Str field may stand in place of a string field at the same offset; see
// package keyview.
var (
	Type       = reflect.TypeOf((*Str)(nil)).Elem()
	StringType = reflect.TypeOf((*string)(nil)).Elem()
)
