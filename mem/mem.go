// Copyright (C) 2015-2026  Nexedi SA and Contributors.
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

// Package mem provides ways to work with memory as either string or []byte
// without copying.
//
// The result of both conversions aliases the argument. Bytes returned by
// Bytes must never be written to, and a []byte passed to String must not be
// modified while the resulting string is in use.
package mem

import (
	"unsafe"

	// aliasing string and []byte storage relies on objects not being moved by GC
	_ "go4.org/unsafe/assume-no-moving-gc"
)

// Bytes converts string -> []byte without copying.
//
// len and cap of the result are both len(s). Bytes("") is nil.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String converts []byte -> string without copying.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Data returns address of the first byte of s, or nil for empty s.
//
// It is used to tell whether two strings share storage.
func Data(s string) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.StringData(s))
}
