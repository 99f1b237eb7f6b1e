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

// Package str provides Str - owned immutable text with the memory layout of string.
//
// A Go string is a two-word header (data pointer, length) that may point
// into memory owned by someone else, for example into a []byte buffer
// viewed via mem.String. Str is the same two-word header, but the bytes it
// points to were copied at construction, are valid UTF-8, and are not
// referenced by anything else. Keeping such text in long-lived keys is
// therefore safe regardless of what happens to the buffers it came from.
//
// Because Str and string have identical size and alignment, and because
// Go compares and hashes both by content, a struct with a Str field and
// an otherwise identical struct with a string field are interchangeable as
// map keys. See package keyview for the checked reinterpretation of one as
// the other, and Borrow for building lookup keys without a copy.
//
// Str values are immutable and safe for concurrent use.
package str

import (
	"fmt"
	"hash/maphash"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"lab.nexedi.com/kirr/ownstr/mem"
)

// Str is owned immutable UTF-8 text.
//
// The zero value is the empty text. Str is comparable with == by content
// and can be used as a map key.
type Str struct {
	s string
}

// New returns Str holding a private copy of s.
//
// It returns error wrapping *EncodingError if s is not valid UTF-8.
func New(s string) (Str, error) {
	if err := validate(s); err != nil {
		return Str{}, errors.Wrap(err, "str: new")
	}
	return Str{strings.Clone(s)}, nil
}

// MustNew is like New but panics if s is not valid UTF-8.
func MustNew(s string) Str {
	x, err := New(s)
	if err != nil {
		panic(err)
	}
	return x
}

// FromBytes returns Str holding a copy of b.
//
// It returns error wrapping *EncodingError if b is not valid UTF-8.
func FromBytes(b []byte) (Str, error) {
	if err := validate(mem.String(b)); err != nil {
		return Str{}, errors.Wrap(err, "str: from bytes")
	}
	return Str{string(b)}, nil
}

// Adopt returns Str that takes ownership of buffer b.
//
// The caller must not use b after the call, neither on success nor on error.
//
// If b has no spare capacity its memory becomes Str's storage as is.
// Otherwise the content is copied into exact-length storage so that unused
// capacity is not retained.
func Adopt(b []byte) (Str, error) {
	s := mem.String(b)
	if err := validate(s); err != nil {
		return Str{}, errors.Wrap(err, "str: adopt")
	}
	if cap(b) != len(b) {
		s = string(b)
	}
	return Str{s}, nil
}

// Borrow returns Str that aliases s without copying or validation.
//
// The result is a lookup key, not a value to keep: it must not be stored,
// and s must stay unchanged while the result is in use. For example
//
//	v, ok := m[Key{Name: str.Borrow(name), N: 1}]
//
// looks up map m keyed by Key without allocating.
func Borrow(s string) Str {
	return Str{s}
}

// BorrowBytes is like Borrow but aliases b.
//
// b must not be modified while the result is in use.
func BorrowBytes(b []byte) Str {
	return Str{mem.String(b)}
}

// String returns the text. It does not copy.
func (x Str) String() string {
	return x.s
}

// Bytes returns the text as bytes without copying.
//
// The returned slice must not be modified.
func (x Str) Bytes() []byte {
	return mem.Bytes(x.s)
}

// Len returns text length in bytes.
func (x Str) Len() int {
	return len(x.s)
}

// IsEmpty reports whether x is the empty text.
func (x Str) IsEmpty() bool {
	return len(x.s) == 0
}

// Clone returns a deep copy of x that does not share storage with it.
func (x Str) Clone() Str {
	return Str{strings.Clone(x.s)}
}

// Equal reports whether x and y hold the same bytes. It is the same as x == y.
func (x Str) Equal(y Str) bool { return x.s == y.s }

// EqualString reports whether x holds the same bytes as s.
func (x Str) EqualString(s string) bool { return x.s == s }

// Less reports whether x sorts before y bytewise.
func (x Str) Less(y Str) bool { return x.s < y.s }

// Compare returns -1, 0 or +1 comparing x and y bytewise.
func (x Str) Compare(y Str) int {
	return strings.Compare(x.s, y.s)
}

// CompareString is like Compare but with string on the right.
func (x Str) CompareString(s string) int {
	return strings.Compare(x.s, s)
}

// Compare returns -1, 0 or +1 comparing a and b bytewise.
//
// It is suitable for slices.SortFunc.
func Compare(a, b Str) int {
	return a.Compare(b)
}

// Hash returns maphash.String(seed, x.String()).
func (x Str) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, x.s)
}

// WriteHash feeds the text into h exactly as h.WriteString(x.String()) would.
func (x Str) WriteHash(h *maphash.Hash) {
	h.WriteString(x.s)
}

// Sum64 returns xxhash.Sum64String(x.String()).
func (x Str) Sum64() uint64 {
	return xxhash.Sum64String(x.s)
}

// Format renders the text as string would be rendered for the same verb.
// %#v renders str.Str("...").
func (x Str) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		fmt.Fprintf(f, "str.Str(%q)", x.s)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), x.s)
}
