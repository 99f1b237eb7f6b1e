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

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrEncoding is the error matched by errors.Is for any *EncodingError.
var ErrEncoding = errors.New("invalid UTF-8")

// EncodingError is returned when text is constructed from bytes that are not
// valid UTF-8.
type EncodingError struct {
	Offset int  // position of the first byte that does not start a valid rune
	Byte   byte // the byte at Offset
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 at offset %d (byte %#02x)", e.Offset, e.Byte)
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

// validate returns *EncodingError describing the first invalid rune in s, or nil.
func validate(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return &EncodingError{Offset: i, Byte: s[i]}
		}
		i += size
	}
	// unreachable: ValidString said there is an invalid rune
	panic("str: validate: invalid rune not found")
}
