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
// encoding of Str as text and as CBOR text string

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// MarshalText implements encoding.TextMarshaler.
func (x Str) MarshalText() ([]byte, error) {
	return []byte(x.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Invalid UTF-8 is rejected with *EncodingError and leaves x unchanged.
func (x *Str) UnmarshalText(text []byte) error {
	v, err := FromBytes(text)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// cborDec leaves UTF-8 checking to us so that invalid text is reported as
// *EncodingError, the same way as for other constructors.
var cborDec cbor.DecMode

func init() {
	var err error
	cborDec, err = cbor.DecOptions{UTF8: cbor.UTF8DecodeInvalid}.DecMode()
	if err != nil {
		panic(err) // static options
	}
}

// MarshalCBOR implements cbor.Marshaler; Str is encoded as CBOR text string.
func (x Str) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(x.s)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
//
// Invalid UTF-8 is rejected with *EncodingError and leaves x unchanged.
func (x *Str) UnmarshalCBOR(data []byte) error {
	var s string
	err := cborDec.Unmarshal(data, &s)
	if err != nil {
		return errors.Wrap(err, "str: unmarshal cbor")
	}
	// s was freshly allocated by the decoder and is referenced only by us
	if err := validate(s); err != nil {
		return errors.Wrap(err, "str: unmarshal cbor")
	}
	*x = Str{s}
	return nil
}
