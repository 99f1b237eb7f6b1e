// Copyright (C) 2016-2026  Nexedi SA and Contributors.
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

package keyview

import (
	"fmt"
	"reflect"
	"strings"
)

// ParityError is returned when two key types are not twins.
//
// It lists all found differences, not only the first one.
type ParityError struct {
	A, B     reflect.Type
	Mismatch []string // "<field path>: <what differs>"
}

func (e *ParityError) add(path, format string, argv ...interface{}) {
	if path == "" {
		path = "."
	}
	e.Mismatch = append(e.Mismatch, path+": "+fmt.Sprintf(format, argv...))
}

func (e *ParityError) Error() string {
	prefix := fmt.Sprintf("keyview: %v and %v are not twins", e.A, e.B)
	if len(e.Mismatch) == 1 {
		return prefix + ": " + e.Mismatch[0]
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s: %d errors:\n", prefix, len(e.Mismatch))
	for _, m := range e.Mismatch {
		fmt.Fprintf(&msg, "\t- %s\n", m)
	}
	return msg.String()
}
