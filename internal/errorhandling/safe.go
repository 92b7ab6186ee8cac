// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package errorhandling

import "fmt"

// safe2 runs f and returns its result, turning a panic into an error.
func safe2[TValue any](f func() (TValue, error)) (result TValue, err error) {
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		var ok bool
		if err, ok = e.(error); !ok {
			err = fmt.Errorf("%v", e)
		}
	}()
	return f()
}

// Safe2 runs f and returns its result value or returned error. A panic is
// returned as an error. Any error is passed through wrapError.
//
// Only use this around third party code that is known to panic on
// malformed input, such as some parsers. It is not a general try-catch.
func Safe2[TValue any](f func() (TValue, error), wrapError func(err error) error) (result TValue, err error) {
	value, err := safe2(f)
	if err != nil {
		return value, wrapError(err)
	}
	return value, nil
}
