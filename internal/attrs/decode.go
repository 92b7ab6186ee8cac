// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies an attribute value, such as the result of Read, into the Go
// value pointed to by out. Struct fields are matched using the "attr" tag
// and scalars are converted leniently, so that for example the string "80"
// can fill an int field.
func Decode(value any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// Attribute files carry numbers and booleans as strings often enough:
		WeaklyTypedInput: true,
		// Fill the results in this struct:
		Result: out,
		// Use the "attr" tag:
		TagName: "attr",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(toRaw(value))
}

// DecodePath reads the merged value at path and decodes it into out.
func (a *Attributes) DecodePath(out any, path ...any) error {
	v, err := a.ReadStrict(path...)
	if err != nil {
		return err
	}
	if err := Decode(v, out); err != nil {
		return fmt.Errorf("decoding attribute %s: %w", normalizePath(path), err)
	}
	return nil
}
