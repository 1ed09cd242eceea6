// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/snap/colors"
)

// InvalidHexColorError is returned when a component is given a
// background color that is not a well-formed hex color.
// It is never replaced by a fallback color.
type InvalidHexColorError struct {
	// Color is the offending string, exactly as given.
	Color string
}

func (e *InvalidHexColorError) Error() string {
	return fmt.Sprintf("invalid hex color: %q", e.Color)
}

// Unwrap returns [colors.ErrInvalidHex].
func (e *InvalidHexColorError) Unwrap() error {
	return colors.ErrInvalidHex
}
