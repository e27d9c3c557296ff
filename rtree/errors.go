// Copyright 2026 The geoindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"errors"
	"fmt"
)

const packageName = "rtree: "

// Sentinel errors reported by Builder and RTree operations. Callers
// should match them with errors.Is, since returned errors may wrap a
// sentinel with call-specific detail.
var (
	// ErrInvalidConfig indicates a node size below the minimum of 2.
	ErrInvalidConfig = errors.New(packageName + "invalid config")
	// ErrDimensionMismatch indicates coordinate slices of unequal
	// length passed to Builder.Add.
	ErrDimensionMismatch = errors.New(packageName + "dimension mismatch")
	// ErrInvalidRectangle indicates a rectangle with min > max on
	// either axis, in an Add batch or a Search query.
	ErrInvalidRectangle = errors.New(packageName + "invalid rectangle")
	// ErrLevelOutOfRange indicates a level index outside [0, Height)
	// passed to RTree.BoxesAtLevel.
	ErrLevelOutOfRange = errors.New(packageName + "level out of range")
)

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

// kindErr attaches call-specific detail to one of the sentinel errors
// while keeping it matchable with errors.Is.
func kindErr(kind error, format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{kind}, a...)...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}
