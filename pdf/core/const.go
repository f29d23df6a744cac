/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "errors"

// Common errors that may occur on PDF object construction and decoding.
var (
	ErrTypeError  = errors.New("type check error")
	ErrRangeError = errors.New("range check error")
	ErrNoData     = errors.New("no data")
)
