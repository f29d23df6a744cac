/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "errors"

var (
	errTypeCheck     = errors.New("type check error")
	errRangeCheck    = errors.New("range check error")
	errRequiredField = errors.New("required field missing")
	errUnsupported   = errors.New("unsupported table format")

	// ErrChecksum is returned by Validate when a table or whole-file checksum does not match.
	ErrChecksum = errors.New("checksum mismatch")
)
