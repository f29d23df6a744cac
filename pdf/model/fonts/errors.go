/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"errors"

	"github.com/unidoc/unifont/pdf/internal/truetype"
)

// Errors returned by font loading and layout. They are wrapped with details, test with errors.Is.
var (
	ErrFileUnreadable  = errors.New("font file unreadable")
	ErrFaceUnparseable = errors.New("font face unparseable")
	ErrMissingCmap     = errors.New("no usable unicode cmap")
	ErrGlyphNotMapped  = errors.New("glyph not mapped")
	ErrMetricsMissing  = errors.New("glyph metrics missing")

	// ErrChecksum is returned by Validate, together with ErrFaceUnparseable, for fonts whose table
	// checksums do not match their data.
	ErrChecksum = truetype.ErrChecksum
)
