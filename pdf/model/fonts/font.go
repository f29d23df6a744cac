/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"bytes"
	"fmt"
	"os"

	"github.com/unidoc/unifont/common"
	"github.com/unidoc/unifont/pdf/internal/truetype"
)

// defaultFontName is used when neither the caller nor the name table supplies a name.
const defaultFontName = "Font"

// Font is a TrueType font prepared for layout and PDF embedding. The glyph table and metrics are
// computed once on construction and never change, so a Font can be shared between goroutines.
type Font struct {
	name    string
	data    []byte
	src     GlyphSource
	kern    KernTable
	glyphs  *GlyphTable
	metrics FontMetrics
}

// NewFontFromBytes parses the TrueType font in `data`. `name` may be empty, the PostScript name
// from the font is used then. The Font keeps `data` for embedding, the caller must not modify it.
func NewFontFromBytes(data []byte, name string) (*Font, error) {
	fnt, err := truetype.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFaceUnparseable, err)
	}
	return NewFontFromSource(ttfSource{fnt}, data, name)
}

// Validate checks the table checksums and the whole-file checksum of the TrueType font in `data`.
func Validate(data []byte) error {
	if err := truetype.Validate(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrFaceUnparseable, err)
	}
	return nil
}

// NewFontFromFile loads the TrueType font file at `path`.
func NewFontFromFile(path, name string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}
	common.Log.Debug("loaded font file %s (%d bytes)", path, len(data))
	return NewFontFromBytes(data, name)
}

// NewFontFromSource builds a Font from an already parsed glyph source. `data` is the font program
// embedded as FontFile2.
func NewFontFromSource(src GlyphSource, data []byte, name string) (*Font, error) {
	metrics, err := newFontMetrics(src)
	if err != nil {
		return nil, err
	}
	glyphs, err := NewGlyphTable(src)
	if err != nil {
		return nil, err
	}

	if name == "" {
		if fd, ok := src.(faceDescriber); ok {
			name = fd.PostScriptName()
		}
	}
	if name == "" {
		name = defaultFontName
	}

	kern := src.KernTable()
	if kern == nil {
		common.Log.Debug("font %s: no kerning", name)
	}

	return &Font{
		name:    name,
		data:    data,
		src:     src,
		kern:    kern,
		glyphs:  glyphs,
		metrics: metrics,
	}, nil
}

// Name returns the font name.
func (f *Font) Name() string {
	return f.name
}

// FontMetrics returns the vertical metrics.
func (f *Font) FontMetrics() FontMetrics {
	return f.metrics
}

// GlyphTable returns the glyph table.
func (f *Font) GlyphTable() *GlyphTable {
	return f.glyphs
}

// Data returns the raw font program. It must not be modified.
func (f *Font) Data() []byte {
	return f.data
}

// GlyphIDForChar returns the glyph mapped to `r`.
func (f *Font) GlyphIDForChar(r rune) (GlyphID, bool) {
	gid, ok := f.src.GlyphIndex(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return gid, true
}

// GlyphMetricsForChar returns the unscaled metrics of the glyph mapped to `r`.
func (f *Font) GlyphMetricsForChar(r rune) (GlyphMetrics, error) {
	gid, ok := f.GlyphIDForChar(r)
	if !ok {
		return GlyphMetrics{}, fmt.Errorf("%w: %q", ErrGlyphNotMapped, r)
	}
	gm, ok := f.glyphs.Metrics(gid)
	if !ok {
		return GlyphMetrics{}, fmt.Errorf("%w: glyph %d (%q)", ErrMetricsMissing, gid, r)
	}
	return gm, nil
}

// Kern returns the kerning between `left` and `right` in font units, 0 without a kern entry.
func (f *Font) Kern(left, right GlyphID) float64 {
	if f.kern == nil {
		return 0
	}
	v, ok := f.kern.Kern(left, right)
	if !ok {
		return 0
	}
	return float64(v)
}

// LineHeight returns the line height for text of `size` points.
func (f *Font) LineHeight(size float64) float64 {
	return f.metrics.LineHeight(size)
}

// LineGap returns the line gap for text of `size` points.
func (f *Font) LineGap(size float64) float64 {
	return f.metrics.LineGapSize(size)
}

func (f *Font) describer() (faceDescriber, bool) {
	fd, ok := f.src.(faceDescriber)
	return fd, ok
}
