/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"github.com/unidoc/unifont/common"
)

// defaultGlyphHeight is used for glyphs without an outline bounding box.
const defaultGlyphHeight = 1000

// GlyphMetrics holds the metrics of a single glyph. Width and Height are in font units until a
// layout run scales the width.
type GlyphMetrics struct {
	ID   GlyphID
	Char rune

	Width  float64
	Height float64

	// KernRight is the kerning adjustment between the previous glyph of a run and this one.
	KernRight float64
}

func (gm GlyphMetrics) String() string {
	return fmt.Sprintf("%d %q w=%.2f h=%.2f kern=%.2f", gm.ID, gm.Char, gm.Width, gm.Height, gm.KernRight)
}

// GlyphTable maps the glyphs reachable from the font's Unicode cmaps to their character and
// metrics. Glyph 0 (.notdef) is never included.
type GlyphTable struct {
	chars   map[GlyphID]rune
	metrics map[GlyphID]GlyphMetrics
}

// NewGlyphTable builds the glyph table of `src` from all of its Unicode character maps. The first
// character mapped to a glyph wins. Glyphs without an advance width get no metrics.
func NewGlyphTable(src GlyphSource) (*GlyphTable, error) {
	cmaps := src.UnicodeCharMaps()
	if len(cmaps) == 0 {
		return nil, fmt.Errorf("%w: no unicode subtables", ErrMissingCmap)
	}

	gt := &GlyphTable{
		chars:   map[GlyphID]rune{},
		metrics: map[GlyphID]GlyphMetrics{},
	}
	descender := float64(src.Descender())

	for _, cmap := range cmaps {
		for _, r := range cmap.Codes() {
			gid, ok := cmap.Lookup(r)
			if !ok || gid == 0 || !utf8.ValidRune(r) {
				continue
			}
			if _, has := gt.chars[gid]; has {
				continue
			}
			gt.chars[gid] = r

			advance, ok := src.GlyphAdvance(gid)
			if !ok {
				common.Log.Debug("glyph %d (%q) has no advance width", gid, r)
				continue
			}
			height := float64(defaultGlyphHeight)
			if b, ok := src.GlyphBounds(gid); ok {
				height = float64(b.YMax) - float64(b.YMin) - descender
			}
			gt.metrics[gid] = GlyphMetrics{
				ID:     gid,
				Char:   r,
				Width:  float64(advance),
				Height: height,
			}
		}
	}
	if len(gt.chars) == 0 {
		return nil, fmt.Errorf("%w: unicode subtables map no glyphs", ErrMissingCmap)
	}
	common.Log.Trace("glyph table: %d chars, %d with metrics", len(gt.chars), len(gt.metrics))
	return gt, nil
}

// Char returns the character mapped to `gid`.
func (gt *GlyphTable) Char(gid GlyphID) (rune, bool) {
	r, ok := gt.chars[gid]
	return r, ok
}

// Metrics returns the unscaled metrics of `gid`.
func (gt *GlyphTable) Metrics(gid GlyphID) (GlyphMetrics, bool) {
	gm, ok := gt.metrics[gid]
	return gm, ok
}

// GlyphIDs returns the ids of all glyphs with a character, in ascending order.
func (gt *GlyphTable) GlyphIDs() []GlyphID {
	gids := make([]GlyphID, 0, len(gt.chars))
	for gid := range gt.chars {
		gids = append(gids, gid)
	}
	slices.Sort(gids)
	return gids
}

// Len returns the number of glyphs with a character.
func (gt *GlyphTable) Len() int {
	return len(gt.chars)
}
