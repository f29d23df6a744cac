/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"sort"

	"github.com/unidoc/unifont/pdf/core"
)

// testCharMap is an in-memory Unicode character map.
type testCharMap map[rune]GlyphID

func (m testCharMap) Codes() []rune {
	codes := make([]rune, 0, len(m))
	for r := range m {
		codes = append(codes, r)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func (m testCharMap) Lookup(r rune) (GlyphID, bool) {
	gid, ok := m[r]
	return gid, ok
}

type testKern map[[2]GlyphID]int16

func (k testKern) Kern(left, right GlyphID) (int16, bool) {
	v, ok := k[[2]GlyphID{left, right}]
	return v, ok
}

// testSource is a GlyphSource with exactly known metrics.
type testSource struct {
	upem                         uint16
	ascender, descender, lineGap int16
	cmaps                        []testCharMap
	advances                     map[GlyphID]uint16
	bounds                       map[GlyphID]Bounds
	kern                         testKern

	psName     string
	fixedPitch bool
	italic     bool
	weight     uint16
}

func (s *testSource) UnitsPerEm() uint16 { return s.upem }
func (s *testSource) Ascender() int16    { return s.ascender }
func (s *testSource) Descender() int16   { return s.descender }
func (s *testSource) LineGap() int16     { return s.lineGap }

func (s *testSource) GlyphIndex(r rune) (GlyphID, bool) {
	for _, cmap := range s.cmaps {
		if gid, ok := cmap[r]; ok {
			return gid, true
		}
	}
	return 0, false
}

func (s *testSource) GlyphAdvance(gid GlyphID) (uint16, bool) {
	adv, ok := s.advances[gid]
	return adv, ok
}

func (s *testSource) GlyphBounds(gid GlyphID) (Bounds, bool) {
	b, ok := s.bounds[gid]
	return b, ok
}

func (s *testSource) UnicodeCharMaps() []CharMap {
	var cmaps []CharMap
	for _, cmap := range s.cmaps {
		cmaps = append(cmaps, cmap)
	}
	return cmaps
}

func (s *testSource) KernTable() KernTable {
	if s.kern == nil {
		return nil
	}
	return s.kern
}

func (s *testSource) PostScriptName() string { return s.psName }
func (s *testSource) IsFixedPitch() bool     { return s.fixedPitch }
func (s *testSource) IsItalic() bool         { return s.italic }
func (s *testSource) WeightClass() uint16    { return s.weight }

// abSource maps 'A' to glyph 4 (advance 1185) and 'B' to glyph 17 (advance 1114) without
// kerning, plus a space glyph.
func abSource() *testSource {
	return &testSource{
		upem:      1000,
		ascender:  750,
		descender: -250,
		lineGap:   220,
		cmaps: []testCharMap{
			{'A': 4, 'B': 17, ' ': 3},
		},
		advances: map[GlyphID]uint16{3: 463, 4: 1185, 17: 1114},
		bounds: map[GlyphID]Bounds{
			4:  {XMin: 8, YMin: 0, XMax: 1177, YMax: 1568},
			17: {XMin: 156, YMin: 0, XMax: 1040, YMax: 1556},
		},
		psName: "TestSans",
		weight: 400,
	}
}

// testSink collects the objects added by Embed.
type testSink struct {
	objects []core.PdfObject
	encoder core.StreamEncoder
}

func (s *testSink) AddObject(obj core.PdfObject) *core.PdfObjectReference {
	s.objects = append(s.objects, obj)
	ref := core.PdfObjectReference{ObjectNumber: int64(len(s.objects))}
	if stream, ok := obj.(*core.PdfObjectStream); ok {
		stream.PdfObjectReference = ref
	}
	return &ref
}

func (s *testSink) StreamEncoder() core.StreamEncoder {
	return s.encoder
}

func (s *testSink) resolve(obj core.PdfObject) core.PdfObject {
	ref, ok := obj.(*core.PdfObjectReference)
	if !ok {
		return obj
	}
	return s.objects[ref.ObjectNumber-1]
}
