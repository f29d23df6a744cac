/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unidoc/unifont/pdf/internal/strutils"
)

// testGlyph describes a glyph of a synthetic test font. Glyphs with a nil header have no outline.
type testGlyph struct {
	advance uint16
	header  *glyfGlyphHeader
}

type testKernPair struct {
	left, right GlyphIndex
	value       int16
}

// testFontSpec describes a synthetic truetype font with exactly known metrics.
type testFontSpec struct {
	upem                         uint16
	ascender, descender, lineGap int16
	macStyle                     uint16
	glyphs                       []testGlyph
	cmap                         map[rune]GlyphIndex // BMP codes go to a (3,1) format 4 subtable.
	fullCmap                     bool                // add a (3,10) format 12 subtable with all codes.
	kern                         []testKernPair
	kernData                     []byte // raw kern table, overrides kern.
	postScriptName               string
	fixedPitch                   bool
}

type testTable struct {
	tag  string
	data []byte
}

// build assembles the font file with valid table and file checksums.
func (spec testFontSpec) build(t *testing.T) []byte {
	var tables []testTable
	add := func(tag string, fn func(w *byteWriter) error) {
		var buf bytes.Buffer
		w := newByteWriter(&buf)
		require.NoError(t, fn(w))
		require.NoError(t, w.flush())
		tables = append(tables, testTable{tag: tag, data: buf.Bytes()})
	}

	numGlyphs := uint16(len(spec.glyphs))

	add("head", func(w *byteWriter) error {
		head := headTable{
			majorVersion:     1,
			magicNumber:      headMagicNumber,
			unitsPerEm:       spec.upem,
			xMax:             int16(spec.upem),
			yMin:             spec.descender,
			yMax:             spec.ascender,
			macStyle:         spec.macStyle,
			indexToLocFormat: 1,
		}
		return head.write(w)
	})
	add("maxp", func(w *byteWriter) error {
		maxp := maxpTable{version: maxpVersion05, numGlyphs: numGlyphs}
		return maxp.write(w)
	})
	add("hhea", func(w *byteWriter) error {
		hhea := hheaTable{
			majorVersion:     1,
			ascender:         fword(spec.ascender),
			descender:        fword(spec.descender),
			lineGap:          fword(spec.lineGap),
			numberOfHMetrics: numGlyphs,
		}
		return hhea.write(w)
	})
	add("hmtx", func(w *byteWriter) error {
		for _, g := range spec.glyphs {
			if err := w.write(g.advance, int16(0)); err != nil {
				return err
			}
		}
		return nil
	})

	var offsets []offset32
	add("glyf", func(w *byteWriter) error {
		for _, g := range spec.glyphs {
			offsets = append(offsets, offset32(w.bufferedLen()))
			if g.header == nil {
				continue
			}
			if err := g.header.write(w); err != nil {
				return err
			}
		}
		offsets = append(offsets, offset32(w.bufferedLen()))
		return nil
	})
	add("loca", func(w *byteWriter) error {
		return w.writeSlice(offsets)
	})

	if len(spec.cmap) > 0 {
		add("cmap", func(w *byteWriter) error {
			return writeTestCmap(w, spec.cmap, spec.fullCmap)
		})
	}

	switch {
	case spec.kernData != nil:
		tables = append(tables, testTable{tag: "kern", data: spec.kernData})
	case len(spec.kern) > 0:
		add("kern", func(w *byteWriter) error {
			return writeTestKern(w, spec.kern)
		})
	}

	if spec.postScriptName != "" {
		add("name", func(w *byteWriter) error {
			str := strutils.StringToUTF16(spec.postScriptName)
			err := w.write(uint16(0), uint16(1), offset16(6+12))
			if err != nil {
				return err
			}
			err = w.write(uint16(3), uint16(1), uint16(0x409), uint16(nameIDPostScript), uint16(len(str)), offset16(0))
			if err != nil {
				return err
			}
			return w.writeSlice(str)
		})
	}

	add("post", func(w *byteWriter) error {
		var isFixedPitch uint32
		if spec.fixedPitch {
			isFixedPitch = 1
		}
		return w.write(fixed(0x00030000), fixed(0), fword(-100), fword(50), isFixedPitch,
			uint32(0), uint32(0), uint32(0), uint32(0))
	})

	return assembleTestFont(t, tables)
}

// assembleTestFont writes the offset table, table records and 4 byte aligned tables, and sets the
// head checksum adjustment.
func assembleTestFont(t *testing.T, tables []testTable) []byte {
	sort.Slice(tables, func(i, j int) bool { return tables[i].tag < tables[j].tag })

	ot := offsetTable{sfntVersion: sfntVersionTrueType, numTables: uint16(len(tables))}
	trs := tableRecords{}
	offset := 12 + 16*len(tables)
	headOffset := -1
	for _, tbl := range tables {
		if tbl.tag == "head" {
			headOffset = offset
		}
		trs.list = append(trs.list, tableRecord{
			tableTag: makeTag(tbl.tag),
			checksum: tableChecksum(tbl.data),
			offset:   offset32(offset),
			length:   uint32(len(tbl.data)),
		})
		offset += (len(tbl.data) + 3) &^ 3
	}

	var buf bytes.Buffer
	w := newByteWriter(&buf)
	require.NoError(t, ot.write(w))
	require.NoError(t, trs.write(w))
	for _, tbl := range tables {
		require.NoError(t, w.writeSlice(tbl.data))
		for w.bufferedLen()%4 != 0 {
			require.NoError(t, w.write(uint8(0)))
		}
	}
	require.NoError(t, w.flush())

	data := buf.Bytes()
	if headOffset >= 0 {
		binary.BigEndian.PutUint32(data[headOffset+8:], 0xB1B0AFBA-tableChecksum(data))
	}
	return data
}

func writeTestCmap(w *byteWriter, cmap map[rune]GlyphIndex, full bool) error {
	var codes []rune
	for code := range cmap {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	var bmp []rune
	for _, code := range codes {
		if code < 0xFFFF {
			bmp = append(bmp, code)
		}
	}

	// Format 4: one segment per code plus the final 0xFFFF segment.
	segCount := len(bmp) + 1
	format4Len := 16 + 8*segCount
	numTables := uint16(1)
	if full {
		numTables = 2
	}
	headerLen := 4 + 8*int(numTables)

	err := w.write(uint16(0), numTables, uint16(3), uint16(1), offset32(headerLen))
	if err != nil {
		return err
	}
	if full {
		err = w.write(uint16(3), uint16(10), offset32(headerLen+format4Len))
		if err != nil {
			return err
		}
	}

	endCodes := make([]uint16, 0, segCount)
	startCodes := make([]uint16, 0, segCount)
	deltas := make([]uint16, 0, segCount)
	for _, code := range bmp {
		endCodes = append(endCodes, uint16(code))
		startCodes = append(startCodes, uint16(code))
		deltas = append(deltas, uint16(cmap[code])-uint16(code))
	}
	endCodes = append(endCodes, 0xFFFF)
	startCodes = append(startCodes, 0xFFFF)
	deltas = append(deltas, 1)

	err = w.write(uint16(4), uint16(format4Len), uint16(0), uint16(2*segCount), uint16(0), uint16(0), uint16(0))
	if err != nil {
		return err
	}
	if err = w.writeSlice(endCodes); err != nil {
		return err
	}
	if err = w.write(uint16(0)); err != nil {
		return err
	}
	if err = w.writeSlice(startCodes); err != nil {
		return err
	}
	if err = w.writeSlice(deltas); err != nil {
		return err
	}
	if err = w.writeSlice(make([]uint16, segCount)); err != nil {
		return err
	}

	if !full {
		return nil
	}
	err = w.write(uint16(12), uint16(0), uint32(16+12*len(codes)), uint32(0), uint32(len(codes)))
	if err != nil {
		return err
	}
	for _, code := range codes {
		if err = w.write(uint32(code), uint32(code), uint32(cmap[code])); err != nil {
			return err
		}
	}
	return nil
}

func writeTestKern(w *byteWriter, pairs []testKernPair) error {
	err := w.write(uint16(0), uint16(1))
	if err != nil {
		return err
	}
	err = w.write(uint16(0), uint16(14+6*len(pairs)), uint16(kernCoverageHorizontal))
	if err != nil {
		return err
	}
	err = w.write(uint16(len(pairs)), uint16(0), uint16(0), uint16(0))
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if err = w.write(uint16(p.left), uint16(p.right), p.value); err != nil {
			return err
		}
	}
	return nil
}

// simpleTestFont returns a four glyph font: .notdef, 'A' (gid 1), 'B' (gid 2) and space (gid 3).
func simpleTestFont() testFontSpec {
	return testFontSpec{
		upem:      1000,
		ascender:  800,
		descender: -200,
		lineGap:   90,
		glyphs: []testGlyph{
			{advance: 500, header: &glyfGlyphHeader{numberOfContours: 1, xMax: 400, yMax: 700}},
			{advance: 600, header: &glyfGlyphHeader{numberOfContours: 2, xMin: 10, yMin: 0, xMax: 590, yMax: 720}},
			{advance: 580, header: &glyfGlyphHeader{numberOfContours: 2, xMin: 60, yMin: -10, xMax: 540, yMax: 710}},
			{advance: 250},
		},
		cmap: map[rune]GlyphIndex{'A': 1, 'B': 2, ' ': 3},
		kern: []testKernPair{
			{left: 1, right: 2, value: -40},
			{left: 2, right: 1, value: 15},
		},
		postScriptName: "TestSans-Regular",
	}
}
