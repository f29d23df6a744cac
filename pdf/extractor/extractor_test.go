/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/unifont/pdf/contentstream"
	"github.com/unidoc/unifont/pdf/core"
	"github.com/unidoc/unifont/pdf/model/fonts"
)

// memSink keeps the objects of an embedded font in memory.
type memSink struct {
	objects []core.PdfObject
}

func (s *memSink) AddObject(obj core.PdfObject) *core.PdfObjectReference {
	s.objects = append(s.objects, obj)
	ref := core.PdfObjectReference{ObjectNumber: int64(len(s.objects))}
	if stream, ok := obj.(*core.PdfObjectStream); ok {
		stream.PdfObjectReference = ref
	}
	return &ref
}

func (s *memSink) StreamEncoder() core.StreamEncoder {
	return core.NewFlateEncoder()
}

func (s *memSink) get(obj core.PdfObject) core.PdfObject {
	if ref, ok := obj.(*core.PdfObjectReference); ok {
		return s.objects[ref.ObjectNumber-1]
	}
	return obj
}

type embedded struct {
	fnt        *fonts.Font
	toUnicode  ToUnicodeMap
	descendant *core.PdfObjectDictionary
}

func embedGoRegular(t *testing.T) embedded {
	fnt, err := fonts.NewFontFromBytes(goregular.TTF, "")
	require.NoError(t, err)
	sink := &memSink{}
	dict, err := fnt.Embed(sink, 1)
	require.NoError(t, err)

	stream, ok := core.GetStream(sink.get(dict.Get("ToUnicode")))
	require.True(t, ok)
	data, err := core.DecodeStream(stream)
	require.NoError(t, err)
	m, err := ParseToUnicode(data)
	require.NoError(t, err)

	arr, ok := core.GetArray(dict.Get("DescendantFonts"))
	require.True(t, ok)
	descendant, ok := core.GetDict(arr.Get(0))
	require.True(t, ok)
	return embedded{fnt: fnt, toUnicode: m, descendant: descendant}
}

func TestToUnicodeRoundTrip(t *testing.T) {
	e := embedGoRegular(t)
	gt := e.fnt.GlyphTable()
	require.Len(t, e.toUnicode, gt.Len())
	for _, gid := range gt.GlyphIDs() {
		r, _ := gt.Char(gid)
		assert.Equal(t, string(r), e.toUnicode[gid], "glyph %d", gid)
	}
}

func TestWidthsRoundTrip(t *testing.T) {
	e := embedGoRegular(t)
	w, ok := core.GetArray(e.descendant.Get("W"))
	require.True(t, ok)
	widths, err := DecodeWidths(w)
	require.NoError(t, err)

	gt := e.fnt.GlyphTable()
	scale := e.fnt.FontMetrics().Scale
	count := 0
	for _, gid := range gt.GlyphIDs() {
		gm, ok := gt.Metrics(gid)
		if !ok {
			continue
		}
		count++
		assert.Equal(t, gm.Width*scale, widths[gid], "glyph %d", gid)
	}
	assert.Len(t, widths, count)
}

func TestExtractText(t *testing.T) {
	e := embedGoRegular(t)
	scale := e.fnt.FontMetrics().Scale

	cc := contentstream.NewContentCreator()
	for i, text := range []string{"Hello, World", "AVAST ye Törtchen"} {
		run, err := e.fnt.LayoutRun(text, 12)
		require.NoError(t, err)
		cc.Add_BT().Add_Tf("F1", 12).Add_Td(72, 700-float64(i)*14).Add_TJRun(run, scale).Add_ET()
	}
	cc.Add_BT().Add_Tf("F2", 12).Add_Tj(*core.MakeHexString("\x00\x05")).Add_ET()

	text, err := New(cc.String(), map[string]ToUnicodeMap{"F1": e.toUnicode}).ExtractText()
	require.NoError(t, err)
	assert.Equal(t, "Hello, World\nAVAST ye Törtchen\n\ufffd", text)
}

const testCMap = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CMapName /Test def
1 begincodespacerange
<0000> <ffff>
endcodespacerange
2 beginbfchar
<0003> <0020>
<05> <00e9>
endbfchar
2 beginbfrange
<0010> <0012> <0041>
<0020> <0021> [<00660066> <d83dde00>]
endbfrange
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`

func TestParseToUnicode(t *testing.T) {
	m, err := ParseToUnicode([]byte(testCMap))
	require.NoError(t, err)
	assert.Equal(t, ToUnicodeMap{
		0x03: " ",
		0x05: "é",
		0x10: "A",
		0x11: "B",
		0x12: "C",
		0x20: "ff",
		0x21: "\U0001F600",
	}, m)

	cm, err := ReadToUnicode([]byte(testCMap))
	require.NoError(t, err)
	assert.Equal(t, "Test", cm.Name)
	assert.Nil(t, cm.SystemInfo)
}

func TestReadToUnicodeEmbedded(t *testing.T) {
	fnt, err := fonts.NewFontFromBytes(goregular.TTF, "GoRegular")
	require.NoError(t, err)
	sink := &memSink{}
	dict, err := fnt.Embed(sink, 2)
	require.NoError(t, err)
	stream, ok := core.GetStream(sink.get(dict.Get("ToUnicode")))
	require.True(t, ok)
	data, err := core.DecodeStream(stream)
	require.NoError(t, err)

	cm, err := ReadToUnicode(data)
	require.NoError(t, err)
	assert.Equal(t, "F2-UCS", cm.Name)
	require.NotNil(t, cm.SystemInfo)
	assert.Equal(t, "Adobe-UCS-0", cm.SystemInfo.String())
	assert.Equal(t, "a", cm.Map[68])
}

// wrapCMap puts `body` into a minimal CMap program.
func wrapCMap(body string) []byte {
	return []byte("/CIDInit /ProcSet findresource begin\n12 dict begin\nbegincmap\n/CMapName /Test def\n" +
		body + "\nendcmap\nCMapName currentdict /CMap defineresource pop\nend\nend\n")
}

func TestParseToUnicodeErrors(t *testing.T) {
	_, err := ParseToUnicode([]byte("1 beginbfchar <0003> <0020> endbfchar"))
	assert.True(t, errors.Is(err, ErrInvalidCMap))
	_, err = ParseToUnicode([]byte("1 2 add pop"))
	assert.True(t, errors.Is(err, ErrInvalidCMap))
	_, err = ParseToUnicode(wrapCMap("1 beginbfchar 3 <0020> endbfchar"))
	assert.True(t, errors.Is(err, ErrInvalidCMap))
	_, err = ParseToUnicode(wrapCMap("1 beginbfrange <0005> <0003> <0020> endbfrange"))
	assert.True(t, errors.Is(err, ErrInvalidCMap))

	_, err = ParseToUnicode(wrapCMap("1 beginbfchar <000003> <0020> endbfchar"))
	assert.True(t, errors.Is(err, core.ErrRangeError))
	_, err = ParseToUnicode(wrapCMap("1 beginbfrange <0003> <0005> [3] endbfrange"))
	assert.True(t, errors.Is(err, core.ErrTypeError))

	m, err := ParseToUnicode(wrapCMap("1 beginbfchar <0003> <0020> endbfchar"))
	require.NoError(t, err)
	assert.Equal(t, ToUnicodeMap{3: " "}, m)
}

func TestDecodeWidths(t *testing.T) {
	w := core.MakeArray(
		core.MakeInteger(1), core.MakeArrayFromFloats([]float64{500, 600.5}),
		core.MakeInteger(10), core.MakeInteger(12), core.MakeInteger(250),
	)
	widths, err := DecodeWidths(w)
	require.NoError(t, err)
	assert.Equal(t, map[fonts.GlyphID]float64{1: 500, 2: 600.5, 10: 250, 11: 250, 12: 250}, widths)

	_, err = DecodeWidths(core.MakeArray(core.MakeName("x")))
	assert.True(t, errors.Is(err, core.ErrTypeError))
	_, err = DecodeWidths(core.MakeArray(core.MakeInteger(1)))
	assert.True(t, errors.Is(err, core.ErrRangeError))
	_, err = DecodeWidths(core.MakeArray(core.MakeInteger(1), core.MakeInteger(2)))
	assert.True(t, errors.Is(err, core.ErrRangeError))
}
