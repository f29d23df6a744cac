/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fonts

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFont(t *testing.T, src *testSource) *Font {
	fnt, err := NewFontFromSource(src, []byte("font program"), "")
	require.NoError(t, err)
	return fnt
}

func TestGlyphRunAB(t *testing.T) {
	fnt := newTestFont(t, abSource())

	run, err := fnt.GlyphRun("AB")
	require.NoError(t, err)
	expected := []GlyphMetrics{
		{ID: 4, Char: 'A', Width: 1185, Height: 1818},
		{ID: 17, Char: 'B', Width: 1114, Height: 1806},
	}
	if diff := cmp.Diff(expected, run); diff != "" {
		t.Errorf("glyph run mismatch (-want +got):\n%s", diff)
	}

	lr, err := fnt.LayoutRun("AB", 1000)
	require.NoError(t, err)
	require.Len(t, lr.Glyphs, 2)
	assert.InDelta(t, 1185, lr.Glyphs[0].Width, 1e-9)
	assert.InDelta(t, 1114, lr.Glyphs[1].Width, 1e-9)
	assert.Equal(t, 1818.0, lr.Glyphs[0].Height)
	assert.InDelta(t, 2299, lr.Width(), 1e-9)
	assert.Equal(t, "TestSans", lr.FontName)
	assert.Equal(t, "AB", lr.Text)
	assert.Equal(t, 1000.0, lr.FontSize)
}

func TestLayoutRunKerning(t *testing.T) {
	src := abSource()
	src.upem = 2000
	src.kern = testKern{{4, 17}: -100, {17, 4}: 40}
	fnt := newTestFont(t, src)

	run, err := fnt.GlyphRun("ABA")
	require.NoError(t, err)
	require.Len(t, run, 3)
	assert.Equal(t, 0.0, run[0].KernRight)
	assert.Equal(t, -100.0, run[1].KernRight)
	assert.Equal(t, 40.0, run[2].KernRight)
	// Widths stay unkerned.
	assert.Equal(t, 1114.0, run[1].Width)

	lr, err := fnt.LayoutRun("ABA", 12)
	require.NoError(t, err)
	require.Len(t, lr.Glyphs, 3)
	assert.InDelta(t, 1185*0.5*12/1000, lr.Glyphs[0].Width, 1e-9)
	assert.InDelta(t, (1114-100)*0.5*12/1000, lr.Glyphs[1].Width, 1e-9)
	assert.InDelta(t, (1185+40)*0.5*12/1000, lr.Glyphs[2].Width, 1e-9)
	// Heights are not scaled.
	assert.Equal(t, 1818.0, lr.Glyphs[2].Height)

	// The first glyph of a run never has kerning, even after the same pair elsewhere.
	lr, err = fnt.LayoutRun("B", 12)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lr.Glyphs[0].KernRight)
}

func TestLayoutRunIdempotent(t *testing.T) {
	src := abSource()
	src.kern = testKern{{4, 17}: -30}
	fnt := newTestFont(t, src)

	a, err := fnt.LayoutRun("AB BA AB", 14.5)
	require.NoError(t, err)
	b, err := fnt.LayoutRun("AB BA AB", 14.5)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("layout runs differ:\n%s", diff)
	}

	// The base metrics are not touched by layout.
	gm, err := fnt.GlyphMetricsForChar('B')
	require.NoError(t, err)
	assert.Equal(t, 1114.0, gm.Width)
	assert.Equal(t, 0.0, gm.KernRight)
}

func TestLineMetrics(t *testing.T) {
	src := abSource()
	src.upem = 2048
	fnt := newTestFont(t, src)
	fm := fnt.FontMetrics()

	for _, size := range []float64{1, 9.5, 12, 16, 72} {
		lr, err := fnt.LayoutRun("A", size)
		require.NoError(t, err)
		expected := (fm.AscenderScaled + fm.LineGapScaled - fm.DescenderScaled) / 1000 * size
		assert.InDelta(t, expected, lr.LineHeight, 1e-9)
		assert.InDelta(t, fm.LineGapScaled/1000*size, lr.LineGap, 1e-9)

		assert.InDelta(t, 2*fnt.LineHeight(size), fnt.LineHeight(2*size), 1e-9)
		assert.InDelta(t, 2*fnt.LineGap(size), fnt.LineGap(2*size), 1e-9)
	}
	assert.Equal(t, 0.0, fnt.LineHeight(0))
	assert.Equal(t, 0.0, fnt.LineGap(0))

	// (750 + 220 + 250) / 2048 * 16
	assert.InDelta(t, 9.53125, fnt.LineHeight(16), 1e-9)
}

func TestLayoutRunEmpty(t *testing.T) {
	fnt := newTestFont(t, abSource())
	lr, err := fnt.LayoutRun("", 10)
	require.NoError(t, err)
	assert.NotNil(t, lr.Glyphs)
	assert.Len(t, lr.Glyphs, 0)
	assert.Equal(t, fnt.LineHeight(10), lr.LineHeight)
	assert.Equal(t, fnt.LineGap(10), lr.LineGap)
	assert.Equal(t, 0.0, lr.Width())
	assert.Len(t, lr.Words(), 0)
}

func TestLayoutRunErrors(t *testing.T) {
	src := abSource()
	src.cmaps[0]['Q'] = 30
	fnt := newTestFont(t, src)

	_, err := fnt.LayoutRun("AxB", 12)
	assert.True(t, errors.Is(err, ErrGlyphNotMapped))

	_, err = fnt.LayoutRun("AQ", 12)
	assert.True(t, errors.Is(err, ErrMetricsMissing))
}

func TestLayoutRunWords(t *testing.T) {
	fnt := newTestFont(t, abSource())
	lr, err := fnt.LayoutRun(" AB  BA A ", 10)
	require.NoError(t, err)

	words := lr.Words()
	require.Len(t, words, 3)
	assert.Equal(t, "AB", words[0].Text)
	assert.InDelta(t, 22.99, words[0].Width, 1e-9)
	assert.Equal(t, "BA", words[1].Text)
	assert.InDelta(t, 22.99, words[1].Width, 1e-9)
	assert.Equal(t, "A", words[2].Text)
	assert.InDelta(t, 11.85, words[2].Width, 1e-9)
}
